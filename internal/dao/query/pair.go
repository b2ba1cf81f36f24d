package query

import (
	"context"

	"tradeledger/internal/dao"
	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"

	"gorm.io/gorm"
)

var _ dao.PairDao = (*pairDao)(nil)

type pairDao struct {
	ds *gorm.DB
}

func NewPairDao(ds *gorm.DB) *pairDao {
	return &pairDao{ds: ds}
}

func (p *pairDao) PairResolve(ctx context.Context, base, quote string) (model.ResolvedPair, error) {
	var resolved model.ResolvedPair

	var baseCurrency entity.Currency
	if err := p.ds.WithContext(ctx).Where("symbol = ?", base).First(&baseCurrency).Error; err != nil {
		return resolved, err
	}
	var quoteCurrency entity.Currency
	if err := p.ds.WithContext(ctx).Where("symbol = ?", quote).First(&quoteCurrency).Error; err != nil {
		return resolved, err
	}

	var pair entity.TradingPair
	err := p.ds.WithContext(ctx).
		Where("base_currency_id = ? AND quote_currency_id = ?", baseCurrency.Id, quoteCurrency.Id).
		First(&pair).Error
	if err != nil {
		return resolved, err
	}

	resolved.BaseCurrencyId = baseCurrency.Id
	resolved.QuoteCurrencyId = quoteCurrency.Id
	resolved.TradingPairId = pair.Id
	return resolved, nil
}

func (p *pairDao) PairReverse(ctx context.Context, pairId int64) (base, quote string, err error) {
	var pair entity.TradingPair
	err = p.ds.WithContext(ctx).Where("id = ?", pairId).First(&pair).Error
	if err != nil {
		return
	}
	if base, err = p.CurrencyGetById(ctx, pair.BaseCurrencyId); err != nil {
		return
	}
	quote, err = p.CurrencyGetById(ctx, pair.QuoteCurrencyId)
	return
}

func (p *pairDao) CurrencyGetById(ctx context.Context, currencyId int64) (string, error) {
	var currency entity.Currency
	err := p.ds.WithContext(ctx).Where("id = ?", currencyId).First(&currency).Error
	return currency.Symbol, err
}

func (p *pairDao) CurrencyEnsure(ctx context.Context, symbol string) (int64, error) {
	currency := entity.Currency{Symbol: symbol}
	err := p.ds.WithContext(ctx).Where(entity.Currency{Symbol: symbol}).FirstOrCreate(&currency).Error
	return currency.Id, err
}

func (p *pairDao) PairEnsure(ctx context.Context, baseId, quoteId int64) (entity.TradingPair, error) {
	pair := entity.TradingPair{BaseCurrencyId: baseId, QuoteCurrencyId: quoteId}
	err := p.ds.WithContext(ctx).
		Where(entity.TradingPair{BaseCurrencyId: baseId, QuoteCurrencyId: quoteId}).
		FirstOrCreate(&pair).Error
	return pair, err
}
