package seed

import (
	"context"
	"strings"

	"tradeledger/internal/dao"
	"tradeledger/internal/dao/query"
	"tradeledger/internal/model/entity"
	"tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"
	"tradeledger/pkg/logger"

	"gorm.io/gorm"
)

// AutoMigrate 建表, 幂等, 已存在的表只做增量变更
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Account{},
		&entity.Session{},
		&entity.Currency{},
		&entity.TradingPair{},
		&entity.Portfolio{},
		&entity.PortfolioBalance{},
		&entity.Position{},
		&entity.Quotation{},
		&entity.Order{},
		&entity.RiskRule{},
	)
}

// EnsureMarkets 按配置补齐货币和交易对, 已存在的跳过
// 每个条目形如 "BTC/USD"
func EnsureMarkets(ctx context.Context, db *gorm.DB, markets []string) error {
	var pd dao.PairDao = query.NewPairDao(db)
	for _, market := range markets {
		base, quote, ok := strings.Cut(market, "/")
		if !ok || base == "" || quote == "" {
			logger.Warn("skip malformed market entry", logger.Pair("market", market))
			continue
		}
		baseId, err := pd.CurrencyEnsure(ctx, base)
		if err != nil {
			return errors.Wrapf(err, ecode.StorageErr, "ensure currency %s", base)
		}
		quoteId, err := pd.CurrencyEnsure(ctx, quote)
		if err != nil {
			return errors.Wrapf(err, ecode.StorageErr, "ensure currency %s", quote)
		}
		if _, err := pd.PairEnsure(ctx, baseId, quoteId); err != nil {
			return errors.Wrapf(err, ecode.StorageErr, "ensure pair %s", market)
		}
	}
	return nil
}
