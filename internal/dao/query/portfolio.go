package query

import (
	"context"

	"tradeledger/internal/dao"
	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"

	"gorm.io/gorm"
)

var _ dao.PortfolioDao = (*portfolioDao)(nil)

type portfolioDao struct {
	ds *gorm.DB
}

func NewPortfolioDao(ds *gorm.DB) *portfolioDao {
	return &portfolioDao{ds: ds}
}

// 组合及其从属行在一个事务里落库，任何一步失败整体回滚
// 每个交易对写入：基础货币余额、计价货币余额、持仓、持仓的报价
func (p *portfolioDao) PortfolioCreateWithPositions(ctx context.Context, portfolio *entity.Portfolio, pairs []model.ResolvedPair) error {
	return p.ds.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 插入组合拿到id
		if err := tx.Create(portfolio).Error; err != nil {
			return err
		}

		for _, pair := range pairs {
			// 2. 基础货币和计价货币各一条零余额
			balances := []entity.PortfolioBalance{
				{PortfolioId: portfolio.Id, CurrencyId: pair.BaseCurrencyId, Quantity: 0},
				{PortfolioId: portfolio.Id, CurrencyId: pair.QuoteCurrencyId, Quantity: 0},
			}
			if err := tx.Create(&balances).Error; err != nil {
				return err
			}

			// 3. 持仓
			position := entity.Position{
				TradingPairId: pair.TradingPairId,
				PortfolioId:   portfolio.Id,
			}
			if err := tx.Create(&position).Error; err != nil {
				return err
			}

			// 4. 持仓的报价绑定
			quotation := entity.Quotation{
				QuoteCurrencyId: pair.QuoteCurrencyId,
				PositionId:      position.Id,
			}
			if err := tx.Create(&quotation).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *portfolioDao) PortfolioListByAccount(ctx context.Context, accountId int64) ([]entity.Portfolio, error) {
	var portfolios []entity.Portfolio
	err := p.ds.WithContext(ctx).
		Where("trader_account_id = ?", accountId).
		Order("id asc").
		Find(&portfolios).Error
	return portfolios, err
}

func (p *portfolioDao) PortfolioBalances(ctx context.Context, portfolioId int64) ([]entity.PortfolioBalance, error) {
	var balances []entity.PortfolioBalance
	err := p.ds.WithContext(ctx).
		Where("portfolio_id = ?", portfolioId).
		Order("id asc").
		Find(&balances).Error
	return balances, err
}

func (p *portfolioDao) PortfolioGetById(ctx context.Context, accountId, portfolioId int64) (entity.Portfolio, error) {
	var portfolio entity.Portfolio
	err := p.ds.WithContext(ctx).
		Where("id = ? AND trader_account_id = ?", portfolioId, accountId).
		First(&portfolio).Error
	return portfolio, err
}

// 名称不保证唯一，重名时取最先创建的一条，遗留客户端路径
func (p *portfolioDao) PortfolioGetByName(ctx context.Context, accountId int64, name string) (entity.Portfolio, error) {
	var portfolio entity.Portfolio
	err := p.ds.WithContext(ctx).
		Where("name = ? AND trader_account_id = ?", name, accountId).
		Order("id asc").
		First(&portfolio).Error
	return portfolio, err
}

// 按依赖顺序删除：订单 → 余额 → 报价 → 持仓 → 组合
// 子行先于父行，整个级联在一个事务里
func (p *portfolioDao) PortfolioRemoveCascade(ctx context.Context, portfolioId int64) error {
	return p.ds.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("portfolio_id = ?", portfolioId).Delete(&entity.Order{}).Error; err != nil {
			return err
		}
		// 挂在该组合上的风控规则一并清掉，账户级规则(pid=0)不受影响
		if err := tx.Where("portfolio_id = ?", portfolioId).Delete(&entity.RiskRule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("portfolio_id = ?", portfolioId).Delete(&entity.PortfolioBalance{}).Error; err != nil {
			return err
		}
		positionIds := tx.Model(&entity.Position{}).Select("id").Where("portfolio_id = ?", portfolioId)
		if err := tx.Where("position_id IN (?)", positionIds).Delete(&entity.Quotation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("portfolio_id = ?", portfolioId).Delete(&entity.Position{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", portfolioId).Delete(&entity.Portfolio{}).Error
	})
}
