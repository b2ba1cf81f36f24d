package query

import (
	"context"

	"tradeledger/internal/dao"
	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"

	"gorm.io/gorm"
)

var _ dao.OrderDao = (*orderDao)(nil)

type orderDao struct {
	ds *gorm.DB
}

func NewOrderDao(ds *gorm.DB) *orderDao {
	return &orderDao{ds: ds}
}

// 报价⋈持仓⋈组合，按计价货币、账户、组合过滤
// 查不到即下单目标不属于该账户，调用方据此拒单
func (o *orderDao) QuotationLocate(ctx context.Context, accountId, portfolioId, quoteCurrencyId int64) (quotationId int64, err error) {
	err = o.ds.WithContext(ctx).Model(&entity.Quotation{}).
		Joins("INNER JOIN positions ON quotations.position_id = positions.id").
		Joins("INNER JOIN portfolios ON portfolios.id = positions.portfolio_id").
		Where("quotations.quote_currency_id = ?", quoteCurrencyId).
		Where("portfolios.trader_account_id = ?", accountId).
		Where("portfolios.id = ?", portfolioId).
		Select("quotations.id").
		First(&quotationId).Error
	return
}

func (o *orderDao) OrderCreate(ctx context.Context, order *entity.Order) error {
	return o.ds.WithContext(ctx).Create(order).Error
}

func (o *orderDao) OrderListByPortfolio(ctx context.Context, portfolioId int64, offset, limit int) ([]model.OrderRow, error) {
	var rows []model.OrderRow
	err := o.ds.WithContext(ctx).Model(&entity.Order{}).
		Joins("INNER JOIN quotations ON orders.quotation_id = quotations.id").
		Joins("INNER JOIN positions ON quotations.position_id = positions.id").
		Where("orders.portfolio_id = ?", portfolioId).
		Select("orders.id, orders.buyin, orders.state, orders.trading_pair_id, orders.qty, orders.price").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
