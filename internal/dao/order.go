package dao

import (
	"context"

	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"
)

type OrderDao interface {
	// 定位账户自己组合内匹配计价货币的报价行
	// 报价⋈持仓⋈组合，按账户id和组合id过滤，查不到说明下单目标不属于该账户
	QuotationLocate(ctx context.Context, accountId, portfolioId, quoteCurrencyId int64) (quotationId int64, err error)
	// 写入订单
	OrderCreate(ctx context.Context, order *entity.Order) error
	// 按组合分页查订单，偏移offset取limit条
	OrderListByPortfolio(ctx context.Context, portfolioId int64, offset, limit int) ([]model.OrderRow, error)
}
