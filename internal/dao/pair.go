package dao

import (
	"context"

	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"
)

type PairDao interface {
	// 根据符号对解析货币id和交易对id，纯查询，同样输入永远得到同样结果
	PairResolve(ctx context.Context, base, quote string) (model.ResolvedPair, error)
	// 根据交易对id反查符号对
	PairReverse(ctx context.Context, pairId int64) (base, quote string, err error)
	// 根据id查货币符号
	CurrencyGetById(ctx context.Context, currencyId int64) (string, error)
	// 保证货币存在，返回其id
	CurrencyEnsure(ctx context.Context, symbol string) (int64, error)
	// 保证交易对存在
	PairEnsure(ctx context.Context, baseId, quoteId int64) (entity.TradingPair, error)
}
