package dao

import (
	"context"

	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"
)

type PortfolioDao interface {
	// 在一个事务里写入组合及其全部从属行（余额、持仓、报价）
	// 任何一步失败整体回滚
	PortfolioCreateWithPositions(ctx context.Context, portfolio *entity.Portfolio, pairs []model.ResolvedPair) error
	// 按账户列出组合
	PortfolioListByAccount(ctx context.Context, accountId int64) ([]entity.Portfolio, error)
	// 组合的余额行
	PortfolioBalances(ctx context.Context, portfolioId int64) ([]entity.PortfolioBalance, error)
	// 根据id取账户名下的组合
	PortfolioGetById(ctx context.Context, accountId, portfolioId int64) (entity.Portfolio, error)
	// 根据名称取账户名下的组合（遗留路径，重名时取最先创建的）
	PortfolioGetByName(ctx context.Context, accountId int64, name string) (entity.Portfolio, error)
	// 在一个事务里按依赖顺序删除组合的全部行：
	// 订单 → 余额 → 报价 → 持仓 → 组合
	PortfolioRemoveCascade(ctx context.Context, portfolioId int64) error
}
