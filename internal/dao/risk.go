package dao

import (
	"context"

	"tradeledger/internal/model/entity"
)

type RiskDao interface {
	// 按(账户,组合,类型,持仓)覆盖写入规则，不存在则创建
	RiskUpsert(ctx context.Context, rule *entity.RiskRule) error
	// 账户名下的全部规则
	RiskListByAccount(ctx context.Context, accountId int64) ([]entity.RiskRule, error)
}
