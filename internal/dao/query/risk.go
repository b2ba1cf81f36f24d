package query

import (
	"context"

	"tradeledger/internal/dao"
	"tradeledger/internal/model/entity"

	"gorm.io/gorm"
)

var _ dao.RiskDao = (*riskDao)(nil)

type riskDao struct {
	ds *gorm.DB
}

func NewRiskDao(ds *gorm.DB) *riskDao {
	return &riskDao{ds: ds}
}

// 条件和赋值都用map，零值（关闭开关、pid为0）也要参与匹配和写入
func (r *riskDao) RiskUpsert(ctx context.Context, rule *entity.RiskRule) error {
	return r.ds.WithContext(ctx).
		Where(map[string]interface{}{
			"account_id":   rule.AccountId,
			"portfolio_id": rule.PortfolioId,
			"risk_type":    rule.RiskType,
			"position":     rule.Position,
		}).
		Assign(map[string]interface{}{
			"enabled": rule.Enabled,
			"pnl":     rule.Pnl,
		}).
		FirstOrCreate(rule).Error
}

func (r *riskDao) RiskListByAccount(ctx context.Context, accountId int64) ([]entity.RiskRule, error) {
	var rules []entity.RiskRule
	err := r.ds.WithContext(ctx).
		Where("account_id = ?", accountId).
		Order("id asc").
		Find(&rules).Error
	return rules, err
}
