package entity

import "time"

// 账户级的风控规则，外部撮合流程在下单前读取
// 同一(账户,组合,类型,持仓)只有一条，更新即覆盖
type RiskRule struct {
	Id          int64     `gorm:"column:id;primary_key;" json:"id"`
	AccountId   int64     `gorm:"column:account_id;index;uniqueIndex:idx_risk_rule" json:"-"`
	PortfolioId int64     `gorm:"column:portfolio_id;uniqueIndex:idx_risk_rule" json:"portfolio_id"` // 0表示账户级规则
	RiskType    string    `gorm:"column:risk_type;uniqueIndex:idx_risk_rule" json:"risk_type"`
	Position    string    `gorm:"column:position;uniqueIndex:idx_risk_rule" json:"position"` // 形如 "BTC/USDT"，空串表示全部持仓
	Enabled     bool      `gorm:"column:enabled" json:"enabled"`
	Pnl         int64     `gorm:"column:pnl" json:"pnl"` // 盈亏阈值，最小币值单位
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (RiskRule) TableName() string {
	return "risk_rules"
}
