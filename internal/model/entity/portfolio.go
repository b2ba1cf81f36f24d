package entity

import "time"

type Portfolio struct {
	Id              int64     `gorm:"column:id;primary_key;" json:"id"`
	Name            string    `gorm:"column:name;index" json:"name"` // 名称仅作展示，不保证唯一
	TraderAccountId int64     `gorm:"column:trader_account_id;index" json:"trader_account_id"`
	PortfolioType   int       `gorm:"column:portfolio_type" json:"portfolio_type"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`

	Positions []Position         `gorm:"foreignKey:portfolio_id;references:id"`
	Balances  []PortfolioBalance `gorm:"foreignKey:portfolio_id;references:id"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}

// 组合在某个交易对上的持仓，每个持仓恰好有一条报价记录
type Position struct {
	Id            int64 `gorm:"column:id;primary_key;" json:"id"`
	TradingPairId int64 `gorm:"column:trading_pair_id" json:"trading_pair_id"`
	PortfolioId   int64 `gorm:"column:portfolio_id;index" json:"portfolio_id"`
}

func (Position) TableName() string {
	return "positions"
}

// 持仓的计价货币绑定，订单通过它落到具体持仓上
type Quotation struct {
	Id              int64 `gorm:"column:id;primary_key;" json:"id"`
	QuoteCurrencyId int64 `gorm:"column:quote_currency_id" json:"quote_currency_id"`
	PositionId      int64 `gorm:"column:position_id;index" json:"position_id"`
}

func (Quotation) TableName() string {
	return "quotations"
}

// 组合内某种货币的数量，最小币值单位
type PortfolioBalance struct {
	Id          int64 `gorm:"column:id;primary_key;" json:"id"`
	PortfolioId int64 `gorm:"column:portfolio_id;index" json:"portfolio_id"`
	CurrencyId  int64 `gorm:"column:currency_id" json:"currency_id"`
	Quantity    int64 `gorm:"column:quantity" json:"quantity"`
}

func (PortfolioBalance) TableName() string {
	return "portfolio_balance"
}
