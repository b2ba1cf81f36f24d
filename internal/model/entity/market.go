package entity

import "time"

// 币
type Currency struct {
	Id        int64     `gorm:"column:id;primary_key;" json:"id"`
	Symbol    string    `gorm:"column:symbol;not null;unique" json:"symbol"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Currency) TableName() string {
	return "currencies"
}

// 交易对，(base, quote)组合唯一，id对同一组合保持稳定
type TradingPair struct {
	Id              int64 `gorm:"column:id;primary_key;" json:"id"`
	BaseCurrencyId  int64 `gorm:"column:base_currency_id;uniqueIndex:idx_pair" json:"base_currency_id"`
	QuoteCurrencyId int64 `gorm:"column:quote_currency_id;uniqueIndex:idx_pair" json:"quote_currency_id"`

	// 关联的货币
	BaseCurrency  Currency `gorm:"foreignKey:BaseCurrencyId;references:Id"`
	QuoteCurrency Currency `gorm:"foreignKey:QuoteCurrencyId;references:Id"`
}

func (TradingPair) TableName() string {
	return "trading_pairs"
}
