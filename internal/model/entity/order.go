package entity

import "time"

// 订单状态由外部撮合流程推进，本服务只写入pending
const (
	OrderStatePending = 0
	OrderStateSuccess = 1
	OrderStateFail    = 2
)

// OrderStateLabel 把存储的状态值翻译为对外的文案
func OrderStateLabel(state int) string {
	switch state {
	case OrderStatePending:
		return "pending"
	case OrderStateSuccess:
		return "success"
	case OrderStateFail:
		return "fail"
	default:
		return "unknown"
	}
}

type Order struct {
	Id            int64     `gorm:"column:id;primary_key;autoIncrement:false" json:"id"` // id由外部发号器分配
	QuotationId   int64     `gorm:"column:quotation_id;index" json:"quotation_id"`
	TradingPairId int64     `gorm:"column:trading_pair_id" json:"trading_pair_id"`
	PortfolioId   int64     `gorm:"column:portfolio_id;index" json:"portfolio_id"`
	State         int       `gorm:"column:state" json:"state"`
	Buyin         bool      `gorm:"column:buyin" json:"buyin"`
	Price         int64     `gorm:"column:price" json:"price"` // 最小币值单位
	Qty           int64     `gorm:"column:qty" json:"qty"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}
