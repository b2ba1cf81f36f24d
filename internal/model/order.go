package model

// 下单的请求参数，price和quantity是最小币值单位的正整数字符串
type OrderPlaceReq struct {
	Base        string `json:"base" validate:"required" label:"基础货币"`
	Quote       string `json:"quote" validate:"required" label:"计价货币"`
	OrderType   string `json:"order_type" validate:"required,oneof=buy sell" label:"方向"`
	Price       string `json:"price" validate:"required" label:"价格"`
	Quantity    string `json:"quantity" validate:"required" label:"数量"`
	PortfolioId int64  `json:"portfolio_id" validate:"required" label:"组合id"`
}

// OrderRow 订单列表查询从存储取回的一行
type OrderRow struct {
	Id            int64 `gorm:"column:id"`
	Buyin         bool  `gorm:"column:buyin"`
	State         int   `gorm:"column:state"`
	TradingPairId int64 `gorm:"column:trading_pair_id"`
	Qty           int64 `gorm:"column:qty"`
	Price         int64 `gorm:"column:price"`
}

// 订单列表对外的一行，base/quote已还原成符号，state已转文案
type OrderRes struct {
	Id    int64  `json:"id"`
	Buyin bool   `json:"buyin"`
	State string `json:"state"`
	Base  string `json:"base"`
	Quote string `json:"quote"`
	Qty   int64  `json:"qty"`
	Price int64  `json:"price"`
}
