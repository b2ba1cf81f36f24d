package model

// 创建组合的请求参数，position形如 "BTC/USD"
type PortfolioAddReq struct {
	Name     string   `json:"name" validate:"required" label:"组合名称"`
	Position []string `json:"position" validate:"required,min=1,dive,required" label:"持仓列表"`
}

// 组合内单个币种的余额
type PortfolioPositionRes struct {
	Balance string `json:"balance"` // 数量的十进制字符串
	Symbol  string `json:"symbol"`
}

type PortfolioRes struct {
	Name      string                 `json:"name"`
	Id        int64                  `json:"id"`
	Positions []PortfolioPositionRes `json:"positions"`
}

// ResolvedPair 交易对解析结果，三个id对同一组符号保持稳定
type ResolvedPair struct {
	BaseCurrencyId  int64
	QuoteCurrencyId int64
	TradingPairId   int64
}
