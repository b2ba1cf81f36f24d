package model

// 更新风控规则的请求参数，沿用遗留客户端的字段名
// pid为0表示账户级规则，position为空表示作用于全部持仓
type RiskUpdateReq struct {
	RiskType string `json:"risk_type" validate:"required,oneof=buy sell" label:"风控类型"`
	On       *bool  `json:"on" validate:"required" label:"开关"`
	Pnl      int64  `json:"pnl" label:"盈亏阈值"`
	Position string `json:"position" label:"持仓"`
	Pid      int64  `json:"pid" label:"组合id"`
}

// 风控规则查询对外的一行
type RiskRes struct {
	RiskType string `json:"risk_type"`
	On       bool   `json:"on"`
	Pnl      int64  `json:"pnl"`
	Position string `json:"position"`
	Pid      int64  `json:"pid"`
}
