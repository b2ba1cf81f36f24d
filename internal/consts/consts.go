package consts

const (
	// RequestId 请求id名称
	RequestId = "request_id"
	UserID    = "user_id"
	// AccountType 当前会话账户的类型，随auth中间件写入context
	AccountType = "account_type"

	// 会话cookie与伴随的账户类型cookie
	UserCookieName        = "user_token"
	AccountTypeCookieName = "account_type"

	// redis中会话缓存的key前缀
	SessionCachePrefix = "Session_Identity:"

	// 账户类型缺省值
	DefaultAccountType = 1

	// 本服务创建的组合固定使用的类型标记
	PortfolioTypeTrading = 2

	DateLayout = "2006-01-02"
	TimeLayout = "2006-01-02 15:04:05"
)
