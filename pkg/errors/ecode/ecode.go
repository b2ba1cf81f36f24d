package ecode

// 业务错误码，0表示成功，非0表示失败
// 错误码到http状态码的映射在 pkg/response 中完成
const (
	Success = 0
	Unknown = 10001

	// 参数校验相关
	ValidateErr    = 20001 // 请求参数错误
	QuantityErr    = 20002 // 价格或者数量不是正整数
	TokenFormatErr = 20003 // cookie中的token无法解析

	// 认证相关
	RequireAuthErr = 30001 // 未登陆或者会话无效
	UserLoginErr   = 30002 // 用户名或密码错误
	SessionErr     = 30003 // 会话签发失败

	// 资源相关
	NotFoundErr = 40001 // 账户/组合/仓位/交易对不存在

	// 存储相关
	StorageErr     = 50001 // 查询失败
	TransactionErr = 50002 // 事务回滚
)

var messages = map[int]string{
	Success:        "OK",
	Unknown:        "Internal server error",
	ValidateErr:    "Validation failed",
	QuantityErr:    "Price and quantity must be positive integers",
	TokenFormatErr: "Malformed session token",
	RequireAuthErr: "Not logged in",
	UserLoginErr:   "Wrong username or password",
	SessionErr:     "Fail to generate new session",
	NotFoundErr:    "Resource not found",
	StorageErr:     "Storage query failed",
	TransactionErr: "Storage transaction aborted",
}

// Message 返回错误码的默认描述
func Message(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[Unknown]
}
