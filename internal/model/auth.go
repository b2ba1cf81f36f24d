package model

// 用户登陆发起请求的参数
type UserLoginReq struct {
	Name     string `json:"name" validate:"required" label:"用户名"`
	Password string `json:"password" validate:"required" label:"密码"`
}

// 用户注册的参数
type UserRegisterReq struct {
	Name        string `json:"name" validate:"required,min=3,max=64" label:"用户名"`
	Password    string `json:"password" validate:"required,min=6" label:"密码"`
	AccountType int    `json:"account_type" label:"账户类型"`
}

// 登陆状态查询的响应，status为Login或Logout
type AuthStatusRes struct {
	Status      string `json:"status"`
	AccountType *int   `json:"account_type,omitempty"`
}

// SessionIdentity 一次会话校验出的身份，也是redis中缓存的值
type SessionIdentity struct {
	AccountId   int64 `json:"account_id"`
	AccountType int   `json:"account_type"`
}
