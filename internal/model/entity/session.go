package entity

import "time"

// 会话记录，登陆时写入，登出时删除，服务端不做过期
type Session struct {
	Id           int64     `gorm:"column:id;primary_key;" json:"id"`
	AccountId    int64     `gorm:"column:account_id;index" json:"account_id"`
	SessionToken []byte    `gorm:"column:session_token;type:varbinary(16);uniqueIndex" json:"-"` // 128位token原始字节
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Session) TableName() string {
	return "sessions"
}
