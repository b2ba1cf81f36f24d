package entity

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type Account struct {
	Id          int64                 `gorm:"column:id;primary_key;" json:"id"`
	Username    string                `gorm:"column:username;not null;unique" json:"username"` // unique 用户名唯一且不能为空
	Password    string                `gorm:"column:password" json:"-"`                        // 散列后的口令，永不外发
	AccountType int                   `gorm:"column:account_type;default:1" json:"account_type"`
	CreatedAt   time.Time             `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time             `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt   time.Time             `gorm:"column:deleted_at" json:"deleted_at"`
	IsDel       soft_delete.DeletedAt `gorm:"softDelete:flag,DeletedAtField:DeletedAt" json:"-"`

	Sessions []Session `gorm:"foreignKey:account_id;references:id"`
}

func (Account) TableName() string {
	return "accounts"
}
