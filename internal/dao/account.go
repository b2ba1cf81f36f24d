package dao

import (
	"context"

	"tradeledger/internal/model/entity"
)

type AccountDao interface {
	// 根据用户名获取账户
	AccountGetByName(ctx context.Context, username string) (entity.Account, error)
	// 根据id获取账户
	AccountGetById(ctx context.Context, accountId int64) (entity.Account, error)
	// 创建账户
	AccountCreate(ctx context.Context, account *entity.Account) error
	// 用户名占用检查
	AccountCountByName(ctx context.Context, username string) (count int64, err error)
}
