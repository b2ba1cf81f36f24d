package query

import (
	"context"

	"tradeledger/internal/dao"
	"tradeledger/internal/model/entity"

	"gorm.io/gorm"
)

var _ dao.AccountDao = (*accountDao)(nil)

type accountDao struct {
	ds *gorm.DB
}

func NewAccountDao(ds *gorm.DB) *accountDao {
	return &accountDao{ds: ds}
}

func (a *accountDao) AccountGetByName(ctx context.Context, username string) (entity.Account, error) {
	var account entity.Account
	err := a.ds.WithContext(ctx).Model(&entity.Account{}).Where("username = ?", username).First(&account).Error
	return account, err
}

func (a *accountDao) AccountGetById(ctx context.Context, accountId int64) (entity.Account, error) {
	var account entity.Account
	err := a.ds.WithContext(ctx).Model(&entity.Account{}).Where("id = ?", accountId).First(&account).Error
	return account, err
}

func (a *accountDao) AccountCreate(ctx context.Context, account *entity.Account) error {
	// 数据库的唯一约束兜底，这里先查一遍给出可读的错误
	var count int64
	if err := a.ds.WithContext(ctx).Model(&entity.Account{}).Where("username = ?", account.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return gorm.ErrDuplicatedKey
	}
	return a.ds.WithContext(ctx).Create(account).Error
}

func (a *accountDao) AccountCountByName(ctx context.Context, username string) (count int64, err error) {
	err = a.ds.WithContext(ctx).Model(&entity.Account{}).Where("username = ?", username).Count(&count).Error
	return
}
