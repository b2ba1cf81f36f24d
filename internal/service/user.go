package service

import (
	"context"
	"errors"

	"tradeledger/internal/consts"
	"tradeledger/internal/dao"
	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"
	pkgerrors "tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"
	"tradeledger/pkg/logger"
	"tradeledger/pkg/session"
	"tradeledger/utils/security"
	"tradeledger/utils/uuid"

	"gorm.io/gorm"
)

type UserService interface {
	// 注册账户
	UserRegister(ctx context.Context, req model.UserRegisterReq) error
	// 密码登陆，成功后签发会话，返回token和账户类型
	UserLogin(ctx context.Context, username, password string) (session.Token, int, error)
	// 登出，撤销当前会话
	UserLogout(ctx context.Context, cookieValue string) error
	// 查询cookie对应的登陆状态
	UserAuthStatus(ctx context.Context, cookieValue string) model.AuthStatusRes
}

type userService struct {
	ad   dao.AccountDao
	ss   SessionService
	iSrv *uuid.SnowNode
}

func NewUserService(ad dao.AccountDao, ss SessionService) *userService {
	return &userService{
		ad:   ad,
		ss:   ss,
		iSrv: uuid.NewNode(1),
	}
}

func (u *userService) UserRegister(ctx context.Context, req model.UserRegisterReq) error {
	count, err := u.ad.AccountCountByName(ctx, req.Name)
	if err != nil {
		return pkgerrors.Wrap(err, ecode.StorageErr, "query account failed")
	}
	if count > 0 {
		return pkgerrors.WithCode(ecode.ValidateErr, "Username already taken.")
	}

	hashed, err := security.Encrypt(req.Password)
	if err != nil {
		return pkgerrors.Wrap(err, ecode.Unknown, "hash password failed")
	}

	accountType := req.AccountType
	if accountType == 0 {
		accountType = consts.DefaultAccountType
	}
	account := entity.Account{
		Id:          u.iSrv.GenSnowID(),
		Username:    req.Name,
		Password:    hashed,
		AccountType: accountType,
	}
	if err := u.ad.AccountCreate(ctx, &account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkgerrors.WithCode(ecode.ValidateErr, "Username already taken.")
		}
		return pkgerrors.Wrap(err, ecode.StorageErr, "create account failed")
	}
	return nil
}

func (u *userService) UserLogin(ctx context.Context, username, password string) (session.Token, int, error) {
	var token session.Token

	account, err := u.ad.AccountGetByName(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Infof("登陆失败，用户不存在: %s", username)
			return token, 0, pkgerrors.WithCode(ecode.UserLoginErr, "Login fails. Probably wrong username or password.")
		}
		return token, 0, pkgerrors.Wrap(err, ecode.StorageErr, "query account failed")
	}

	if !security.ValidatePassword(password, account.Password) {
		logger.Infof("密码错误：%s", username)
		return token, 0, pkgerrors.WithCode(ecode.UserLoginErr, "Wrong password.")
	}

	token, err = u.ss.SessionIssue(ctx, account.Id)
	if err != nil {
		return token, 0, err
	}

	accountType := account.AccountType
	if accountType == 0 {
		accountType = consts.DefaultAccountType
	}
	return token, accountType, nil
}

func (u *userService) UserLogout(ctx context.Context, cookieValue string) error {
	return u.ss.SessionRevoke(ctx, cookieValue)
}

func (u *userService) UserAuthStatus(ctx context.Context, cookieValue string) model.AuthStatusRes {
	if cookieValue != "" {
		if identity, err := u.ss.SessionValidate(ctx, cookieValue); err == nil {
			accountType := identity.AccountType
			return model.AuthStatusRes{Status: "Login", AccountType: &accountType}
		}
	}
	return model.AuthStatusRes{Status: "Logout"}
}
