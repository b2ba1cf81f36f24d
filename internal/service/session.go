package service

import (
	"context"
	"errors"

	"tradeledger/conf"
	"tradeledger/internal/consts"
	"tradeledger/internal/dao"
	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"
	pkgerrors "tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"
	"tradeledger/pkg/logger"
	"tradeledger/pkg/session"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

type SessionService interface {
	// 签发一个新会话并落库，返回token
	SessionIssue(ctx context.Context, accountId int64) (session.Token, error)
	// 校验cookie值，返回绑定的账户身份；无效则返回RequireAuthErr
	// 只读幂等，可被每个受保护端点反复调用
	SessionValidate(ctx context.Context, cookieValue string) (model.SessionIdentity, error)
	// 撤销一个会话（登出）
	SessionRevoke(ctx context.Context, cookieValue string) error
}

// sessionService 会话由数据库持有，redis做旁路缓存
// token发生器是注入进来的进程级依赖，不走包级全局
type sessionService struct {
	sd dao.SessionDao
	ad dao.AccountDao
	ts *session.TokenSource
	rc *redis.Client
}

func NewSessionService(sd dao.SessionDao, ad dao.AccountDao, ts *session.TokenSource, rc *redis.Client) *sessionService {
	return &sessionService{sd: sd, ad: ad, ts: ts, rc: rc}
}

func (s *sessionService) SessionIssue(ctx context.Context, accountId int64) (session.Token, error) {
	token := s.ts.Token()
	record := entity.Session{
		AccountId:    accountId,
		SessionToken: token.DatabaseValue(),
	}
	// 碰撞概率可以忽略，不做重试，唯一索引兜底
	if err := s.sd.SessionCreate(ctx, &record); err != nil {
		return token, pkgerrors.Wrap(err, ecode.SessionErr, "Fail to generate new session")
	}
	return token, nil
}

func (s *sessionService) SessionValidate(ctx context.Context, cookieValue string) (model.SessionIdentity, error) {
	var identity model.SessionIdentity

	token, err := session.FromCookieValue(cookieValue)
	if err != nil {
		return identity, pkgerrors.Wrap(err, ecode.RequireAuthErr, "invalid session token")
	}

	rdsKey := consts.SessionCachePrefix + cookieValue
	if s.rc != nil {
		jsonBytes, err := s.rc.Get(ctx, rdsKey).Bytes()
		if err == nil {
			if err = json.Unmarshal(jsonBytes, &identity); err == nil {
				return identity, nil
			}
		}
	}

	record, err := s.sd.SessionGetByToken(ctx, token.DatabaseValue())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return identity, pkgerrors.WithCode(ecode.RequireAuthErr, "session not found")
		}
		return identity, pkgerrors.Wrap(err, ecode.StorageErr, "query session failed")
	}

	account, err := s.ad.AccountGetById(ctx, record.AccountId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return identity, pkgerrors.WithCode(ecode.RequireAuthErr, "account no longer exists")
		}
		return identity, pkgerrors.Wrap(err, ecode.StorageErr, "query account failed")
	}

	identity.AccountId = account.Id
	identity.AccountType = account.AccountType
	if identity.AccountType == 0 {
		identity.AccountType = consts.DefaultAccountType
	}

	if s.rc != nil {
		jsonBytes, err := json.Marshal(identity)
		if err == nil {
			if err = s.rc.Set(ctx, rdsKey, jsonBytes, conf.AppConfig.Session.CacheExpiration()).Err(); err != nil {
				logger.Errorf("会话缓存写入失败:%v", err)
			}
		}
	}
	return identity, nil
}

func (s *sessionService) SessionRevoke(ctx context.Context, cookieValue string) error {
	token, err := session.FromCookieValue(cookieValue)
	if err != nil {
		return pkgerrors.Wrap(err, ecode.RequireAuthErr, "invalid session token")
	}
	if s.rc != nil {
		if err := s.rc.Del(ctx, consts.SessionCachePrefix+cookieValue).Err(); err != nil {
			logger.Errorf("会话缓存删除失败:%v", err)
		}
	}
	if err := s.sd.SessionDeleteByToken(ctx, token.DatabaseValue()); err != nil {
		return pkgerrors.Wrap(err, ecode.StorageErr, "delete session failed")
	}
	return nil
}
