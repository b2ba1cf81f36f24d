package query

import (
	"context"

	"tradeledger/internal/dao"
	"tradeledger/internal/model/entity"

	"gorm.io/gorm"
)

var _ dao.SessionDao = (*sessionDao)(nil)

type sessionDao struct {
	ds *gorm.DB
}

func NewSessionDao(ds *gorm.DB) *sessionDao {
	return &sessionDao{ds: ds}
}

func (s *sessionDao) SessionCreate(ctx context.Context, session *entity.Session) error {
	return s.ds.WithContext(ctx).Create(session).Error
}

func (s *sessionDao) SessionGetByToken(ctx context.Context, token []byte) (entity.Session, error) {
	var session entity.Session
	err := s.ds.WithContext(ctx).Model(&entity.Session{}).Where("session_token = ?", token).First(&session).Error
	return session, err
}

func (s *sessionDao) SessionDeleteByToken(ctx context.Context, token []byte) error {
	return s.ds.WithContext(ctx).Where("session_token = ?", token).Delete(&entity.Session{}).Error
}
