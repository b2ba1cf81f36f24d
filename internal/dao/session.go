package dao

import (
	"context"

	"tradeledger/internal/model/entity"
)

type SessionDao interface {
	// 写入会话记录
	SessionCreate(ctx context.Context, session *entity.Session) error
	// 根据token字节查会话
	SessionGetByToken(ctx context.Context, token []byte) (entity.Session, error)
	// 删除会话（登出）
	SessionDeleteByToken(ctx context.Context, token []byte) error
}
