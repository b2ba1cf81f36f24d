package service

import (
	"context"
	"testing"

	"tradeledger/internal/dao/query"
	"tradeledger/internal/model/entity"
	"tradeledger/pkg/session"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.Account{},
		&entity.Session{},
		&entity.Currency{},
		&entity.TradingPair{},
		&entity.Portfolio{},
		&entity.PortfolioBalance{},
		&entity.Position{},
		&entity.Quotation{},
		&entity.Order{},
		&entity.RiskRule{},
	)
	require.NoError(t, err)
	return db
}

// newSessionService 测试里不接redis，校验直接回源数据库
func newSessionService(t *testing.T, db *gorm.DB) SessionService {
	t.Helper()
	ts, err := session.NewTokenSource()
	require.NoError(t, err)
	return NewSessionService(query.NewSessionDao(db), query.NewAccountDao(db), ts, nil)
}

func seedMarket(t *testing.T, db *gorm.DB, base, quote string) {
	t.Helper()
	pd := query.NewPairDao(db)
	ctx := context.Background()

	baseId, err := pd.CurrencyEnsure(ctx, base)
	require.NoError(t, err)
	quoteId, err := pd.CurrencyEnsure(ctx, quote)
	require.NoError(t, err)
	_, err = pd.PairEnsure(ctx, baseId, quoteId)
	require.NoError(t, err)
}
