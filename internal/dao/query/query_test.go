package query

import (
	"context"
	"testing"

	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存库
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

// seedPair 建一个base/quote市场，返回解析结果
func seedPair(t *testing.T, db *gorm.DB, base, quote string) model.ResolvedPair {
	t.Helper()
	pd := NewPairDao(db)
	ctx := context.Background()

	baseId, err := pd.CurrencyEnsure(ctx, base)
	require.NoError(t, err)
	quoteId, err := pd.CurrencyEnsure(ctx, quote)
	require.NoError(t, err)
	pair, err := pd.PairEnsure(ctx, baseId, quoteId)
	require.NoError(t, err)

	return model.ResolvedPair{
		BaseCurrencyId:  baseId,
		QuoteCurrencyId: quoteId,
		TradingPairId:   pair.Id,
	}
}

func countRows(t *testing.T, db *gorm.DB, mdl interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(mdl).Count(&count).Error)
	return count
}
