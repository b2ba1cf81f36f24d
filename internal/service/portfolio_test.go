package service

import (
	"context"
	"testing"

	"tradeledger/internal/dao/query"
	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"
	"tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPortfolioService(t *testing.T) (PortfolioService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedMarket(t, db, "BTC", "USD")
	seedMarket(t, db, "ETH", "USD")
	return NewPortfolioService(query.NewPortfolioDao(db), query.NewPairDao(db)), db
}

func TestPortfolioCreateAndList(t *testing.T) {
	ps, _ := newPortfolioService(t)
	ctx := context.Background()

	id, err := ps.PortfolioCreate(ctx, 1, model.PortfolioAddReq{
		Name:     "swing",
		Position: []string{"BTC/USD", "ETH/USD"},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	list, err := ps.PortfolioList(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "swing", list[0].Name)
	assert.Equal(t, id, list[0].Id)

	// 每个交易对两条零余额，带符号
	require.Len(t, list[0].Positions, 4)
	symbols := make(map[string]int)
	for _, pos := range list[0].Positions {
		assert.Equal(t, "0", pos.Balance)
		symbols[pos.Symbol]++
	}
	assert.Equal(t, 1, symbols["BTC"])
	assert.Equal(t, 1, symbols["ETH"])
	assert.Equal(t, 2, symbols["USD"])

	// 别的账户列表为空
	other, err := ps.PortfolioList(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPortfolioCreateMalformedPosition(t *testing.T) {
	ps, db := newPortfolioService(t)
	ctx := context.Background()

	for _, pos := range []string{"BTCUSD", "BTC/", "/USD", "BTC/USD/EUR"} {
		_, err := ps.PortfolioCreate(ctx, 1, model.PortfolioAddReq{Name: "bad", Position: []string{pos}})
		require.Error(t, err, pos)
		assert.Equal(t, ecode.ValidateErr, errors.Code(err), pos)
	}

	// 解析失败时一行都不落库
	var count int64
	require.NoError(t, db.Model(&entity.Portfolio{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPortfolioCreateUnknownPair(t *testing.T) {
	ps, db := newPortfolioService(t)
	ctx := context.Background()

	_, err := ps.PortfolioCreate(ctx, 1, model.PortfolioAddReq{
		Name:     "mixed",
		Position: []string{"BTC/USD", "DOGE/USD"},
	})
	require.Error(t, err)
	assert.Equal(t, ecode.NotFoundErr, errors.Code(err))
	assert.Contains(t, err.Error(), "Position not found")

	// 即便第一个交易对有效，整个创建也要原子失败
	var count int64
	require.NoError(t, db.Model(&entity.Portfolio{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPortfolioRemoveById(t *testing.T) {
	ps, db := newPortfolioService(t)
	ctx := context.Background()

	id, err := ps.PortfolioCreate(ctx, 1, model.PortfolioAddReq{Name: "swing", Position: []string{"BTC/USD"}})
	require.NoError(t, err)

	// 别人的账户删不掉
	err = ps.PortfolioRemove(ctx, 2, id)
	require.Error(t, err)
	assert.Equal(t, ecode.NotFoundErr, errors.Code(err))

	require.NoError(t, ps.PortfolioRemove(ctx, 1, id))

	var count int64
	require.NoError(t, db.Model(&entity.Position{}).Count(&count).Error)
	assert.Zero(t, count)

	// 再删一次
	err = ps.PortfolioRemove(ctx, 1, id)
	require.Error(t, err)
	assert.Equal(t, ecode.NotFoundErr, errors.Code(err))
	assert.Contains(t, err.Error(), "The portfolio does not exist")
}

func TestPortfolioRemoveByName(t *testing.T) {
	ps, _ := newPortfolioService(t)
	ctx := context.Background()

	_, err := ps.PortfolioCreate(ctx, 1, model.PortfolioAddReq{Name: "swing", Position: []string{"BTC/USD"}})
	require.NoError(t, err)

	err = ps.PortfolioRemoveByName(ctx, 1, "missing")
	require.Error(t, err)
	assert.Equal(t, ecode.NotFoundErr, errors.Code(err))

	require.NoError(t, ps.PortfolioRemoveByName(ctx, 1, "swing"))

	list, err := ps.PortfolioList(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}
