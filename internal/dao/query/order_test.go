package query

import (
	"context"
	"testing"

	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestQuotationLocateOwnership(t *testing.T) {
	db := newTestDB(t)
	btcUsd := seedPair(t, db, "BTC", "USD")

	pd := NewPortfolioDao(db)
	od := NewOrderDao(db)
	ctx := context.Background()

	portfolio := entity.Portfolio{Name: "swing", TraderAccountId: 1, PortfolioType: 2}
	require.NoError(t, pd.PortfolioCreateWithPositions(ctx, &portfolio, []model.ResolvedPair{btcUsd}))

	quotationId, err := od.QuotationLocate(ctx, 1, portfolio.Id, btcUsd.QuoteCurrencyId)
	require.NoError(t, err)
	assert.NotZero(t, quotationId)

	// 其他账户拿不到这条报价
	_, err = od.QuotationLocate(ctx, 2, portfolio.Id, btcUsd.QuoteCurrencyId)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 组合里没有该计价货币的持仓
	_, err = od.QuotationLocate(ctx, 1, portfolio.Id, btcUsd.QuoteCurrencyId+999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderListByPortfolioPagination(t *testing.T) {
	db := newTestDB(t)
	btcUsd := seedPair(t, db, "BTC", "USD")

	pd := NewPortfolioDao(db)
	od := NewOrderDao(db)
	ctx := context.Background()

	portfolio := entity.Portfolio{Name: "swing", TraderAccountId: 1, PortfolioType: 2}
	require.NoError(t, pd.PortfolioCreateWithPositions(ctx, &portfolio, []model.ResolvedPair{btcUsd}))

	quotationId, err := od.QuotationLocate(ctx, 1, portfolio.Id, btcUsd.QuoteCurrencyId)
	require.NoError(t, err)

	for i := int64(1); i <= 15; i++ {
		require.NoError(t, od.OrderCreate(ctx, &entity.Order{
			Id:            i,
			QuotationId:   quotationId,
			TradingPairId: btcUsd.TradingPairId,
			PortfolioId:   portfolio.Id,
			State:         entity.OrderStatePending,
			Buyin:         i%2 == 0,
			Price:         1000 + i,
			Qty:           i,
		}))
	}

	page, err := od.OrderListByPortfolio(ctx, portfolio.Id, 0, 10)
	require.NoError(t, err)
	assert.Len(t, page, 10)

	rest, err := od.OrderListByPortfolio(ctx, portfolio.Id, 10, 10)
	require.NoError(t, err)
	assert.Len(t, rest, 5)

	// 行里带着还原符号所需的trading_pair_id
	assert.Equal(t, btcUsd.TradingPairId, page[0].TradingPairId)
}

func TestOrderListOtherPortfolioEmpty(t *testing.T) {
	db := newTestDB(t)
	btcUsd := seedPair(t, db, "BTC", "USD")

	pd := NewPortfolioDao(db)
	od := NewOrderDao(db)
	ctx := context.Background()

	portfolio := entity.Portfolio{Name: "swing", TraderAccountId: 1, PortfolioType: 2}
	require.NoError(t, pd.PortfolioCreateWithPositions(ctx, &portfolio, []model.ResolvedPair{btcUsd}))

	rows, err := od.OrderListByPortfolio(ctx, portfolio.Id+999, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
