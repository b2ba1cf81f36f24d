package service

import (
	"context"
	"errors"
	"strconv"

	"tradeledger/internal/dao"
	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"
	pkgerrors "tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"
	"tradeledger/pkg/exchange"
	"tradeledger/pkg/logger"

	"gorm.io/gorm"
)

type OrderService interface {
	// 对账户自己的持仓下单，返回外部发号器分配的订单id
	OrderPlace(ctx context.Context, accountId int64, req model.OrderPlaceReq) (int64, error)
	// 按组合分页查订单
	OrderList(ctx context.Context, portfolioId int64, offset, limit int) ([]model.OrderRes, error)
}

type orderService struct {
	od  dao.OrderDao
	pr  dao.PairDao
	gen exchange.OrderIDGenerator
}

func NewOrderService(od dao.OrderDao, pr dao.PairDao, gen exchange.OrderIDGenerator) *orderService {
	return &orderService{od: od, pr: pr, gen: gen}
}

func (o *orderService) OrderPlace(ctx context.Context, accountId int64, req model.OrderPlaceReq) (int64, error) {
	pair, err := o.pr.PairResolve(ctx, req.Base, req.Quote)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.WithCode(ecode.NotFoundErr, "Trading pair %s/%s not found", req.Base, req.Quote)
		}
		return 0, pkgerrors.Wrap(err, ecode.StorageErr, "resolve trading pair failed")
	}

	// 只能对账户自己组合里的持仓下单，join过滤掉别人的组合
	quotationId, err := o.od.QuotationLocate(ctx, accountId, req.PortfolioId, pair.QuoteCurrencyId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.WithCode(ecode.NotFoundErr, "Position not found")
		}
		return 0, pkgerrors.Wrap(err, ecode.StorageErr, "locate quotation failed")
	}

	price, err := parsePositiveAmount(req.Price)
	if err != nil {
		return 0, pkgerrors.WithCode(ecode.QuantityErr, "Invalid price %q", req.Price)
	}
	qty, err := parsePositiveAmount(req.Quantity)
	if err != nil {
		return 0, pkgerrors.WithCode(ecode.QuantityErr, "Invalid quantity %q", req.Quantity)
	}

	orderId := o.gen.GenOrderID(req.Base, req.Quote, req.OrderType, req.Price, req.Quantity)
	order := entity.Order{
		Id:            orderId,
		QuotationId:   quotationId,
		TradingPairId: pair.TradingPairId,
		PortfolioId:   req.PortfolioId,
		State:         entity.OrderStatePending,
		Buyin:         req.OrderType == "buy",
		Price:         price,
		Qty:           qty,
	}
	if err := o.od.OrderCreate(ctx, &order); err != nil {
		return 0, pkgerrors.Wrap(err, ecode.StorageErr, "create order failed")
	}
	logger.Infof("订单已受理 order_id=%d portfolio_id=%d %s %s/%s", orderId, req.PortfolioId, req.OrderType, req.Base, req.Quote)
	return orderId, nil
}

func (o *orderService) OrderList(ctx context.Context, portfolioId int64, offset, limit int) ([]model.OrderRes, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 10
	}
	rows, err := o.od.OrderListByPortfolio(ctx, portfolioId, offset, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(err, ecode.StorageErr, "query orders failed")
	}

	res := make([]model.OrderRes, 0, len(rows))
	for _, row := range rows {
		base, quote, err := o.pr.PairReverse(ctx, row.TradingPairId)
		if err != nil {
			return nil, pkgerrors.Wrap(err, ecode.StorageErr, "reverse trading pair failed")
		}
		res = append(res, model.OrderRes{
			Id:    row.Id,
			Buyin: row.Buyin,
			State: entity.OrderStateLabel(row.State),
			Base:  base,
			Quote: quote,
			Qty:   row.Qty,
			Price: row.Price,
		})
	}
	return res, nil
}

// 价格和数量必须是正整数（最小币值单位）
func parsePositiveAmount(value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("amount must be positive")
	}
	return n, nil
}
