package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"tradeledger/internal/consts"
	"tradeledger/internal/dao"
	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"
	pkgerrors "tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"

	"gorm.io/gorm"
)

type PortfolioService interface {
	// 创建组合及其全部从属行，原子操作，返回组合id
	PortfolioCreate(ctx context.Context, accountId int64, req model.PortfolioAddReq) (int64, error)
	// 按id删除账户名下的组合，级联删除订单、余额、报价、持仓
	PortfolioRemove(ctx context.Context, accountId, portfolioId int64) error
	// 按名称删除，遗留客户端路径
	PortfolioRemoveByName(ctx context.Context, accountId int64, name string) error
	// 列出账户名下全部组合
	PortfolioList(ctx context.Context, accountId int64) ([]model.PortfolioRes, error)
}

type portfolioService struct {
	pd dao.PortfolioDao
	pr dao.PairDao
}

func NewPortfolioService(pd dao.PortfolioDao, pr dao.PairDao) *portfolioService {
	return &portfolioService{pd: pd, pr: pr}
}

// 先解析全部交易对再动存储，解析失败时一行都不会写
func (p *portfolioService) PortfolioCreate(ctx context.Context, accountId int64, req model.PortfolioAddReq) (int64, error) {
	pairs := make([]model.ResolvedPair, 0, len(req.Position))
	for _, pos := range req.Position {
		parts := strings.Split(pos, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return 0, pkgerrors.WithCode(ecode.ValidateErr, "Position must look like BASE/QUOTE, got %q", pos)
		}
		resolved, err := p.pr.PairResolve(ctx, parts[0], parts[1])
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, pkgerrors.WithCode(ecode.NotFoundErr, "Position not found")
			}
			return 0, pkgerrors.Wrap(err, ecode.StorageErr, "resolve trading pair failed")
		}
		pairs = append(pairs, resolved)
	}

	portfolio := entity.Portfolio{
		Name:            req.Name,
		TraderAccountId: accountId,
		PortfolioType:   consts.PortfolioTypeTrading,
	}
	if err := p.pd.PortfolioCreateWithPositions(ctx, &portfolio, pairs); err != nil {
		return 0, pkgerrors.Wrap(err, ecode.TransactionErr, "create portfolio failed")
	}
	return portfolio.Id, nil
}

func (p *portfolioService) PortfolioRemove(ctx context.Context, accountId, portfolioId int64) error {
	portfolio, err := p.pd.PortfolioGetById(ctx, accountId, portfolioId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.WithCode(ecode.NotFoundErr, "The portfolio does not exist")
		}
		return pkgerrors.Wrap(err, ecode.StorageErr, "query portfolio failed")
	}
	return p.removeCascade(ctx, portfolio.Id)
}

func (p *portfolioService) PortfolioRemoveByName(ctx context.Context, accountId int64, name string) error {
	portfolio, err := p.pd.PortfolioGetByName(ctx, accountId, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.WithCode(ecode.NotFoundErr, "The portfolio does not exist")
		}
		return pkgerrors.Wrap(err, ecode.StorageErr, "query portfolio failed")
	}
	return p.removeCascade(ctx, portfolio.Id)
}

func (p *portfolioService) removeCascade(ctx context.Context, portfolioId int64) error {
	if err := p.pd.PortfolioRemoveCascade(ctx, portfolioId); err != nil {
		return pkgerrors.Wrap(err, ecode.TransactionErr, "remove portfolio failed")
	}
	return nil
}

func (p *portfolioService) PortfolioList(ctx context.Context, accountId int64) ([]model.PortfolioRes, error) {
	portfolios, err := p.pd.PortfolioListByAccount(ctx, accountId)
	if err != nil {
		return nil, pkgerrors.Wrap(err, ecode.StorageErr, "query portfolios failed")
	}

	res := make([]model.PortfolioRes, 0, len(portfolios))
	for _, portfolio := range portfolios {
		balances, err := p.pd.PortfolioBalances(ctx, portfolio.Id)
		if err != nil {
			return nil, pkgerrors.Wrap(err, ecode.StorageErr, "query portfolio balance failed")
		}
		positions := make([]model.PortfolioPositionRes, 0, len(balances))
		for _, balance := range balances {
			symbol, err := p.pr.CurrencyGetById(ctx, balance.CurrencyId)
			if err != nil {
				return nil, pkgerrors.Wrap(err, ecode.StorageErr, "query currency failed")
			}
			positions = append(positions, model.PortfolioPositionRes{
				Balance: strconv.FormatInt(balance.Quantity, 10),
				Symbol:  symbol,
			})
		}
		res = append(res, model.PortfolioRes{
			Name:      portfolio.Name,
			Id:        portfolio.Id,
			Positions: positions,
		})
	}
	return res, nil
}
