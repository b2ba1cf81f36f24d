package service

import (
	"context"
	"errors"
	"strings"

	"tradeledger/internal/dao"
	"tradeledger/internal/model"
	"tradeledger/internal/model/entity"
	pkgerrors "tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"

	"gorm.io/gorm"
)

type RiskService interface {
	// 覆盖写入账户的一条风控规则
	RiskUpdate(ctx context.Context, accountId int64, req model.RiskUpdateReq) error
	// 账户当前的全部风控规则
	RiskStatus(ctx context.Context, accountId int64) ([]model.RiskRes, error)
}

type riskService struct {
	rd dao.RiskDao
	pd dao.PortfolioDao
}

func NewRiskService(rd dao.RiskDao, pd dao.PortfolioDao) *riskService {
	return &riskService{rd: rd, pd: pd}
}

func (r *riskService) RiskUpdate(ctx context.Context, accountId int64, req model.RiskUpdateReq) error {
	// position为空表示全部持仓，非空时必须是 BASE/QUOTE 形式
	if req.Position != "" {
		base, quote, ok := strings.Cut(req.Position, "/")
		if !ok || base == "" || quote == "" {
			return pkgerrors.WithCode(ecode.ValidateErr, "Position must look like BASE/QUOTE, got %q", req.Position)
		}
	}

	// pid非0时规则只能挂在账户自己的组合上
	if req.Pid != 0 {
		if _, err := r.pd.PortfolioGetById(ctx, accountId, req.Pid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.WithCode(ecode.NotFoundErr, "The portfolio does not exist")
			}
			return pkgerrors.Wrap(err, ecode.StorageErr, "query portfolio failed")
		}
	}

	rule := entity.RiskRule{
		AccountId:   accountId,
		PortfolioId: req.Pid,
		RiskType:    req.RiskType,
		Position:    req.Position,
		Enabled:     *req.On,
		Pnl:         req.Pnl,
	}
	if err := r.rd.RiskUpsert(ctx, &rule); err != nil {
		return pkgerrors.Wrap(err, ecode.StorageErr, "upsert risk rule failed")
	}
	return nil
}

func (r *riskService) RiskStatus(ctx context.Context, accountId int64) ([]model.RiskRes, error) {
	rules, err := r.rd.RiskListByAccount(ctx, accountId)
	if err != nil {
		return nil, pkgerrors.Wrap(err, ecode.StorageErr, "query risk rules failed")
	}

	res := make([]model.RiskRes, 0, len(rules))
	for _, rule := range rules {
		res = append(res, model.RiskRes{
			RiskType: rule.RiskType,
			On:       rule.Enabled,
			Pnl:      rule.Pnl,
			Position: rule.Position,
			Pid:      rule.PortfolioId,
		})
	}
	return res, nil
}
