package portfolio

import (
	"tradeledger/internal/consts"
	"tradeledger/internal/model"
	"tradeledger/internal/service"
	"tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"
	"tradeledger/pkg/response"
	"tradeledger/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

type PortfolioHandler struct {
	service service.PortfolioService
}

func NewPortfolioHandler(service service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// @Summary		创建组合
// @Description	position形如 ["BTC/USD"]，每个都会生成持仓、报价和两条零余额
// @Accept			json
// @Produce		json
// @Success		200	{object}	response.ApiResponse
// @Router			/api/portfolio [post]
func (handler *PortfolioHandler) PortfolioAdd() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		var req model.PortfolioAddReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", validator.Translate(err)), nil)
			return
		}
		id, err := handler.service.PortfolioCreate(ctx, userId, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSONId(ctx, id)
	}
}

// @Summary		删除组合
// @Description	按id删除，兼容按name的遗留调用；级联删除订单、余额、报价、持仓
// @Produce		json
// @Success		200	{object}	response.ApiResponse
// @Router			/api/portfolio [delete]
func (handler *PortfolioHandler) PortfolioRemove() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)

		if idStr := ctx.Query("id"); idStr != "" {
			if err := handler.service.PortfolioRemove(ctx, userId, cast.ToInt64(idStr)); err != nil {
				response.JSON(ctx, err, nil)
				return
			}
			response.JSON(ctx, nil, nil)
			return
		}

		name := ctx.Query("name")
		if name == "" {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "id or name is required"), nil)
			return
		}
		if err := handler.service.PortfolioRemoveByName(ctx, userId, name); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		组合列表
// @Produce		json
// @Success		200	{object}	response.ApiResponse{data=[]model.PortfolioRes}
// @Router			/api/portfolio [get]
func (handler *PortfolioHandler) PortfolioGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		res, err := handler.service.PortfolioList(ctx, userId)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSONList(ctx, res, len(res))
	}
}
