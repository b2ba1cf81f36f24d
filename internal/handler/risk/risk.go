package risk

import (
	"tradeledger/internal/consts"
	"tradeledger/internal/model"
	"tradeledger/internal/service"
	"tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"
	"tradeledger/pkg/response"
	"tradeledger/pkg/validator"

	"github.com/gin-gonic/gin"
)

type RiskHandler struct {
	service service.RiskService
}

func NewRiskHandler(service service.RiskService) *RiskHandler {
	return &RiskHandler{service: service}
}

// @Summary		更新风控规则
// @Description	同一(类型,持仓,组合)的规则覆盖写入；pid为0表示账户级
// @Accept			json
// @Produce		json
// @Success		200	{object}	response.ApiResponse
// @Router			/api/risk [post]
func (handler *RiskHandler) RiskUpdate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		var req model.RiskUpdateReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", validator.Translate(err)), nil)
			return
		}
		if err := handler.service.RiskUpdate(ctx, userId, req); err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, nil)
	}
}

// @Summary		风控规则查询
// @Produce		json
// @Success		200	{object}	response.ApiResponse{data=[]model.RiskRes}
// @Router			/api/risk [get]
func (handler *RiskHandler) RiskGetStatus() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		res, err := handler.service.RiskStatus(ctx, userId)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSONList(ctx, res, len(res))
	}
}
