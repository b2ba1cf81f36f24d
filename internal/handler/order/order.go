package order

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

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(service service.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// @Summary		下单
// @Description	只记录订单行，撮合由外部引擎负责；state从pending开始
// @Accept			json
// @Produce		json
// @Success		200	{object}	response.ApiResponse
// @Router			/api/order [post]
func (handler *OrderHandler) OrderPlace() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userId := ctx.GetInt64(consts.UserID)
		var req model.OrderPlaceReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "%s", validator.Translate(err)), nil)
			return
		}
		orderId, err := handler.service.OrderPlace(ctx, userId, req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSON(ctx, nil, orderId)
	}
}

// @Summary		订单列表
// @Description	按组合id分页，st偏移量默认0，len条数默认10
// @Produce		json
// @Success		200	{object}	response.ApiResponse{data=[]model.OrderRes}
// @Router			/api/order [get]
func (handler *OrderHandler) OrderGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		portfolioId := cast.ToInt64(ctx.Query("id"))
		if portfolioId == 0 {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "id is required"), nil)
			return
		}
		offset := cast.ToInt(ctx.DefaultQuery("st", "0"))
		limit := cast.ToInt(ctx.DefaultQuery("len", "10"))

		res, err := handler.service.OrderList(ctx, portfolioId, offset, limit)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSONList(ctx, res, len(res))
	}
}
