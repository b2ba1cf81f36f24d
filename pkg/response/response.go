package response

import (
	"net/http"

	"tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"

	"github.com/gin-gonic/gin"
)

// 响应给客户端的消息结构，沿用遗留前端约定的字段
// 成功时status为successful，失败时为error并带message
type ApiResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Id      interface{} `json:"id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Len     *int        `json:"len,omitempty"`
}

const (
	StatusSuccessful = "successful"
	StatusError      = "error"
)

// 错误码到http状态码的映射
// 查找类、参数类失败返回400，认证失败返回401，会话签发失败503，其余500
func httpStatus(code int) int {
	switch code {
	case ecode.Success:
		return http.StatusOK
	case ecode.ValidateErr, ecode.QuantityErr, ecode.TokenFormatErr,
		ecode.UserLoginErr, ecode.NotFoundErr:
		return http.StatusBadRequest
	case ecode.RequireAuthErr:
		return http.StatusUnauthorized
	case ecode.SessionErr:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// JSON 发送json格式数据，err为nil时发送成功响应
func JSON(c *gin.Context, err error, data interface{}) {
	code, message := errors.DecodeErr(err)
	if code != ecode.Success {
		c.JSON(httpStatus(code), ApiResponse{
			Status:  StatusError,
			Message: message,
		})
		return
	}
	c.JSON(http.StatusOK, ApiResponse{
		Status: StatusSuccessful,
		Data:   data,
	})
}

// JSONId 创建类接口的成功响应，{"status":"successful","id":...}
func JSONId(c *gin.Context, id interface{}) {
	c.JSON(http.StatusOK, ApiResponse{
		Status: StatusSuccessful,
		Id:     id,
	})
}

// JSONList 列表类接口的成功响应，带len字段
func JSONList(c *gin.Context, data interface{}, length int) {
	c.JSON(http.StatusOK, ApiResponse{
		Status: StatusSuccessful,
		Data:   data,
		Len:    &length,
	})
}

// TooManyRequests 请求频繁，返回429
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ApiResponse{
		Status:  StatusError,
		Message: "The request is too frequent. Please try again later.",
	})
}
