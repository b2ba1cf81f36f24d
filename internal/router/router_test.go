package router

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradeledger/internal/dao/query"
	"tradeledger/internal/handler/auth"
	"tradeledger/internal/handler/order"
	"tradeledger/internal/handler/portfolio"
	"tradeledger/internal/handler/risk"
	"tradeledger/internal/model/entity"
	"tradeledger/internal/service"
	"tradeledger/pkg/exchange"
	"tradeledger/pkg/session"
	"tradeledger/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiResult struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Id      int64           `json:"id"`
	Data    json.RawMessage `json:"data"`
	Len     *int            `json:"len"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Account{}, &entity.Session{},
		&entity.Currency{}, &entity.TradingPair{},
		&entity.Portfolio{}, &entity.PortfolioBalance{}, &entity.Position{}, &entity.Quotation{},
		&entity.Order{}, &entity.RiskRule{},
	))

	pd := query.NewPairDao(db)
	ctx := context.Background()
	baseId, err := pd.CurrencyEnsure(ctx, "BTC")
	require.NoError(t, err)
	quoteId, err := pd.CurrencyEnsure(ctx, "USD")
	require.NoError(t, err)
	_, err = pd.PairEnsure(ctx, baseId, quoteId)
	require.NoError(t, err)

	ts, err := session.NewTokenSource()
	require.NoError(t, err)
	ss := service.NewSessionService(query.NewSessionDao(db), query.NewAccountDao(db), ts, nil)
	us := service.NewUserService(query.NewAccountDao(db), ss)
	fs := service.NewPortfolioService(query.NewPortfolioDao(db), pd)
	os := service.NewOrderService(query.NewOrderDao(db), pd, exchange.NewSnowflakeOrderIDGenerator(1))
	rs := service.NewRiskService(query.NewRiskDao(db), query.NewPortfolioDao(db))

	g := gin.New()
	api := NewApiRouter(
		auth.NewAuthHandler(us),
		portfolio.NewPortfolioHandler(fs),
		order.NewOrderHandler(os),
		risk.NewRiskHandler(rs),
		ss,
	)
	api.Load(g)
	validator.LazyInitGinValidator("en")
	return g
}

type client struct {
	t       *testing.T
	g       *gin.Engine
	cookies []*http.Cookie
	reqSeq  int
}

// do 每个请求换一个来源ip，绕开防重放限流
func (c *client) do(method, target, body string) (*httptest.ResponseRecorder, apiResult) {
	c.t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	c.reqSeq++
	req.RemoteAddr = fmt.Sprintf("10.1.%d.%d:40000", c.reqSeq/250, c.reqSeq%250)
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.g.ServeHTTP(w, req)

	// 记住服务端下发的cookie，模拟浏览器
	for _, cookie := range w.Result().Cookies() {
		replaced := false
		for i, existing := range c.cookies {
			if existing.Name == cookie.Name {
				c.cookies[i] = cookie
				replaced = true
			}
		}
		if !replaced {
			c.cookies = append(c.cookies, cookie)
		}
	}

	var res apiResult
	if strings.Contains(w.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(w.Body.Bytes(), &res)
	}
	return w, res
}

func (c *client) cookie(name string) *http.Cookie {
	for _, cookie := range c.cookies {
		if cookie.Name == name && cookie.Value != "" {
			return cookie
		}
	}
	return nil
}

func TestApiEndToEnd(t *testing.T) {
	g := newTestEngine(t)
	c := &client{t: t, g: g}

	// 未登陆时受保护路由一律401
	w, _ := c.do(http.MethodGet, "/api/portfolio", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 注册
	w, res := c.do(http.MethodPost, "/api/auth/user", `{"name":"alice","password":"s3cret-pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "successful", res.Status)

	// 重名注册被拒
	w, res = c.do(http.MethodPost, "/api/auth/user", `{"name":"alice","password":"other-pw"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", res.Status)
	assert.Equal(t, "Username already taken.", res.Message)

	// 错误密码登陆
	w, res = c.do(http.MethodPost, "/api/auth/login", `{"name":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Wrong password.", res.Message)

	// 登陆成功，两个cookie都应下发
	w, res = c.do(http.MethodPost, "/api/auth/login", `{"name":"alice","password":"s3cret-pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "successful", res.Status)
	userCookie := c.cookie("user_token")
	require.NotNil(t, userCookie)
	typeCookie := c.cookie("account_type")
	require.NotNil(t, typeCookie)
	assert.Equal(t, "1", typeCookie.Value)
	// 会话token是十进制数字串
	for _, ch := range userCookie.Value {
		require.True(t, ch >= '0' && ch <= '9')
	}

	// 登陆状态
	w, _ = c.do(http.MethodGet, "/api/auth/user", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Login"`)

	// 创建组合
	w, res = c.do(http.MethodPost, "/api/portfolio", `{"name":"swing","position":["BTC/USD"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "successful", res.Status)
	portfolioId := res.Id
	require.NotZero(t, portfolioId)

	// 未知交易对
	w, res = c.do(http.MethodPost, "/api/portfolio", `{"name":"bad","position":["DOGE/USD"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Position not found", res.Message)

	// 列表带零余额
	w, res = c.do(http.MethodGet, "/api/portfolio", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, res.Len)
	assert.Equal(t, 1, *res.Len)
	assert.Contains(t, string(res.Data), `"balance":"0"`)
	assert.Contains(t, string(res.Data), `"symbol":"BTC"`)

	// 下单
	body := fmt.Sprintf(`{"base":"BTC","quote":"USD","order_type":"buy","price":"50000","quantity":"2","portfolio_id":%d}`, portfolioId)
	w, res = c.do(http.MethodPost, "/api/order", body)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "successful", res.Status)
	var orderId int64
	require.NoError(t, json.Unmarshal(res.Data, &orderId))
	require.NotZero(t, orderId)

	// 非法数量
	body = fmt.Sprintf(`{"base":"BTC","quote":"USD","order_type":"buy","price":"50000","quantity":"-1","portfolio_id":%d}`, portfolioId)
	w, _ = c.do(http.MethodPost, "/api/order", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 订单列表
	w, res = c.do(http.MethodGet, fmt.Sprintf("/api/order?id=%d&st=0&len=10", portfolioId), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, res.Len)
	assert.Equal(t, 1, *res.Len)
	assert.Contains(t, string(res.Data), `"state":"pending"`)
	assert.Contains(t, string(res.Data), `"buyin":true`)

	// 风控规则：覆盖写入后查询
	body = fmt.Sprintf(`{"risk_type":"buy","on":true,"pnl":500,"position":"BTC/USD","pid":%d}`, portfolioId)
	w, res = c.do(http.MethodPost, "/api/risk", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "successful", res.Status)

	w, res = c.do(http.MethodGet, "/api/risk", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, res.Len)
	assert.Equal(t, 1, *res.Len)
	assert.Contains(t, string(res.Data), `"risk_type":"buy"`)
	assert.Contains(t, string(res.Data), `"on":true`)

	// 按id删除组合
	w, res = c.do(http.MethodDelete, fmt.Sprintf("/api/portfolio?id=%d", portfolioId), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "successful", res.Status)

	w, res = c.do(http.MethodDelete, fmt.Sprintf("/api/portfolio?id=%d", portfolioId), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "The portfolio does not exist", res.Message)

	// 登出后会话作废
	w, _ = c.do(http.MethodGet, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	c.cookies = []*http.Cookie{{Name: "user_token", Value: userCookie.Value}}
	w, _ = c.do(http.MethodGet, "/api/portfolio", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApiRejectsForgedCookie(t *testing.T) {
	g := newTestEngine(t)
	c := &client{t: t, g: g}

	c.cookies = []*http.Cookie{{Name: "user_token", Value: "not-a-number"}}
	w, _ := c.do(http.MethodGet, "/api/portfolio", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c.cookies = []*http.Cookie{{Name: "user_token", Value: "12345678901234567890"}}
	w, _ = c.do(http.MethodGet, "/api/portfolio", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRouteRateLimited(t *testing.T) {
	g := newTestEngine(t)

	// 同一ip一秒内重复打注册接口，第二次被限流
	fire := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/user", strings.NewReader(`{"name":"bob","password":"s3cret-pw"}`))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.9.9.9:40000"
		w := httptest.NewRecorder()
		g.ServeHTTP(w, req)
		return w
	}

	first := fire()
	assert.Equal(t, http.StatusOK, first.Code)
	second := fire()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
