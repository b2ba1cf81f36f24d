package exchange

import "tradeledger/utils/uuid"

// OrderIDGenerator 外部交易引擎的发号能力
// 撮合和定价不在本服务内，这里只拿一个订单id回来
type OrderIDGenerator interface {
	GenOrderID(base, quote, orderType, price, quantity string) int64
}

// snowflakeGenerator 本地snowflake发号实现，接没有真实交易引擎的环境
type snowflakeGenerator struct {
	node *uuid.SnowNode
}

func NewSnowflakeOrderIDGenerator(nodeId int64) OrderIDGenerator {
	return &snowflakeGenerator{node: uuid.NewNode(nodeId)}
}

func (g *snowflakeGenerator) GenOrderID(base, quote, orderType, price, quantity string) int64 {
	return g.node.GenSnowID()
}
