package uuid

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	guuid "github.com/google/uuid"
)

// SnowNode 包装一个snowflake节点，用来发全局唯一的int64 id
type SnowNode struct {
	node *snowflake.Node
}

func NewNode(n int64) *SnowNode {
	node, err := snowflake.NewNode(n)
	if err != nil {
		// 节点号非法属于编码错误，直接panic
		panic(err)
	}
	return &SnowNode{node: node}
}

// GenSnowID 生成一个snowflake id
func (s *SnowNode) GenSnowID() int64 {
	return s.node.Generate().Int64()
}

// GenUUID16 生成16位的请求id
func GenUUID16() string {
	u := strings.ReplaceAll(guuid.New().String(), "-", "")
	return u[:16]
}
