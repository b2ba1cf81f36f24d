package session

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand/v2"
	"sync"

	"tradeledger/pkg/errors"
	"tradeledger/pkg/errors/ecode"
)

// TokenLen 会话token的字节长度，128位
const TokenLen = 16

// Token 一个不透明的128位会话标识，字节序为小端
// cookie中的形式是它的十进制字符串，数据库中存的是原始字节
type Token [TokenLen]byte

// CookieValue 返回token的十进制字符串编码
func (t Token) CookieValue() string {
	// 小端字节转大端后再构造大整数
	buf := make([]byte, TokenLen)
	for i, b := range t {
		buf[TokenLen-1-i] = b
	}
	return new(big.Int).SetBytes(buf).String()
}

// DatabaseValue 返回写入会话表的原始字节
func (t Token) DatabaseValue() []byte {
	v := make([]byte, TokenLen)
	copy(v, t[:])
	return v
}

// FromCookieValue 解析cookie中的十进制字符串，非法输入返回TokenFormatErr
func FromCookieValue(value string) (Token, error) {
	var t Token
	if value == "" {
		return t, errors.WithCode(ecode.TokenFormatErr, "empty session token")
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return t, errors.WithCode(ecode.TokenFormatErr, "malformed session token")
		}
	}
	n, ok := new(big.Int).SetString(value, 10)
	if !ok || n.BitLen() > 128 {
		return t, errors.WithCode(ecode.TokenFormatErr, "malformed session token")
	}
	be := n.FillBytes(make([]byte, TokenLen))
	for i, b := range be {
		t[TokenLen-1-i] = b
	}
	return t, nil
}

// FromDatabaseValue 从会话表字节还原token
func FromDatabaseValue(value []byte) (Token, error) {
	var t Token
	if len(value) != TokenLen {
		return t, fmt.Errorf("session token must be %d bytes, got %d", TokenLen, len(value))
	}
	copy(t[:], value)
	return t, nil
}

// TokenSource 进程内唯一的token发生器
// 底层是一条启动时用系统熵源播种的ChaCha8流，所有请求共用
// 互斥锁只覆盖16字节的读取，避免成为吞吐瓶颈
type TokenSource struct {
	mu  sync.Mutex
	rng *rand.ChaCha8
}

// NewTokenSource 从操作系统熵源播种一个token发生器
func NewTokenSource() (*TokenSource, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("seed session token source: %w", err)
	}
	return &TokenSource{rng: rand.NewChaCha8(seed)}, nil
}

// Token 从共享随机流中读取16字节生成一个新token
func (s *TokenSource) Token() Token {
	var t Token
	s.mu.Lock()
	_, _ = s.rng.Read(t[:])
	s.mu.Unlock()
	return t
}
