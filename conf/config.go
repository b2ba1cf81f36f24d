package conf

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Db struct {
	DbName   string `yaml:"dbname"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"file-name"`
	TimeFormat string `yaml:"time-format"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
	Compress   bool   `yaml:"compress"`
	LocalTime  bool   `yaml:"local-time"`
	Console    bool   `yaml:"console"`
}

// RedisConfig is used to configure redis
type RedisConfig struct {
	Addr         string `yaml:"address"`
	Password     string `yaml:"password"`
	Db           int    `yaml:"db"`
	PoolSize     int    `yaml:"pool-size"`
	MinIdleConns int    `yaml:"min-idle-conns"`
	IdleTimeout  int    `yaml:"idle-timeout"`
	Enabled      bool   `yaml:"enabled"`
}

type SessionConfig struct {
	CookieMaxAge int   `yaml:"cookie-max-age"` // 会话cookie有效期（秒），0表示浏览器会话cookie
	CacheTtl     int64 `yaml:"cache-ttl"`      // redis中会话缓存的有效期（秒）
	Secure       bool  `yaml:"secure"`         // 仅https下发cookie
}

func (s SessionConfig) CacheExpiration() time.Duration {
	if s.CacheTtl <= 0 {
		return time.Hour
	}
	return time.Duration(s.CacheTtl) * time.Second
}

type Config struct {
	AppName      string `yaml:"app_name"`
	Listen       string `yaml:"listen"`
	Mode         string `yaml:"mode"`
	Language     string `yaml:"language"`
	MaxPingCount int    `yaml:"max-ping-count"`

	// 启动时保证存在的交易对，形如 "BTC/USD"
	Markets []string `yaml:"markets"`

	Db      `yaml:"database"`
	Log     LogConfig     `yaml:"log"`
	Redis   RedisConfig   `yaml:"redis"`
	Session SessionConfig `yaml:"session"`
}

var AppConfig Config

func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Read config file error %w", err)
	}
	if err := yaml.Unmarshal(data, &AppConfig); err != nil {
		return fmt.Errorf("Unmarshal config yaml error: %w", err)
	}
	return nil
}
