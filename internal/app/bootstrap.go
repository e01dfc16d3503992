package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"alethea-inspector/internal/domain/model"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultServiceURL  = "http://localhost:8082"
	DefaultChainID     = "3482d6e583c1ea93461a9df51dda460cb1d855fb30d8c9c5719145b07692147b"
	DefaultAppID       = "fee1da3380b869246b647b9deedaed0403043c4474b1b347cf2f8297da674126"
	DefaultFaucetOwner = "a14d36f87a4d786817dfbbc64f5740e8fc8b6186d0f131ea62a442127e7364ae"
	DefaultAddress     = "f1008485b277add6c3b54207014df45fd8fb48e8146689ba554128a32a6f1ce8"
	DefaultAmount      = "1000."
)

// 环境变量覆盖项。
const (
	EnvServiceURL = "LINERA_SERVICE"
	EnvChainID    = "ALETHEA_CHAIN_ID"
	EnvAppID      = "ALETHEA_APP_ID"
	EnvTimeout    = "ALETHEA_TIMEOUT"
)

// Config 存放一次运行所需的全部配置，构造 Reporter 时显式传入。
//
// 优先级：命令行参数 > 环境变量（含 .env） > YAML 配置文件 > DefaultConfig。
type Config struct {
	ServiceURL string `yaml:"service_url" validate:"required"`
	ChainID    string `yaml:"chain_id" validate:"required"`
	AppID      string `yaml:"app_id" validate:"required"`

	// FaucetOwner 只做展示，不参与任何请求。
	FaucetOwner string `yaml:"faucet_owner"`

	DefaultAddress string `yaml:"default_address"`
	DefaultAmount  string `yaml:"default_amount"`

	// Timeout 为 0 表示不设超时（与旧脚本一致）。
	Timeout     time.Duration `yaml:"timeout" validate:"gte=0"`
	EscapeArgs  bool          `yaml:"escape_arguments"`
	LogLevel    string        `yaml:"log_level"`
	PrivacyMode string        `yaml:"privacy_mode"`
}

// DefaultConfig 返回本地 Linera 节点的默认配置。
func DefaultConfig() Config {
	return Config{
		ServiceURL:     DefaultServiceURL,
		ChainID:        DefaultChainID,
		AppID:          DefaultAppID,
		FaucetOwner:    DefaultFaucetOwner,
		DefaultAddress: DefaultAddress,
		DefaultAmount:  DefaultAmount,
		LogLevel:       "warn",
		PrivacyMode:    "off",
	}
}

// Endpoint 返回查询目标。
func (c Config) Endpoint() model.Endpoint {
	return model.Endpoint{ServiceURL: c.ServiceURL, ChainID: c.ChainID, AppID: c.AppID}
}

// LoadFile 把 YAML 文件叠加到 cfg 上；文件里没写的字段保持原值。
func LoadFile(cfg Config, path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv 用环境变量覆盖配置。getenv 便于测试注入。
func ApplyEnv(cfg Config, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(EnvServiceURL)); v != "" {
		cfg.ServiceURL = v
	}
	if v := strings.TrimSpace(getenv(EnvChainID)); v != "" {
		cfg.ChainID = v
	}
	if v := strings.TrimSpace(getenv(EnvAppID)); v != "" {
		cfg.AppID = v
	}
	if v := strings.TrimSpace(getenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}

// LoadEnvFiles 依次尝试 dir 与当前目录下的 .env.local / .env，命中一个即停止。
// 已存在的系统环境变量优先，不会被 .env 覆盖。
func LoadEnvFiles(dir string) string {
	names := []string{".env.local", ".env"}
	dirs := []string{}
	if strings.TrimSpace(dir) != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, ".")
	for _, d := range dirs {
		for _, name := range names {
			p := filepath.Join(d, name)
			if err := godotenv.Load(p); err == nil {
				return p
			}
		}
	}
	return ""
}

var validate = validator.New()

// Validate 只检查必填项是否存在，不校验 chain/app id 的格式。
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
