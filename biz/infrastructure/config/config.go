package config

import (
	_ "embed"
	"os"

	"clearcode-server/biz/infrastructure/consts"
	"clearcode-server/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// //go:embed config.local.yaml
var embeddedConfig []byte

var config *Config

type Auth struct {
	PublicKey string `json:",optional"`
	// DevSkipTokenVerify 开启后允许未验签解码 token, 仅限非 prod 环境
	DevSkipTokenVerify bool `json:",optional"`
}

type Cors struct {
	AllowOrigins []string `json:",optional"`
}

type API struct {
	GithubURL   string `json:",default=https://api.github.com"`
	GithubToken string `json:",optional"`
}

type LogConfig struct {
	NoLogPaths []string `json:",optional"`
}

type Config struct {
	service.ServiceConf
	ListenOn  string
	State     string `json:",default=dev"`
	ApiPrefix string `json:",default=/api/v1"`
	Auth      Auth
	Cors      Cors
	Mongo     struct {
		URL string `json:",optional"`
		DB  string `json:",optional"`
	}
	Cache cache.CacheConf  `json:",optional"`
	Redis *redis.RedisConf `json:",optional"`
	Api   API
	Log   LogConfig
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if len(embeddedConfig) == 0 {
		path := os.Getenv("CONFIG_PATH")
		log.Info("NewConfig load config from path: %s", path)
		err := conf.Load(path, c, conf.UseEnv())
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(embeddedConfig, c)
		if err != nil {
			return nil, err
		}
	}

	if c.ApiPrefix == "" {
		c.ApiPrefix = consts.DefaultApiPrefix
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}

// SetConfig 注入配置, 测试用
func SetConfig(c *Config) {
	config = c
}
