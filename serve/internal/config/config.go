package config

import "github.com/zeromicro/go-zero/core/stores/redis"

type Config struct {
	ListenOn  string `json:",default=0.0.0.0:8000"`
	Redis     redis.RedisConf
	MongoConf struct {
		Url          string
		DataBaseName string
		PassWord     string `json:",optional"`
	}
}
