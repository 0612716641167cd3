package redis

import (
	"fmt"

	"user_center/be/biz/config"

	"github.com/redis/go-redis/v9"
)

var globalClient *redis.Client

func Init() {
	conf := config.GetRedisConf()

	globalClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.IP, conf.Port),
		Password: conf.Password,
		DB:       conf.DB,
	})
}

func GetRedisClient() *redis.Client {
	return globalClient
}
