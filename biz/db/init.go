package db

import (
	"user_center/be/biz/db/mysql"
	"user_center/be/biz/db/redis"
)

func Init() {
	mysql.Init()
	redis.Init()
}
