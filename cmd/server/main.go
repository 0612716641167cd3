package main

import (
	"flag"

	be "user_center/be"
	"user_center/be/biz/config"
	"user_center/be/biz/db"
	"user_center/be/biz/util/logger"
)

//	@title			user center api
//	@version		1.0
//	@description	account registration, login and administration

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "config file path")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()
	db.Init()

	be.NewEngine().Spin()
}
