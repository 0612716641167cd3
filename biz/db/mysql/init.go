package mysql

import (
	"fmt"

	"user_center/be/biz/config"
	"user_center/be/biz/model/storage"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var globalDB *gorm.DB

func Init() {
	conf := config.GetMySQLConf()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.Username, conf.Password, conf.IP, conf.Port, conf.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(&storage.UserRecord{}); err != nil {
		panic(err)
	}

	globalDB = db
}

func GetDbConn() *gorm.DB {
	return globalDB
}
