package database

import (
	"StudyHub/config"
	"StudyHub/models"
	"StudyHub/pkg/log"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	db, err := Open(conf.Database, conf.Debug())
	if err != nil {
		log.L.Fatal("failed to connect database", zap.String("driver", conf.Database.Driver), zap.Error(err))
	}
	log.L.Info("connect database success", zap.String("driver", conf.Database.Driver))
	return db
}

// Open 按 driver 打开连接，TranslateError 打开后唯一键冲突统一为 gorm.ErrDuplicatedKey
func Open(conf *config.Database, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch conf.Driver {
	case config.DriverMySQL, "":
		dialector = mysql.Open(conf.Dsn())
	case config.DriverPostgres:
		dialector = postgres.Open(conf.Dsn())
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.Dsn())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
	}

	gormConf := &gorm.Config{TranslateError: true}
	if !debug {
		gormConf.Logger = logger.Default.LogMode(logger.Warn)
	}
	db, err := gorm.Open(dialector, gormConf)
	if err != nil {
		return nil, err
	}
	if conf.Driver == config.DriverSQLite {
		// sqlite 单写者，避免事务内外连接互相等待
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate 建表及唯一索引
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Note{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Achievement{},
		&models.CreditLog{},
	)
}
