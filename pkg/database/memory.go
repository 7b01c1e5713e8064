package database

import (
	"StudyHub/config"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpenMemory 独立的内存 sqlite 库并完成建表，本地调试和测试使用
func OpenMemory() (*gorm.DB, error) {
	conf := &config.Database{
		Driver: config.DriverSQLite,
		Name:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	db, err := Open(conf, false)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
