package dao

import (
	"fmt"

	"gorm.io/gorm"
)

// incrCounter 计数字段增减，结果不小于 0
func incrCounter(db *gorm.DB, model any, id uint64, column string, delta int64) (int64, error) {
	expr := gorm.Expr(fmt.Sprintf("CASE WHEN %[1]s + ? < 0 THEN 0 ELSE %[1]s + ? END", column), delta, delta)
	result := db.Model(model).Where("id = ?", id).UpdateColumn(column, expr)
	return result.RowsAffected, result.Error
}
