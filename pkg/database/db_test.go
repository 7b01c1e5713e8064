package database

import (
	"StudyHub/config"
	"StudyHub/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.Database{Driver: "oracle"}, false)
	assert.Error(t, err)
}

func TestOpenMemory_Isolated(t *testing.T) {
	a, err := OpenMemory()
	require.NoError(t, err)
	b, err := OpenMemory()
	require.NoError(t, err)

	require.NoError(t, a.Create(&models.User{Username: "alice", Password: "x"}).Error)

	var count int64
	require.NoError(t, b.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestMigrate_UniqueConstraintsTranslated(t *testing.T) {
	db, err := OpenMemory()
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.User{Username: "alice", Password: "x"}).Error)
	err = db.Create(&models.User{Username: "alice", Password: "y"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, db.Create(&models.Achievement{UserID: 1, Type: models.AchievementFirstNote, Title: "t"}).Error)
	err = db.Create(&models.Achievement{UserID: 1, Type: models.AchievementFirstNote, Title: "t"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestDsn(t *testing.T) {
	mysqlConf := &config.Database{Driver: config.DriverMySQL, Host: "127.0.0.1", Port: 3306, Username: "root", Password: "pw", Name: "studyhub"}
	assert.Equal(t, "root:pw@tcp(127.0.0.1:3306)/studyhub?charset=utf8mb4&parseTime=True&loc=Local", mysqlConf.Dsn())

	pgConf := &config.Database{Driver: config.DriverPostgres, Host: "db", Port: 5432, Username: "u", Password: "p", Name: "n"}
	assert.Contains(t, pgConf.Dsn(), "sslmode=disable")

	sqliteConf := &config.Database{Driver: config.DriverSQLite, Name: "studyhub.db"}
	assert.Equal(t, "studyhub.db", sqliteConf.Dsn())
}

func TestMigrate_FreshDatabaseTwice(t *testing.T) {
	db, err := OpenMemory()
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	m := db.Migrator()
	assert.True(t, m.HasIndex(&models.Note{}, "idx_notes_created_at"))
	assert.True(t, m.HasIndex(&models.Post{}, "idx_posts_created_at"))
	assert.True(t, m.HasIndex(&models.Like{}, "idx_likes_note_id"))
	assert.True(t, m.HasIndex(&models.Comment{}, "idx_comments_note_id"))
	assert.True(t, m.HasIndex(&models.Achievement{}, "uk_achievements_user_type"))
	assert.True(t, m.HasIndex(&models.CreditLog{}, "uk_credit_logs_user_source"))
}
