package service

import (
	"StudyHub/config"
	"StudyHub/dao"
	"StudyHub/dao/cache"
	"StudyHub/models"
	"StudyHub/pkg/database"
	"StudyHub/pkg/filestore"
	"StudyHub/pkg/snowflake"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	conf     *config.Config
	store    *filestore.LocalStore
	users    *dao.Users
	points   *dao.Point
	ledger   *LedgerService
	likes    *LikeService
	notes    *NoteService
	posts    *PostService
	comments *CommentsService
	stats    *StatsService
	auth     *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithLedger(t, config.DefaultLedger())
}

func newTestEnvWithLedger(t *testing.T, ledgerConf *config.Ledger) *testEnv {
	t.Helper()

	db, err := database.OpenMemory()
	require.NoError(t, err)

	store, err := filestore.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	conf := &config.Config{
		App:     &config.App{Env: "test"},
		Jwt:     &config.Jwt{Secret: "test-secret", ExpiresIn: 3600},
		Storage: &config.StorageConfig{Driver: config.StorageDriverLocal, MaxFileSize: 10 << 20},
		Ledger:  ledgerConf,
	}

	rules := NewLedgerRules(ledgerConf)
	users := dao.NewUsers(db)
	noteDAO := dao.NewNoteDAO(db)
	postDAO := dao.NewPostDAO(db)
	likeDAO := dao.NewLikeDAO(db)
	points := dao.NewPoint(db)
	achievements := dao.NewAchievementDAO(db)
	board := cache.NewLeaderboardStorage(nil)

	ledger := &LedgerService{
		DB:             db,
		Rules:          rules,
		UserDAO:        users,
		NoteDAO:        noteDAO,
		LikeDAO:        likeDAO,
		PointDAO:       points,
		AchievementDAO: achievements,
		Leaderboard:    board,
	}
	likes := &LikeService{DB: db, LikeDAO: likeDAO, NoteDAO: noteDAO, PostDAO: postDAO, Ledger: ledger}

	return &testEnv{
		db:     db,
		conf:   conf,
		store:  store,
		users:  users,
		points: points,
		ledger: ledger,
		likes:  likes,
		notes: &NoteService{
			StorageConf: conf.Storage,
			Store:       store,
			NoteDAO:     noteDAO,
			UserDAO:     users,
			LikeService: likes,
			Ledger:      ledger,
		},
		posts: &PostService{
			StorageConf: conf.Storage,
			Store:       store,
			PostDAO:     postDAO,
			UserDAO:     users,
			LikeService: likes,
		},
		comments: &CommentsService{
			DB:         db,
			CommentDAO: dao.NewComment(db),
			NoteDAO:    noteDAO,
			PostDAO:    postDAO,
			UserDAO:    users,
		},
		stats: &StatsService{
			UserDAO:        users,
			NoteDAO:        noteDAO,
			LikeDAO:        likeDAO,
			AchievementDAO: achievements,
			Cache:          board,
		},
		auth: &UserService{
			Config:    conf,
			DB:        db,
			Rules:     rules,
			UsersRepo: users,
			Ledger:    ledger,
		},
	}
}

func (e *testEnv) createUser(t *testing.T, username string, credits int64) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "x", Credits: credits}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *testEnv) credits(t *testing.T, userID uint64) int64 {
	t.Helper()
	credits, err := e.users.GetCredits(context.Background(), userID)
	require.NoError(t, err)
	return credits
}

// createNote 绕过文件上传直接走积分规则
func (e *testEnv) createNote(t *testing.T, authorID uint64, title string) *models.Note {
	t.Helper()
	note := &models.Note{
		Title:    title,
		Subject:  "math",
		FilePath: "notes/test.pdf",
		FileName: "test.pdf",
	}
	_, err := e.ledger.CreateNote(context.Background(), note, authorID)
	require.NoError(t, err)
	return note
}

func (e *testEnv) createPost(t *testing.T, authorID uint64) *models.Post {
	t.Helper()
	post := &models.Post{ID: snowflake.GenID(), Content: "hello", PostType: models.PostTypePost, AuthorID: authorID}
	require.NoError(t, e.db.Create(post).Error)
	return post
}
