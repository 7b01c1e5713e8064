package handler

import (
	"StudyHub/config"
	"StudyHub/dao"
	"StudyHub/dao/cache"
	"StudyHub/pkg/database"
	"StudyHub/pkg/filestore"
	"StudyHub/service"
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenMemory()
	require.NoError(t, err)
	store, err := filestore.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	conf := &config.Config{
		App:     &config.App{Env: "test"},
		Jwt:     &config.Jwt{Secret: "handler-secret", ExpiresIn: 3600},
		Storage: &config.StorageConfig{Driver: config.StorageDriverLocal, MaxFileSize: 10 << 20},
		Ledger:  config.DefaultLedger(),
	}

	rules := service.NewLedgerRules(conf.Ledger)
	users := dao.NewUsers(db)
	noteDAO := dao.NewNoteDAO(db)
	postDAO := dao.NewPostDAO(db)
	likeDAO := dao.NewLikeDAO(db)
	achievements := dao.NewAchievementDAO(db)
	board := cache.NewLeaderboardStorage(nil)

	ledger := &service.LedgerService{
		DB: db, Rules: rules, UserDAO: users, NoteDAO: noteDAO, LikeDAO: likeDAO,
		PointDAO: dao.NewPoint(db), AchievementDAO: achievements, Leaderboard: board,
	}
	likes := &service.LikeService{DB: db, LikeDAO: likeDAO, NoteDAO: noteDAO, PostDAO: postDAO, Ledger: ledger}
	comments := &service.CommentsService{DB: db, CommentDAO: dao.NewComment(db), NoteDAO: noteDAO, PostDAO: postDAO, UserDAO: users}
	userService := &service.UserService{Config: conf, DB: db, Rules: rules, UsersRepo: users, Ledger: ledger}

	r := gin.New()
	api := r.Group("/api")
	(&Auth{UserService: userService}).RegisterRouter(api)
	(&Note{
		Config:          conf,
		NoteService:     &service.NoteService{StorageConf: conf.Storage, Store: store, NoteDAO: noteDAO, UserDAO: users, LikeService: likes, Ledger: ledger},
		LikeService:     likes,
		CommentsService: comments,
	}).RegisterRouter(api)
	(&Post{
		Config:          conf,
		PostService:     &service.PostService{StorageConf: conf.Storage, Store: store, PostDAO: postDAO, UserDAO: users, LikeService: likes},
		LikeService:     likes,
		CommentsService: comments,
	}).RegisterRouter(api)
	(&User{
		Config:       conf,
		UserService:  userService,
		StatsService: &service.StatsService{UserDAO: users, NoteDAO: noteDAO, LikeDAO: likeDAO, AchievementDAO: achievements, Cache: board},
		Ledger:       ledger,
	}).RegisterRouter(api)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, payload any) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return serve(t, r, req)
}

func serve(t *testing.T, r http.Handler, req *http.Request) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var resp apiResponse
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "application/pdf" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func register(t *testing.T, r http.Handler, username string) (string, uint64) {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/register", "", map[string]string{
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID uint64 `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data.AccessToken, data.User.ID
}

func uploadNote(t *testing.T, r http.Handler, token, filename string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Fisica II"))
	require.NoError(t, mw.WriteField("subject", "physics"))
	require.NoError(t, mw.WriteField("tags", `["ondas","optica"]`))
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fisica"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/notes", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return serve(t, r, req)
}

func TestNoteUploadLikeFlow(t *testing.T) {
	r := setupRouter(t)
	authorToken, _ := register(t, r, "author")
	fanToken, _ := register(t, r, "fan")

	w, resp := uploadNote(t, r, authorToken, "fisica.pdf")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Note struct {
			ID   string   `json:"id"`
			Tags []string `json:"tags"`
		} `json:"note"`
		Credits      int64 `json:"credits"`
		Achievements []struct {
			Type string `json:"type"`
		} `json:"achievements"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	// 100 注册 + 50 上传 + 25 首篇
	assert.Equal(t, int64(175), created.Credits)
	assert.Equal(t, []string{"ondas", "optica"}, created.Note.Tags)
	require.Len(t, created.Achievements, 1)
	assert.Equal(t, "first_note", created.Achievements[0].Type)

	likePath := fmt.Sprintf("/api/notes/%s/like", created.Note.ID)
	var like struct {
		Liked      bool  `json:"liked"`
		LikesCount int64 `json:"likes_count"`
	}

	w, resp = doJSON(t, r, http.MethodPost, likePath, fanToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &like))
	assert.Equal(t, int64(1), like.LikesCount)

	w, resp = doJSON(t, r, http.MethodPost, likePath, fanToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &like))
	assert.Equal(t, int64(1), like.LikesCount)

	w, resp = doJSON(t, r, http.MethodDelete, likePath, fanToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(resp.Data, &like))
	assert.False(t, like.Liked)
	assert.Zero(t, like.LikesCount)

	w, _ = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/notes/%s/comments", created.Note.ID), fanToken, map[string]string{"content": "genial"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, resp = doJSON(t, r, http.MethodGet, "/api/user/stats", authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		NotesCount int64 `json:"notes_count"`
		Rank       int64 `json:"rank"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &stats))
	assert.Equal(t, int64(1), stats.NotesCount)
	assert.Equal(t, int64(1), stats.Rank)

	w, resp = doJSON(t, r, http.MethodGet, "/api/user/achievements", authorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), "first_note")

	w, resp = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/notes/%s/download", created.Note.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4 fisica", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "fisica.pdf")
}

func TestCreateNote_Validation(t *testing.T) {
	r := setupRouter(t)
	token, _ := register(t, r, "author")

	w, resp := uploadNote(t, r, "", "fisica.pdf")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "authentication required", resp.Msg)

	w, resp = uploadNote(t, r, token, "fisica.exe")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unsupported file type", resp.Msg)

	w, resp = doJSON(t, r, http.MethodPost, "/api/notes", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no file uploaded", resp.Msg)
}

func TestLike_UnknownTargetAndBadID(t *testing.T) {
	r := setupRouter(t)
	token, _ := register(t, r, "fan")

	w, resp := doJSON(t, r, http.MethodPost, "/api/notes/123/like", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "note not found", resp.Msg)

	w, _ = doJSON(t, r, http.MethodDelete, "/api/posts/123/like", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/posts/abc/like", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/posts/1/like", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPostFlow(t *testing.T) {
	r := setupRouter(t)
	aToken, _ := register(t, r, "ana")
	bToken, _ := register(t, r, "beto")

	w, resp := doJSON(t, r, http.MethodPost, "/api/posts", aToken, map[string]any{"content": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "content is required", resp.Msg)

	w, resp = doJSON(t, r, http.MethodPost, "/api/posts", aToken, map[string]any{"content": "hola", "post_type": "question"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &post))

	likePath := fmt.Sprintf("/api/posts/%s/like", post.ID)
	doJSON(t, r, http.MethodPost, likePath, aToken, nil)
	doJSON(t, r, http.MethodPost, likePath, bToken, nil)
	_, resp = doJSON(t, r, http.MethodDelete, likePath, aToken, nil)
	var like struct {
		LikesCount int64 `json:"likes_count"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &like))
	assert.Equal(t, int64(1), like.LikesCount)

	w, resp = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%s/comments", post.ID), bToken, map[string]string{"content": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "content is required", resp.Msg)

	w, _ = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%s/comments", post.ID), bToken, map[string]string{"content": "te ayudo"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, resp = doJSON(t, r, http.MethodGet, "/api/posts", bToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []struct {
		LikesCount    int64 `json:"likes_count"`
		CommentsCount int64 `json:"comments_count"`
		IsLiked       bool  `json:"is_liked"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, int64(1), posts[0].LikesCount)
	assert.Equal(t, int64(1), posts[0].CommentsCount)
	assert.True(t, posts[0].IsLiked)
}

func TestRegisterLoginAndLeaderboard(t *testing.T) {
	r := setupRouter(t)
	register(t, r, "alice")

	w, resp := doJSON(t, r, http.MethodPost, "/api/register", "", map[string]string{"username": "alice", "password": "secret123"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "username already exists", resp.Msg)

	w, _ = doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{"username": "alice", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp = doJSON(t, r, http.MethodPost, "/api/login", "", map[string]string{"username": "alice", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &login))

	w, resp = doJSON(t, r, http.MethodGet, "/api/user", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, string(resp.Data), "password")

	w, resp = doJSON(t, r, http.MethodGet, "/api/user/credits", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), `"balance":100`)

	w, resp = doJSON(t, r, http.MethodGet, "/api/leaderboard?limit=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var board []struct {
		Username string `json:"username"`
		Credits  int64  `json:"credits"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &board))
	require.Len(t, board, 1)
	assert.Equal(t, "alice", board[0].Username)
	assert.Equal(t, int64(100), board[0].Credits)
}
