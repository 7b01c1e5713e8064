package handler

import (
	"StudyHub/config"
	"StudyHub/middleware"
	"StudyHub/models"
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"StudyHub/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Post struct {
	Config          *config.Config
	PostService     service.IPostService
	LikeService     service.ILikeService
	CommentsService service.ICommentsService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	secret := []byte(p.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	g := r.Group("/posts")
	g.GET("", middleware.OptionalAuth(secret), context.Wrap(p.ListPosts))
	g.POST("", authorize, context.Wrap(p.CreatePost))
	g.POST("/image", authorize, context.Wrap(p.UploadImage))
	g.POST("/:id/like", authorize, context.Wrap(p.Like))
	g.DELETE("/:id/like", authorize, context.Wrap(p.Unlike))
	g.GET("/:id/comments", context.Wrap(p.ListComments))
	g.POST("/:id/comments", authorize, context.Wrap(p.CreateComment))
}

func (p *Post) CreatePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid post data")
	}

	item, err := p.PostService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		return bizError(err, "failed to create post")
	}
	response.Created(c, item)
	return nil
}

func (p *Post) ListPosts(c *gin.Context) error {
	var req types.ListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid query")
	}
	items, err := p.PostService.ListPosts(c.Request.Context(), &req, context.OptionalUserID(c))
	if err != nil {
		return bizError(err, "failed to list posts")
	}
	response.Success(c, items)
	return nil
}

// UploadImage 帖子配图，支持 jpeg/png/gif/webp
func (p *Post) UploadImage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "no image uploaded")
	}
	file, err := header.Open()
	if err != nil {
		return response.Internal("failed to read upload", err)
	}
	defer file.Close()

	resp, err := p.PostService.UploadImage(c.Request.Context(), userID, &types.FileUpload{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	})
	if err != nil {
		return bizError(err, "failed to upload image")
	}
	response.Success(c, resp)
	return nil
}

func (p *Post) Like(c *gin.Context) error {
	return toggleLike(c, p.LikeService, models.TargetPost, true)
}

func (p *Post) Unlike(c *gin.Context) error {
	return toggleLike(c, p.LikeService, models.TargetPost, false)
}

func (p *Post) ListComments(c *gin.Context) error {
	return listComments(c, p.CommentsService, models.TargetPost)
}

func (p *Post) CreateComment(c *gin.Context) error {
	return createComment(c, p.CommentsService, models.TargetPost)
}
