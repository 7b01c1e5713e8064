package handler

import (
	"StudyHub/config"
	"StudyHub/middleware"
	"StudyHub/models"
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"StudyHub/types"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Note struct {
	Config          *config.Config
	NoteService     service.INoteService
	LikeService     service.ILikeService
	CommentsService service.ICommentsService
}

func (n *Note) RegisterRouter(r gin.IRouter) {
	secret := []byte(n.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	g := r.Group("/notes")
	g.GET("", middleware.OptionalAuth(secret), context.Wrap(n.ListNotes))
	g.POST("", authorize, context.Wrap(n.CreateNote))
	g.GET("/:id", middleware.OptionalAuth(secret), context.Wrap(n.GetNote))
	g.GET("/:id/download", context.Wrap(n.Download))
	g.POST("/:id/like", authorize, context.Wrap(n.Like))
	g.DELETE("/:id/like", authorize, context.Wrap(n.Unlike))
	g.GET("/:id/comments", context.Wrap(n.ListComments))
	g.POST("/:id/comments", authorize, context.Wrap(n.CreateComment))
}

// CreateNote 上传笔记，multipart: file + title/description/subject/tags
func (n *Note) CreateNote(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "no file uploaded")
	}

	var req types.CreateNoteRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid note data: "+err.Error())
	}
	if raw := c.PostForm("tags"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Tags); err != nil {
			return response.NewError(http.StatusBadRequest, "tags must be a JSON array of strings")
		}
	}

	file, err := header.Open()
	if err != nil {
		return response.Internal("failed to read upload", err)
	}
	defer file.Close()

	resp, err := n.NoteService.CreateNote(c.Request.Context(), userID, &req, &types.FileUpload{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	})
	if err != nil {
		return bizError(err, "failed to create note")
	}
	response.Created(c, resp)
	return nil
}

func (n *Note) ListNotes(c *gin.Context) error {
	var req types.ListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid query")
	}
	items, err := n.NoteService.ListNotes(c.Request.Context(), &req, context.OptionalUserID(c))
	if err != nil {
		return bizError(err, "failed to list notes")
	}
	response.Success(c, items)
	return nil
}

func (n *Note) GetNote(c *gin.Context) error {
	noteID, err := paramID(c)
	if err != nil {
		return err
	}
	item, err := n.NoteService.GetNote(c.Request.Context(), noteID, context.OptionalUserID(c))
	if err != nil {
		return bizError(err, "failed to get note")
	}
	response.Success(c, item)
	return nil
}

func (n *Note) Download(c *gin.Context) error {
	noteID, err := paramID(c)
	if err != nil {
		return err
	}
	note, reader, err := n.NoteService.Download(c.Request.Context(), noteID)
	if err != nil {
		return bizError(err, "failed to download note")
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(strings.ToLower(path.Ext(note.FileName)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, note.FileSize, contentType, reader, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%s", strconv.Quote(note.FileName)),
	})
	return nil
}

func (n *Note) Like(c *gin.Context) error {
	return toggleLike(c, n.LikeService, models.TargetNote, true)
}

func (n *Note) Unlike(c *gin.Context) error {
	return toggleLike(c, n.LikeService, models.TargetNote, false)
}

func (n *Note) ListComments(c *gin.Context) error {
	return listComments(c, n.CommentsService, models.TargetNote)
}

func (n *Note) CreateComment(c *gin.Context) error {
	return createComment(c, n.CommentsService, models.TargetNote)
}
