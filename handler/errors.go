package handler

import (
	"StudyHub/pkg/response"
	"StudyHub/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bizError 将 service 层错误转换为对外的业务错误
func bizError(err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrNoteNotFound):
		return response.NewError(http.StatusNotFound, "note not found")
	case errors.Is(err, service.ErrPostNotFound):
		return response.NewError(http.StatusNotFound, "post not found")
	case errors.Is(err, service.ErrUserNotFound):
		return response.NewError(http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrFileNotFound):
		return response.NewError(http.StatusNotFound, "file not found")
	case errors.Is(err, service.ErrUsernameTaken):
		return response.NewError(http.StatusConflict, "username already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		return response.NewError(http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, service.ErrFileRequired):
		return response.NewError(http.StatusBadRequest, "file is required")
	case errors.Is(err, service.ErrFileTooLarge):
		return response.NewError(http.StatusBadRequest, "file exceeds 10MB limit")
	case errors.Is(err, service.ErrFileType):
		return response.NewError(http.StatusBadRequest, "unsupported file type")
	case errors.Is(err, service.ErrContentRequired):
		return response.NewError(http.StatusBadRequest, "content is required")
	case errors.Is(err, service.ErrInvalidTarget):
		return response.NewError(http.StatusBadRequest, "invalid target")
	}
	return response.Internal(fallback, err)
}

// paramID 解析路径中的 :id
func paramID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
