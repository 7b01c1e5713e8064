package handler

import (
	"StudyHub/models"
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"StudyHub/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func listComments(c *gin.Context, comments service.ICommentsService, kind models.TargetKind) error {
	targetID, err := paramID(c)
	if err != nil {
		return err
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := comments.ListComments(c.Request.Context(), kind, targetID, limit)
	if err != nil {
		return bizError(err, "failed to list comments")
	}
	response.Success(c, items)
	return nil
}

func createComment(c *gin.Context, comments service.ICommentsService, kind models.TargetKind) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}
	targetID, err := paramID(c)
	if err != nil {
		return err
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid comment data")
	}

	item, err := comments.CreateComment(c.Request.Context(), kind, targetID, userID, &req)
	if err != nil {
		return bizError(err, "failed to create comment")
	}
	response.Created(c, item)
	return nil
}
