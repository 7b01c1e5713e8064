package handler

import (
	"StudyHub/models"
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"StudyHub/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

// toggleLike 笔记和帖子共用的点赞/取消点赞
func toggleLike(c *gin.Context, likes service.ILikeService, kind models.TargetKind, like bool) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}
	targetID, err := paramID(c)
	if err != nil {
		return err
	}

	var count int64
	if like {
		count, err = likes.Like(c.Request.Context(), kind, targetID, userID)
	} else {
		count, err = likes.Unlike(c.Request.Context(), kind, targetID, userID)
	}
	if err != nil {
		if like {
			return bizError(err, "failed to like")
		}
		return bizError(err, "failed to unlike")
	}

	response.Success(c, types.LikeResponse{Liked: like, LikesCount: count})
	return nil
}
