package handler

import (
	"StudyHub/config"
	"StudyHub/middleware"
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"StudyHub/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config       *config.Config
	UserService  service.IUserService
	StatsService service.IStatsService
	Ledger       service.ILedgerService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	r.GET("/leaderboard", context.Wrap(u.Leaderboard))

	g := r.Group("/user")
	g.Use(authorize)
	g.GET("", context.Wrap(u.Me))
	g.GET("/stats", context.Wrap(u.Stats))
	g.GET("/achievements", context.Wrap(u.Achievements))
	g.GET("/credits", context.Wrap(u.Credits))
}

func (u *User) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}
	user, err := u.UserService.GetUser(c.Request.Context(), userID)
	if err != nil {
		return bizError(err, "failed to get user")
	}
	response.Success(c, types.NewUserInfo(user))
	return nil
}

func (u *User) Stats(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}
	stats, err := u.StatsService.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		return bizError(err, "failed to fetch stats")
	}
	response.Success(c, stats)
	return nil
}

func (u *User) Achievements(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := u.StatsService.GetAchievements(c.Request.Context(), userID, limit)
	if err != nil {
		return bizError(err, "failed to fetch achievements")
	}
	response.Success(c, items)
	return nil
}

// Credits 积分流水，游标分页
func (u *User) Credits(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}
	var req types.ListCreditRecordsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid query")
	}
	records, err := u.Ledger.ListRecords(c.Request.Context(), userID, req.Cursor, req.Limit)
	if err != nil {
		return bizError(err, "failed to fetch credits")
	}
	response.Success(c, records)
	return nil
}

func (u *User) Leaderboard(c *gin.Context) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := u.StatsService.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		return bizError(err, "failed to fetch leaderboard")
	}
	response.Success(c, items)
	return nil
}
