package handler

import (
	"StudyHub/pkg/context"
	"StudyHub/pkg/response"
	"StudyHub/service"
	"StudyHub/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	UserService service.IUserService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	r.POST("/register", context.Wrap(a.Register))
	r.POST("/login", context.Wrap(a.Login))
}

func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request: "+err.Error())
	}

	resp, err := a.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return bizError(err, "failed to create user")
	}
	response.Created(c, resp)
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request: "+err.Error())
	}

	resp, err := a.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return bizError(err, "failed to login")
	}
	response.Success(c, resp)
	return nil
}
