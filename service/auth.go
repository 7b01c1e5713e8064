package service

import (
	"StudyHub/config"
	"StudyHub/dao"
	"StudyHub/models"
	"StudyHub/pkg/encrypt"
	"StudyHub/pkg/jwt"
	"StudyHub/types"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)
	GetUser(ctx context.Context, userID uint64) (*models.User, error)
}

type UserService struct {
	Config    *config.Config
	DB        *gorm.DB
	Rules     *LedgerRules
	UsersRepo *dao.Users
	Ledger    ILedgerService
}

// Register 注册用户并发放注册积分
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: strings.TrimSpace(req.Username),
		Password: hash,
		Email:    req.Email,
		FullName: req.FullName,
		Career:   req.Career,
	}

	err = dao.Transaction(ctx, s.DB, func(ctx context.Context) error {
		if err := s.UsersRepo.Create(ctx, user); err != nil {
			if dao.IsDupKeyErr(err) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("create user: %w", err)
		}
		if amount := s.Rules.SignupAward(); amount > 0 {
			if _, err := s.Ledger.Award(ctx, user.ID, amount, models.CreditSignup, signupSource(user.ID), "signup"); err != nil {
				return err
			}
			user.Credits += amount
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.issue(user)
}

// Login 登录处理
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *UserService) GetUser(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

func (s *UserService) issue(user *models.User) (*types.AuthResponse, error) {
	expire := time.Duration(s.Config.Jwt.ExpiresIn) * time.Second
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Username, jwt.TokenTypeAccess, expire)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &types.AuthResponse{
		AccessToken: token,
		ExpiresIn:   s.Config.Jwt.ExpiresIn,
		User:        types.NewUserInfo(user),
	}, nil
}
