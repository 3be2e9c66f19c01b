package commands

import (
	"context"
	"crypto/subtle"
	"time"

	reqdto "study-booking/internal/handler/dto/request"
	"study-booking/internal/pkg/config"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/pkg/jwt"
	"study-booking/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Username  string
	Token     string
	ExpiresAt time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		admin:      cfg.Admin,
		jwtService: jwtService,
	}
}

// Login checks the single admin account. Both checks always run so a wrong
// username and a wrong password look the same.
func (a *authCommandsImpl) Login(_ context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.admin.Username)) == 1
	passErr := password.ComparePassword(a.admin.PasswordHash, req.Password)
	if !userOK || passErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(a.admin.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Username:  a.admin.Username,
		Token:     token,
		ExpiresAt: time.Now().Add(a.jwtService.TokenDuration()),
	}, nil
}
