package handler

import (
	"github.com/deppfellow/student-records/internal/model"
	"github.com/deppfellow/student-records/internal/server"
	"github.com/deppfellow/student-records/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Handler
	authService *service.AuthService
}

func NewAuthHandler(s *server.Server, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler:     NewHandler(s),
		authService: authService,
	}
}

func (h *AuthHandler) Login(c echo.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	return h.authService.Login(c.Request().Context(), req)
}
