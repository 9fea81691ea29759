package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"mecanicagil/internal/apierror"
	"mecanicagil/internal/dto"
	"mecanicagil/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ── AuthService stub ─────────────────────────────────────────────────────────

type stubAuthService struct {
	loginErr error
}

func (s *stubAuthService) Login(_ context.Context, _ dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.LoginResponse{AccessToken: "token", TokenType: "bearer"}, nil
}

func (s *stubAuthService) Refresh(_ context.Context, _ string) (*dto.LoginResponse, error) {
	return nil, apierror.NoAutorizado("refresh token invalido o expirado")
}

func (s *stubAuthService) CrearUsuario(_ context.Context, _ dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	return nil, nil
}

func (s *stubAuthService) ListarUsuarios(_ context.Context) ([]dto.UsuarioResponse, error) {
	return nil, nil
}

func authRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/refresh", h.Refresh)
	return r
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestLoginHandler(t *testing.T) {
	r := authRouter(&stubAuthService{})

	w := postJSON(t, r, "/v1/auth/login", gin.H{"username": "gabi", "password": "secreta123"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bearer")
}

func TestLoginHandler_CredencialesInvalidas(t *testing.T) {
	r := authRouter(&stubAuthService{loginErr: apierror.NoAutorizado("credenciales invalidas")})

	w := postJSON(t, r, "/v1/auth/login", gin.H{"username": "gabi", "password": "otra"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "credenciales invalidas")
}

func TestLoginHandler_FallaDelStoreEs500(t *testing.T) {
	// Un Postgres caido no es un problema de credenciales: 500, y el detalle
	// interno no viaja al cliente
	r := authRouter(&stubAuthService{loginErr: errors.New("conexion rechazada")})

	w := postJSON(t, r, "/v1/auth/login", gin.H{"username": "gabi", "password": "secreta123"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "conexion rechazada")
}

func TestRefreshHandler_TokenInvalido(t *testing.T) {
	r := authRouter(&stubAuthService{})

	w := postJSON(t, r, "/v1/auth/refresh", gin.H{"refresh_token": "no-es-un-jwt"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
