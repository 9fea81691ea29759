package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecanicagil/internal/apierror"
	"mecanicagil/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── CatalogoService stub ─────────────────────────────────────────────────────

type stubCatalogoService struct {
	crearErr   error
	obtenerErr error
	creado     *dto.ServicioResponse
}

func (s *stubCatalogoService) Crear(_ context.Context, req dto.CrearServicioRequest) (*dto.ServicioResponse, error) {
	if s.crearErr != nil {
		return nil, s.crearErr
	}
	s.creado = &dto.ServicioResponse{
		ID:         uuid.NewString(),
		Nombre:     req.Nombre,
		PrecioBase: req.PrecioBase,
	}
	return s.creado, nil
}

func (s *stubCatalogoService) Listar(_ context.Context) ([]dto.ServicioResponse, error) {
	return []dto.ServicioResponse{}, nil
}

func (s *stubCatalogoService) ObtenerPorID(_ context.Context, _ uuid.UUID) (*dto.ServicioResponse, error) {
	if s.obtenerErr != nil {
		return nil, s.obtenerErr
	}
	return s.creado, nil
}

func (s *stubCatalogoService) Actualizar(_ context.Context, _ uuid.UUID, _ dto.ActualizarServicioRequest) (*dto.ServicioResponse, error) {
	return s.creado, nil
}

func (s *stubCatalogoService) Eliminar(_ context.Context, _ uuid.UUID) error { return nil }

// ── Helpers ──────────────────────────────────────────────────────────────────

func serviciosRouter(svc *stubCatalogoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewServiciosHandler(svc)
	r := gin.New()
	r.POST("/v1/servicios", h.Crear)
	r.GET("/v1/servicios/:id", h.Obtener)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCrearServicioHandler(t *testing.T) {
	r := serviciosRouter(&stubCatalogoService{})

	w := postJSON(t, r, "/v1/servicios", gin.H{"nombre": "Cambio de aceite", "precio_base": "450.50"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.ServicioResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Cambio de aceite", resp.Nombre)
	assert.True(t, resp.PrecioBase.Equal(decimal.RequireFromString("450.50")))
}

func TestCrearServicioHandler_CuerpoInvalido(t *testing.T) {
	// Falta nombre — lo frena el validador con 422 y detalle por campo
	r := serviciosRouter(&stubCatalogoService{})

	w := postJSON(t, r, "/v1/servicios", gin.H{"precio_base": "100"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Nombre")
}

func TestCrearServicioHandler_ErrorDeNegocio(t *testing.T) {
	r := serviciosRouter(&stubCatalogoService{crearErr: apierror.Validacion("El precio base no puede ser negativo")})

	w := postJSON(t, r, "/v1/servicios", gin.H{"nombre": "Frenos", "precio_base": "10"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "precio base")
}

func TestObtenerServicioHandler_NoEncontrado(t *testing.T) {
	r := serviciosRouter(&stubCatalogoService{obtenerErr: apierror.NoEncontrado("Servicio no encontrado")})

	req := httptest.NewRequest(http.MethodGet, "/v1/servicios/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestObtenerServicioHandler_IDInvalido(t *testing.T) {
	r := serviciosRouter(&stubCatalogoService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/servicios/no-es-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
