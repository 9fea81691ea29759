package handler

import (
	"net/http"

	"mecanicagil/internal/apierror"
	"mecanicagil/internal/dto"
	"mecanicagil/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiciosHandler struct{ svc service.CatalogoService }

func NewServiciosHandler(svc service.CatalogoService) *ServiciosHandler {
	return &ServiciosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear servicio del catalogo
// @Description  Alta de un servicio ofrecido por el taller con su precio base vigente.
// @Tags         servicios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearServicioRequest true "Datos del servicio"
// @Success      201  {object} dto.ServicioResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/servicios [post]
func (h *ServiciosHandler) Crear(c *gin.Context) {
	var req dto.CrearServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary  Listar catalogo de servicios
// @Tags     servicios
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} dto.ServicioResponse
// @Router   /v1/servicios [get]
func (h *ServiciosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServiciosHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar applies a partial update; omitted fields keep their value.
// Orders already created keep the prices frozen at insertion time.
func (h *ServiciosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServiciosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
