package handler

import (
	"net/http"

	"mecanicagil/internal/apierror"
	"mecanicagil/internal/dto"
	"mecanicagil/internal/middleware"
	"mecanicagil/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrdenesHandler struct{ svc service.OrdenService }

func NewOrdenesHandler(svc service.OrdenService) *OrdenesHandler {
	return &OrdenesHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear orden de trabajo
// @Description  Abre una orden en estado pendiente para un vehiculo registrado.
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearOrdenRequest true "Vehiculo de la orden"
// @Success      201  {object} dto.OrdenResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ordenes [post]
func (h *OrdenesHandler) Crear(c *gin.Context) {
	var req dto.CrearOrdenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.Crear(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AgregarItem godoc
// @Summary      Agregar servicio a una orden
// @Description  Congela el precio base vigente del servicio en el item e incrementa el total de la orden en la misma transaccion.
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                 true "UUID de la orden"
// @Param        body body dto.AgregarItemRequest true "Servicio a agregar"
// @Success      201  {object} dto.AgregarItemResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ordenes/{id}/items [post]
func (h *OrdenesHandler) AgregarItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.AgregarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarItem(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ActualizarEstado godoc
// @Summary      Cambiar estado de una orden
// @Description  Acepta cualquier estado del conjunto pendiente / en_progreso / finalizado / entregado, sin restricciones de secuencia.
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                      true "UUID de la orden"
// @Param        body body dto.ActualizarEstadoRequest true "Nuevo estado"
// @Success      200  {object} dto.OrdenResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/ordenes/{id}/estado [put]
func (h *OrdenesHandler) ActualizarEstado(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarEstado(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdenesHandler) Obtener(c *gin.Context) {
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

func (h *OrdenesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Recibo godoc
// @Summary      Descargar recibo PDF
// @Description  Genera y devuelve el recibo imprimible de la orden con los precios congelados.
// @Tags         ordenes
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "UUID de la orden"
// @Success      200 {file} file
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ordenes/{id}/recibo [get]
func (h *OrdenesHandler) Recibo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	path, err := h.svc.GenerarRecibo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="recibo_`+id.String()+`.pdf"`)
	c.File(path)
}
