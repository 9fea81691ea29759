package handler

import (
	"net/http"

	"mecanicagil/internal/apierror"
	"mecanicagil/internal/dto"
	"mecanicagil/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehiculosHandler struct{ svc service.ClienteService }

func NewVehiculosHandler(svc service.ClienteService) *VehiculosHandler {
	return &VehiculosHandler{svc: svc}
}

// Listar godoc
// @Summary  Listar todos los vehiculos del taller
// @Tags     vehiculos
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} dto.VehiculoResponse
// @Router   /v1/vehiculos [get]
func (h *VehiculosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarVehiculos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiculosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarVehiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarVehiculo(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehiculosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.EliminarVehiculo(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
