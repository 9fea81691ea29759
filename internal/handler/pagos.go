package handler

import (
	"net/http"

	"mecanicagil/internal/dto"
	"mecanicagil/internal/service"

	"github.com/gin-gonic/gin"
)

type PagosHandler struct{ svc service.PagoService }

func NewPagosHandler(svc service.PagoService) *PagosHandler { return &PagosHandler{svc: svc} }

// Registrar godoc
// @Summary      Registrar pago sobre una orden
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarPagoRequest true "Datos del pago"
// @Success      201  {object} dto.PagoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/pagos [post]
func (h *PagosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PagosHandler) Historial(c *gin.Context) {
	resp, err := h.svc.Historial(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PagosHandler) ResumenIngresos(c *gin.Context) {
	resp, err := h.svc.ResumenIngresos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
