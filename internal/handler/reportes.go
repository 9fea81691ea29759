package handler

import (
	"net/http"
	"time"

	"mecanicagil/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Dashboard godoc
// @Summary      Metricas mensuales del taller
// @Description  Ordenes creadas en el mes calendario en curso (UTC), ingreso estimado de ordenes finalizadas y conteo por estado.
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.DashboardResponse
// @Router       /v1/reportes/dashboard [get]
func (h *ReportesHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.MetricasMensuales(c.Request.Context(), time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
