package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mecanicagil/internal/dto"
	"mecanicagil/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// dashboardCacheTTL keeps the dashboard snappy under polling without letting
// the numbers go meaningfully stale.
const dashboardCacheTTL = 60 * time.Second

// ReporteService computes the admin dashboard metrics. Authorization is the
// router's job — this service assumes the caller was already gated.
type ReporteService interface {
	MetricasMensuales(ctx context.Context, now time.Time) (*dto.DashboardResponse, error)
}

type reporteService struct {
	repo repository.ReporteRepository
	rdb  *redis.Client
}

// NewReporteService builds the aggregator. rdb may be nil (unit tests) — the
// cache is then skipped entirely.
func NewReporteService(repo repository.ReporteRepository, rdb *redis.Client) ReporteService {
	return &reporteService{repo: repo, rdb: rdb}
}

// MetricasMensuales computes, for the UTC calendar month of now:
// order count, estimated income over finalizado orders, and the per-estado
// order breakdown across the whole store.
func (s *reporteService) MetricasMensuales(ctx context.Context, now time.Time) (*dto.DashboardResponse, error) {
	now = now.UTC()
	cacheKey := fmt.Sprintf("dashboard:%04d-%02d", now.Year(), int(now.Month()))

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp, nil
			}
		}
	}

	totalMes, err := s.repo.ContarOrdenesDelMes(ctx, now.Year(), int(now.Month()))
	if err != nil {
		return nil, err
	}
	ingreso, err := s.repo.IngresoEstimado(ctx)
	if err != nil {
		return nil, err
	}
	porEstado, err := s.repo.ContarPorEstado(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TotalOrdenesMes:  totalMes,
		IngresoEstimado:  ingreso,
		OrdenesPorEstado: porEstado,
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, data, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear el dashboard")
			}
		}
	}
	return resp, nil
}
