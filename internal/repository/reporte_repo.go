package repository

import (
	"context"

	"mecanicagil/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReporteRepository runs the aggregate queries behind the dashboard.
// All date arithmetic is UTC-based — created_at columns store UTC timestamps.
type ReporteRepository interface {
	ContarOrdenesDelMes(ctx context.Context, anio int, mes int) (int64, error)
	IngresoEstimado(ctx context.Context) (decimal.Decimal, error)
	ContarPorEstado(ctx context.Context) (map[string]int64, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) ContarOrdenesDelMes(ctx context.Context, anio int, mes int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.OrdenTrabajo{}).
		Where(
			"EXTRACT(YEAR FROM created_at AT TIME ZONE 'UTC') = ? AND EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC') = ?",
			anio, mes,
		).
		Count(&count).Error
	return count, err
}

// IngresoEstimado sums the frozen item prices of all finalizado orders.
// Returns zero (not null) when there are none.
func (r *reporteRepo) IngresoEstimado(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&model.OrdenItem{}).
		Select("SUM(orden_items.precio_al_momento)").
		Joins("JOIN orden_trabajos ON orden_trabajos.id = orden_items.orden_trabajo_id").
		Where("orden_trabajos.estado = ?", model.EstadoFinalizado).
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

// ContarPorEstado groups orders by estado. Absent estados are simply missing
// from the map — no zero-padding.
func (r *reporteRepo) ContarPorEstado(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Estado string
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.OrdenTrabajo{}).
		Select("estado, COUNT(*) AS total").
		Group("estado").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Estado] = row.Total
	}
	return result, nil
}
