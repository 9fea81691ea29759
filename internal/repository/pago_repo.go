package repository

import (
	"context"

	"mecanicagil/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PagoRepository persists payments and aggregates revenue figures.
type PagoRepository interface {
	Crear(ctx context.Context, p *model.Pago) error
	Historial(ctx context.Context) ([]model.Pago, error)
	TotalPagado(ctx context.Context) (decimal.Decimal, error)
	TotalPorMetodo(ctx context.Context) (map[string]decimal.Decimal, error)
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) Crear(ctx context.Context, p *model.Pago) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Historial returns every payment, newest first.
func (r *pagoRepo) Historial(ctx context.Context) ([]model.Pago, error) {
	var list []model.Pago
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *pagoRepo) TotalPagado(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&model.Pago{}).
		Select("SUM(monto)").
		Where("estado = ?", "pagado").
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *pagoRepo) TotalPorMetodo(ctx context.Context) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Metodo string
		Total  decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&model.Pago{}).
		Select("metodo, SUM(monto) AS total").
		Where("estado = ?", "pagado").
		Group("metodo").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		result[row.Metodo] = row.Total
	}
	return result, nil
}
