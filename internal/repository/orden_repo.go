package repository

import (
	"context"

	"mecanicagil/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrdenRepository persists work orders and their items.
//
// CrearItemTx and IncrementarTotalTx take the transaction handle explicitly:
// the service layer opens the transaction so that item insertion and total
// update always commit or roll back as one unit.
type OrdenRepository interface {
	Crear(ctx context.Context, o *model.OrdenTrabajo) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.OrdenTrabajo, error)
	Listar(ctx context.Context) ([]model.OrdenTrabajo, error)
	ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) error
	CrearItemTx(tx *gorm.DB, item *model.OrdenItem) error
	IncrementarTotalTx(tx *gorm.DB, id uuid.UUID, monto decimal.Decimal) error
	ObtenerTotalTx(tx *gorm.DB, id uuid.UUID) (decimal.Decimal, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type ordenRepo struct{ db *gorm.DB }

func NewOrdenRepository(db *gorm.DB) OrdenRepository { return &ordenRepo{db: db} }

func (r *ordenRepo) DB() *gorm.DB { return r.db }

func (r *ordenRepo) Crear(ctx context.Context, o *model.OrdenTrabajo) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *ordenRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.OrdenTrabajo, error) {
	var o model.OrdenTrabajo
	err := r.db.WithContext(ctx).
		Preload("Items.Servicio").
		Preload("Vehiculo.Cliente").
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Listar returns all orders, newest first.
func (r *ordenRepo) Listar(ctx context.Context) ([]model.OrdenTrabajo, error) {
	var list []model.OrdenTrabajo
	err := r.db.WithContext(ctx).
		Preload("Items.Servicio").
		Order("created_at desc").
		Find(&list).Error
	return list, err
}

func (r *ordenRepo) ActualizarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).
		Model(&model.OrdenTrabajo{}).
		Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *ordenRepo) CrearItemTx(tx *gorm.DB, item *model.OrdenItem) error {
	return tx.Create(item).Error
}

// IncrementarTotalTx adds monto to the order total atomically (SQL-side
// expression, no read-modify-write race).
func (r *ordenRepo) IncrementarTotalTx(tx *gorm.DB, id uuid.UUID, monto decimal.Decimal) error {
	return tx.Model(&model.OrdenTrabajo{}).
		Where("id = ?", id).
		Update("total", gorm.Expr("total + ?", monto)).Error
}

// ObtenerTotalTx reads the order total through the same transaction that just
// incremented it, so callers report the persisted value and not a stale read.
func (r *ordenRepo) ObtenerTotalTx(tx *gorm.DB, id uuid.UUID) (decimal.Decimal, error) {
	var o model.OrdenTrabajo
	if err := tx.Select("total").First(&o, "id = ?", id).Error; err != nil {
		return decimal.Zero, err
	}
	return o.Total, nil
}
