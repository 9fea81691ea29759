package repository

import (
	"context"

	"mecanicagil/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehiculoRepository defines persistence operations for vehicles.
type VehiculoRepository interface {
	Crear(ctx context.Context, v *model.Vehiculo) error
	Listar(ctx context.Context) ([]model.Vehiculo, error)
	ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Vehiculo, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error)
	Actualizar(ctx context.Context, v *model.Vehiculo) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type vehiculoRepo struct{ db *gorm.DB }

func NewVehiculoRepository(db *gorm.DB) VehiculoRepository { return &vehiculoRepo{db: db} }

func (r *vehiculoRepo) Crear(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehiculoRepo) Listar(ctx context.Context) ([]model.Vehiculo, error) {
	var list []model.Vehiculo
	err := r.db.WithContext(ctx).Preload("Cliente").Find(&list).Error
	return list, err
}

func (r *vehiculoRepo) ListarPorCliente(ctx context.Context, clienteID uuid.UUID) ([]model.Vehiculo, error) {
	var list []model.Vehiculo
	err := r.db.WithContext(ctx).Where("cliente_id = ?", clienteID).Find(&list).Error
	return list, err
}

func (r *vehiculoRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	var v model.Vehiculo
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehiculoRepo) Actualizar(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vehiculoRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Vehiculo{}, "id = ?", id).Error
}
