package repository

import (
	"context"

	"mecanicagil/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServicioRepository defines CRUD operations for the service catalog.
type ServicioRepository interface {
	Crear(ctx context.Context, s *model.Servicio) error
	Listar(ctx context.Context) ([]model.Servicio, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Servicio, error)
	Actualizar(ctx context.Context, s *model.Servicio) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type servicioRepo struct{ db *gorm.DB }

func NewServicioRepository(db *gorm.DB) ServicioRepository { return &servicioRepo{db: db} }

func (r *servicioRepo) Crear(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// Listar returns the catalog in insertion order.
func (r *servicioRepo) Listar(ctx context.Context) ([]model.Servicio, error) {
	var list []model.Servicio
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *servicioRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Servicio, error) {
	var s model.Servicio
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *servicioRepo) Actualizar(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *servicioRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Servicio{}, "id = ?", id).Error
}
