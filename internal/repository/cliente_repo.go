package repository

import (
	"context"

	"mecanicagil/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteRepository defines persistence operations for clients.
type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	Listar(ctx context.Context) ([]model.Cliente, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Crear(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) Listar(ctx context.Context) ([]model.Cliente, error) {
	var list []model.Cliente
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *clienteRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).Preload("Vehiculos").First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
