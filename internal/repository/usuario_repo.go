package repository

import (
	"context"

	"mecanicagil/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository defines persistence operations for system users.
type UsuarioRepository interface {
	Crear(ctx context.Context, u *model.Usuario) error
	ObtenerPorUsername(ctx context.Context, username string) (*model.Usuario, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	Listar(ctx context.Context) ([]model.Usuario, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Crear(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) ObtenerPorUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) Listar(ctx context.Context) ([]model.Usuario, error) {
	var list []model.Usuario
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&list).Error
	return list, err
}
