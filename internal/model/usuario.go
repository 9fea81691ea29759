package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users with role-based access.
// Rol: "admin" | "mecanico" | "recepcion"
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          Rol       `gorm:"type:varchar(20);not null;default:'recepcion'"`
	CreatedAt    time.Time

	Ordenes []OrdenTrabajo `gorm:"foreignKey:UsuarioID"`
}
