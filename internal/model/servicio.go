package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Servicio is a catalog entry: a type of work the shop performs and its
// suggested base price. Changing PrecioBase never touches historical order
// items — those carry their own frozen copy of the price.
type Servicio struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `gorm:"not null"`
	Descripcion *string
	PrecioBase  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time
}
