package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pago is a payment registered against a work order.
// Metodo: "efectivo" | "tarjeta" | "transferencia"
// Estado: "pagado" | "pendiente"
type Pago struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrdenTrabajoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Monto          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Metodo         string          `gorm:"type:varchar(50);not null"`
	Estado         string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	CreatedAt      time.Time

	OrdenTrabajo *OrdenTrabajo `gorm:"foreignKey:OrdenTrabajoID"`
}
