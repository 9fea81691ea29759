package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados of a work order. The transition graph is deliberately open: any
// valid estado may follow any other so that the desk can correct mistakes
// manually. Creation always starts at EstadoPendiente.
const (
	EstadoPendiente  = "pendiente"
	EstadoEnProgreso = "en_progreso"
	EstadoFinalizado = "finalizado"
	EstadoEntregado  = "entregado"
)

// EstadoValido reports whether estado belongs to the closed set above.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoEnProgreso, EstadoFinalizado, EstadoEntregado:
		return true
	}
	return false
}

// OrdenTrabajo is the central aggregate: one repair job for one vehicle.
//
// Total is derived state: it must always equal the sum of the items'
// PrecioAlMomento. The ONLY writer is OrdenService.AgregarItem, which updates
// it in the same transaction that inserts the item.
type OrdenTrabajo struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehiculoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	UsuarioID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Estado     string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt  time.Time       `gorm:"index"`

	Vehiculo *Vehiculo   `gorm:"foreignKey:VehiculoID"`
	Usuario  *Usuario    `gorm:"foreignKey:UsuarioID"`
	Items    []OrdenItem `gorm:"foreignKey:OrdenTrabajoID"`
	Pagos    []Pago      `gorm:"foreignKey:OrdenTrabajoID"`
}

// OrdenItem is one catalog service applied to an order. PrecioAlMomento is a
// value copy of Servicio.PrecioBase taken at insertion time — later catalog
// price changes never alter it. Items are never updated or deleted.
type OrdenItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrdenTrabajoID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServicioID      uuid.UUID       `gorm:"type:uuid;not null"`
	PrecioAlMomento decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Servicio *Servicio `gorm:"foreignKey:ServicioID"`
}
