package model

import "github.com/google/uuid"

// Vehiculo is a vehicle registered to a client. Patente and VIN are unique
// across the shop; duplicates surface as ConflictError at the store layer.
type Vehiculo struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID uuid.UUID `gorm:"type:uuid;not null;index"`
	Patente   string    `gorm:"uniqueIndex;not null"`
	Marca     string    `gorm:"not null"`
	Modelo    string    `gorm:"not null"`
	Anio      int       `gorm:"not null"`
	VIN       *string   `gorm:"uniqueIndex;column:vin"`

	Cliente *Cliente       `gorm:"foreignKey:ClienteID"`
	Ordenes []OrdenTrabajo `gorm:"foreignKey:VehiculoID"`
}
