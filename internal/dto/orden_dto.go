package dto

import "github.com/shopspring/decimal"

type CrearOrdenRequest struct {
	VehiculoID string `json:"vehiculo_id" validate:"required,uuid"`
}

type AgregarItemRequest struct {
	ServicioID string `json:"servicio_id" validate:"required,uuid"`
}

type ActualizarEstadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

type ItemOrdenResponse struct {
	ID              string          `json:"id"`
	ServicioID      string          `json:"servicio_id"`
	ServicioNombre  string          `json:"servicio_nombre"`
	PrecioAlMomento decimal.Decimal `json:"precio_al_momento"`
}

type OrdenResponse struct {
	ID         string              `json:"id"`
	VehiculoID string              `json:"vehiculo_id"`
	UsuarioID  string              `json:"usuario_id"`
	Estado     string              `json:"estado"`
	Total      decimal.Decimal     `json:"total"`
	Items      []ItemOrdenResponse `json:"items"`
	CreatedAt  string              `json:"created_at"`

	// Present only on the detail endpoint
	Vehiculo *VehiculoResponse `json:"vehiculo,omitempty"`
	Cliente  *ClienteResponse  `json:"cliente,omitempty"`
}

// AgregarItemResponse returns the created item together with the new order
// total so the client never has to re-fetch to stay consistent.
type AgregarItemResponse struct {
	Item       ItemOrdenResponse `json:"item"`
	OrdenTotal decimal.Decimal   `json:"orden_total"`
}
