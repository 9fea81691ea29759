package dto

import "github.com/shopspring/decimal"

type CrearServicioRequest struct {
	Nombre      string          `json:"nombre"      validate:"required,min=1,max=100"`
	Descripcion *string         `json:"descripcion"`
	PrecioBase  decimal.Decimal `json:"precio_base" validate:"min=0"`
}

// ActualizarServicioRequest carries partial updates; nil fields are untouched.
type ActualizarServicioRequest struct {
	Nombre      *string          `json:"nombre"      validate:"omitempty,min=1,max=100"`
	Descripcion *string          `json:"descripcion"`
	PrecioBase  *decimal.Decimal `json:"precio_base"`
}

type ServicioResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	PrecioBase  decimal.Decimal `json:"precio_base"`
}
