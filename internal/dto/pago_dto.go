package dto

import "github.com/shopspring/decimal"

type RegistrarPagoRequest struct {
	OrdenTrabajoID string          `json:"orden_trabajo_id" validate:"required,uuid"`
	Monto          decimal.Decimal `json:"monto"            validate:"required"`
	Metodo         string          `json:"metodo"           validate:"required,oneof=efectivo tarjeta transferencia"`
	// Estado defaults to "pagado" when omitted.
	Estado string `json:"estado" validate:"omitempty,oneof=pagado pendiente"`
}

type PagoResponse struct {
	ID             string          `json:"id"`
	OrdenTrabajoID string          `json:"orden_trabajo_id"`
	Monto          decimal.Decimal `json:"monto"`
	Metodo         string          `json:"metodo"`
	Estado         string          `json:"estado"`
	CreatedAt      string          `json:"created_at"`
}

type ResumenIngresosResponse struct {
	TotalIngresos decimal.Decimal            `json:"total_ingresos"`
	PorMetodo     map[string]decimal.Decimal `json:"por_metodo"`
}
