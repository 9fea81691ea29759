package dto

import "github.com/shopspring/decimal"

// DashboardResponse mirrors the admin dashboard contract:
// estimated_income is 0 (never null) when no finalizado order exists, and
// orders_by_status only contains estados actually present in the data.
type DashboardResponse struct {
	TotalOrdenesMes  int64            `json:"total_orders_month"`
	IngresoEstimado  decimal.Decimal  `json:"estimated_income"`
	OrdenesPorEstado map[string]int64 `json:"orders_by_status"`
}
