package model

// Rol is the closed set of user roles. Keeping it as a named type with
// predicate methods avoids scattering raw string comparisons through the
// handlers and services.
type Rol string

const (
	RolAdmin     Rol = "admin"
	RolMecanico  Rol = "mecanico"
	RolRecepcion Rol = "recepcion"
)

// EsValido reports whether r is one of the three known roles.
func (r Rol) EsValido() bool {
	switch r {
	case RolAdmin, RolMecanico, RolRecepcion:
		return true
	}
	return false
}

// EsAdmin gates user management and destructive operations.
func (r Rol) EsAdmin() bool { return r == RolAdmin }

// PuedeGestionarCatalogo: create/update/delete entries of the service catalog.
func (r Rol) PuedeGestionarCatalogo() bool { return r == RolAdmin }

// PuedeOperarOrdenes: add items and move orders through their lifecycle.
func (r Rol) PuedeOperarOrdenes() bool { return r == RolAdmin || r == RolMecanico }

// PuedeRecepcionar: register clients, vehicles, orders and payments at the desk.
func (r Rol) PuedeRecepcionar() bool { return r == RolAdmin || r == RolRecepcion }

// PuedeVerReportes: dashboard metrics are restricted to administrators.
func (r Rol) PuedeVerReportes() bool { return r == RolAdmin }
