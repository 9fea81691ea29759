package dto

type CrearClienteRequest struct {
	Nombre    string  `json:"nombre"    validate:"required,min=1,max=50"`
	Apellido  string  `json:"apellido"  validate:"required,min=1,max=50"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

type ClienteResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Apellido  string  `json:"apellido"`
	Email     *string `json:"email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	CreatedAt string  `json:"created_at"`
}

type CrearVehiculoRequest struct {
	Patente string  `json:"patente" validate:"required,min=1,max=20"`
	Marca   string  `json:"marca"   validate:"required"`
	Modelo  string  `json:"modelo"  validate:"required"`
	Anio    int     `json:"anio"    validate:"required,min=1900,max=2100"`
	VIN     *string `json:"vin"`
}

// ActualizarVehiculoRequest carries partial updates; nil fields are untouched.
type ActualizarVehiculoRequest struct {
	Patente *string `json:"patente"`
	Marca   *string `json:"marca"`
	Modelo  *string `json:"modelo"`
	Anio    *int    `json:"anio" validate:"omitempty,min=1900,max=2100"`
	VIN     *string `json:"vin"`
}

type VehiculoResponse struct {
	ID        string  `json:"id"`
	ClienteID string  `json:"cliente_id"`
	Patente   string  `json:"patente"`
	Marca     string  `json:"marca"`
	Modelo    string  `json:"modelo"`
	Anio      int     `json:"anio"`
	VIN       *string `json:"vin"`
	// ClienteNombre is filled on listings for display in tables.
	ClienteNombre string `json:"cliente_nombre,omitempty"`
}
