package service

import (
	"context"
	"testing"

	"mecanicagil/internal/apierror"
	"mecanicagil/internal/dto"
	"mecanicagil/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory OrdenRepository stub ───────────────────────────────────────────

type stubOrdenRepo struct {
	ordenes map[uuid.UUID]*model.OrdenTrabajo
	items   []model.OrdenItem
}

func newStubOrdenRepo() *stubOrdenRepo {
	return &stubOrdenRepo{ordenes: make(map[uuid.UUID]*model.OrdenTrabajo)}
}

func (r *stubOrdenRepo) Crear(_ context.Context, o *model.OrdenTrabajo) error {
	o.ID = uuid.New()
	if o.Estado == "" {
		o.Estado = model.EstadoPendiente
	}
	r.ordenes[o.ID] = o
	return nil
}

func (r *stubOrdenRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.OrdenTrabajo, error) {
	o, ok := r.ordenes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *o
	return &copia, nil
}

func (r *stubOrdenRepo) Listar(_ context.Context) ([]model.OrdenTrabajo, error) {
	result := make([]model.OrdenTrabajo, 0, len(r.ordenes))
	for _, o := range r.ordenes {
		result = append(result, *o)
	}
	return result, nil
}

func (r *stubOrdenRepo) ActualizarEstado(_ context.Context, id uuid.UUID, estado string) error {
	o, ok := r.ordenes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Estado = estado
	return nil
}

func (r *stubOrdenRepo) CrearItemTx(_ *gorm.DB, item *model.OrdenItem) error {
	item.ID = uuid.New()
	r.items = append(r.items, *item)
	return nil
}

func (r *stubOrdenRepo) IncrementarTotalTx(_ *gorm.DB, id uuid.UUID, monto decimal.Decimal) error {
	o, ok := r.ordenes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Total = o.Total.Add(monto)
	return nil
}

func (r *stubOrdenRepo) ObtenerTotalTx(_ *gorm.DB, id uuid.UUID) (decimal.Decimal, error) {
	o, ok := r.ordenes[id]
	if !ok {
		return decimal.Zero, gorm.ErrRecordNotFound
	}
	return o.Total, nil
}

func (r *stubOrdenRepo) DB() *gorm.DB { return nil }

// ── In-memory VehiculoRepository stub ────────────────────────────────────────

type stubVehiculoRepo struct {
	vehiculos map[uuid.UUID]*model.Vehiculo
}

func newStubVehiculoRepo() *stubVehiculoRepo {
	return &stubVehiculoRepo{vehiculos: make(map[uuid.UUID]*model.Vehiculo)}
}

func (r *stubVehiculoRepo) Crear(_ context.Context, v *model.Vehiculo) error {
	for _, existente := range r.vehiculos {
		if existente.Patente == v.Patente {
			return gorm.ErrDuplicatedKey
		}
	}
	v.ID = uuid.New()
	r.vehiculos[v.ID] = v
	return nil
}

func (r *stubVehiculoRepo) Listar(_ context.Context) ([]model.Vehiculo, error) {
	result := make([]model.Vehiculo, 0, len(r.vehiculos))
	for _, v := range r.vehiculos {
		result = append(result, *v)
	}
	return result, nil
}

func (r *stubVehiculoRepo) ListarPorCliente(_ context.Context, clienteID uuid.UUID) ([]model.Vehiculo, error) {
	var result []model.Vehiculo
	for _, v := range r.vehiculos {
		if v.ClienteID == clienteID {
			result = append(result, *v)
		}
	}
	return result, nil
}

func (r *stubVehiculoRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	v, ok := r.vehiculos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *v
	return &copia, nil
}

func (r *stubVehiculoRepo) Actualizar(_ context.Context, v *model.Vehiculo) error {
	if _, ok := r.vehiculos[v.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.vehiculos[v.ID] = v
	return nil
}

func (r *stubVehiculoRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	if _, ok := r.vehiculos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.vehiculos, id)
	return nil
}

// ── In-memory ServicioRepository stub ────────────────────────────────────────

type stubServicioRepo struct {
	servicios map[uuid.UUID]*model.Servicio
}

func newStubServicioRepo() *stubServicioRepo {
	return &stubServicioRepo{servicios: make(map[uuid.UUID]*model.Servicio)}
}

func (r *stubServicioRepo) Crear(_ context.Context, s *model.Servicio) error {
	s.ID = uuid.New()
	r.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) Listar(_ context.Context) ([]model.Servicio, error) {
	result := make([]model.Servicio, 0, len(r.servicios))
	for _, s := range r.servicios {
		result = append(result, *s)
	}
	return result, nil
}

func (r *stubServicioRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Servicio, error) {
	s, ok := r.servicios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *s
	return &copia, nil
}

func (r *stubServicioRepo) Actualizar(_ context.Context, s *model.Servicio) error {
	if _, ok := r.servicios[s.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.servicios[s.ID] = s
	return nil
}

func (r *stubServicioRepo) Eliminar(_ context.Context, id uuid.UUID) error {
	if _, ok := r.servicios[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.servicios, id)
	return nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type ordenFixture struct {
	svc          OrdenService
	ordenRepo    *stubOrdenRepo
	vehiculoRepo *stubVehiculoRepo
	servicioRepo *stubServicioRepo
}

func newOrdenFixture(t *testing.T) *ordenFixture {
	t.Helper()
	f := &ordenFixture{
		ordenRepo:    newStubOrdenRepo(),
		vehiculoRepo: newStubVehiculoRepo(),
		servicioRepo: newStubServicioRepo(),
	}
	f.svc = NewOrdenService(f.ordenRepo, f.vehiculoRepo, f.servicioRepo, nil, t.TempDir())
	return f
}

func (f *ordenFixture) crearVehiculo(t *testing.T) *model.Vehiculo {
	t.Helper()
	v := &model.Vehiculo{ClienteID: uuid.New(), Patente: "ABC123", Marca: "Ford", Modelo: "Fiesta", Anio: 2018}
	require.NoError(t, f.vehiculoRepo.Crear(context.Background(), v))
	return v
}

func (f *ordenFixture) crearServicio(t *testing.T, nombre, precio string) *model.Servicio {
	t.Helper()
	s := &model.Servicio{Nombre: nombre, PrecioBase: decimal.RequireFromString(precio)}
	require.NoError(t, f.servicioRepo.Crear(context.Background(), s))
	return s
}

func (f *ordenFixture) crearOrden(t *testing.T) *dto.OrdenResponse {
	t.Helper()
	v := f.crearVehiculo(t)
	resp, err := f.svc.Crear(context.Background(), uuid.New(), dto.CrearOrdenRequest{VehiculoID: v.ID.String()})
	require.NoError(t, err)
	return resp
}

// ── Tests: Crear ─────────────────────────────────────────────────────────────

func TestCrearOrden_ArrancaPendienteConTotalCero(t *testing.T) {
	f := newOrdenFixture(t)

	resp := f.crearOrden(t)

	assert.Equal(t, model.EstadoPendiente, resp.Estado)
	assert.True(t, resp.Total.IsZero())
	assert.Empty(t, resp.Items)
}

func TestCrearOrden_VehiculoInexistente(t *testing.T) {
	f := newOrdenFixture(t)

	_, err := f.svc.Crear(context.Background(), uuid.New(), dto.CrearOrdenRequest{VehiculoID: uuid.NewString()})

	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)
	assert.Empty(t, f.ordenRepo.ordenes)
}

// ── Tests: AgregarItem (congelamiento de precio) ─────────────────────────────

func TestAgregarItem_CongelaPrecioVigente(t *testing.T) {
	f := newOrdenFixture(t)
	orden := f.crearOrden(t)
	ordenID := uuid.MustParse(orden.ID)
	servicio := f.crearServicio(t, "Cambio de aceite", "450.50")

	resp, err := f.svc.AgregarItem(context.Background(), ordenID, dto.AgregarItemRequest{ServicioID: servicio.ID.String()})
	require.NoError(t, err)
	assert.True(t, resp.Item.PrecioAlMomento.Equal(decimal.RequireFromString("450.50")))
	assert.True(t, resp.OrdenTotal.Equal(decimal.RequireFromString("450.50")))

	// El precio del catalogo sube; el item ya insertado no se entera
	nuevoPrecio := decimal.RequireFromString("500.00")
	servicio.PrecioBase = nuevoPrecio
	require.NoError(t, f.servicioRepo.Actualizar(context.Background(), servicio))

	resp2, err := f.svc.AgregarItem(context.Background(), ordenID, dto.AgregarItemRequest{ServicioID: servicio.ID.String()})
	require.NoError(t, err)
	assert.True(t, resp2.Item.PrecioAlMomento.Equal(nuevoPrecio))
	assert.True(t, resp2.OrdenTotal.Equal(decimal.RequireFromString("950.50")))

	// El primer item conserva su precio congelado y el total acumula ambos
	require.Len(t, f.ordenRepo.items, 2)
	assert.True(t, f.ordenRepo.items[0].PrecioAlMomento.Equal(decimal.RequireFromString("450.50")))
	assert.True(t, f.ordenRepo.ordenes[ordenID].Total.Equal(decimal.RequireFromString("950.50")))
}

// ordenRepoLecturaVieja devuelve ordenes con un total desactualizado, como
// si otro AgregarItem hubiera incrementado la fila despues de nuestra lectura.
type ordenRepoLecturaVieja struct {
	*stubOrdenRepo
}

func (r *ordenRepoLecturaVieja) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.OrdenTrabajo, error) {
	o, err := r.stubOrdenRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Total = decimal.Zero
	return o, nil
}

func TestAgregarItem_TotalRespondeLoPersistido(t *testing.T) {
	f := newOrdenFixture(t)
	f.svc = NewOrdenService(&ordenRepoLecturaVieja{f.ordenRepo}, f.vehiculoRepo, f.servicioRepo, nil, t.TempDir())
	orden := f.crearOrden(t)
	ordenID := uuid.MustParse(orden.ID)
	servicio := f.crearServicio(t, "Balanceo", "50.00")

	// Otro proceso ya sumo 100.00 que nuestra lectura previa no vio
	f.ordenRepo.ordenes[ordenID].Total = decimal.RequireFromString("100.00")

	resp, err := f.svc.AgregarItem(context.Background(), ordenID, dto.AgregarItemRequest{ServicioID: servicio.ID.String()})

	require.NoError(t, err)
	assert.True(t, resp.OrdenTotal.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, resp.OrdenTotal.Equal(f.ordenRepo.ordenes[ordenID].Total))
}

func TestAgregarItem_OrdenInexistente(t *testing.T) {
	f := newOrdenFixture(t)
	servicio := f.crearServicio(t, "Alineacion", "1200")

	_, err := f.svc.AgregarItem(context.Background(), uuid.New(), dto.AgregarItemRequest{ServicioID: servicio.ID.String()})

	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)
	assert.Empty(t, f.ordenRepo.items)
}

func TestAgregarItem_ServicioInexistente(t *testing.T) {
	f := newOrdenFixture(t)
	orden := f.crearOrden(t)
	ordenID := uuid.MustParse(orden.ID)

	_, err := f.svc.AgregarItem(context.Background(), ordenID, dto.AgregarItemRequest{ServicioID: uuid.NewString()})

	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)
	assert.Empty(t, f.ordenRepo.items)
	assert.True(t, f.ordenRepo.ordenes[ordenID].Total.IsZero())
}

// ── Tests: ActualizarEstado ──────────────────────────────────────────────────

func TestActualizarEstado_TransicionesLibres(t *testing.T) {
	f := newOrdenFixture(t)
	orden := f.crearOrden(t)
	ordenID := uuid.MustParse(orden.ID)

	// No hay secuencia obligatoria: entregado puede volver a pendiente
	for _, estado := range []string{model.EstadoEntregado, model.EstadoPendiente, model.EstadoEnProgreso} {
		resp, err := f.svc.ActualizarEstado(context.Background(), ordenID, dto.ActualizarEstadoRequest{Estado: estado})
		require.NoError(t, err)
		assert.Equal(t, estado, resp.Estado)
	}
	assert.Equal(t, model.EstadoEnProgreso, f.ordenRepo.ordenes[ordenID].Estado)
}

func TestActualizarEstado_EstadoInvalido(t *testing.T) {
	f := newOrdenFixture(t)
	orden := f.crearOrden(t)
	ordenID := uuid.MustParse(orden.ID)

	_, err := f.svc.ActualizarEstado(context.Background(), ordenID, dto.ActualizarEstadoRequest{Estado: "cancelado"})

	assert.ErrorIs(t, err, apierror.ErrValidacion)
	assert.Equal(t, model.EstadoPendiente, f.ordenRepo.ordenes[ordenID].Estado)
}

func TestActualizarEstado_OrdenInexistente(t *testing.T) {
	f := newOrdenFixture(t)

	_, err := f.svc.ActualizarEstado(context.Background(), uuid.New(), dto.ActualizarEstadoRequest{Estado: model.EstadoFinalizado})

	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)
}

func TestActualizarEstado_FinalizadoSinDispatcherNoFalla(t *testing.T) {
	f := newOrdenFixture(t)
	orden := f.crearOrden(t)
	ordenID := uuid.MustParse(orden.ID)

	resp, err := f.svc.ActualizarEstado(context.Background(), ordenID, dto.ActualizarEstadoRequest{Estado: model.EstadoFinalizado})

	require.NoError(t, err)
	assert.Equal(t, model.EstadoFinalizado, resp.Estado)
}

// ── Tests: lecturas ──────────────────────────────────────────────────────────

func TestObtenerOrden_Inexistente(t *testing.T) {
	f := newOrdenFixture(t)

	_, err := f.svc.ObtenerPorID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)
}

func TestListarOrdenes(t *testing.T) {
	f := newOrdenFixture(t)
	f.crearOrden(t)
	v := &model.Vehiculo{ClienteID: uuid.New(), Patente: "XYZ789", Marca: "VW", Modelo: "Gol", Anio: 2015}
	require.NoError(t, f.vehiculoRepo.Crear(context.Background(), v))
	_, err := f.svc.Crear(context.Background(), uuid.New(), dto.CrearOrdenRequest{VehiculoID: v.ID.String()})
	require.NoError(t, err)

	list, err := f.svc.Listar(context.Background())

	require.NoError(t, err)
	assert.Len(t, list, 2)
}
