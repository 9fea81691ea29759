package service

import (
	"context"
	"testing"

	"mecanicagil/internal/apierror"
	"mecanicagil/internal/dto"
	"mecanicagil/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ClienteRepository stub ─────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Crear(_ context.Context, c *model.Cliente) error {
	if c.Email != nil {
		for _, existente := range r.clientes {
			if existente.Email != nil && *existente.Email == *c.Email {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	c.ID = uuid.New()
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Listar(_ context.Context) ([]model.Cliente, error) {
	result := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		result = append(result, *c)
	}
	return result, nil
}

func (r *stubClienteRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func clienteFixture() (ClienteService, *stubClienteRepo, *stubVehiculoRepo) {
	clienteRepo := newStubClienteRepo()
	vehiculoRepo := newStubVehiculoRepo()
	return NewClienteService(clienteRepo, vehiculoRepo), clienteRepo, vehiculoRepo
}

func TestCrearCliente(t *testing.T) {
	svc, _, _ := clienteFixture()

	resp, err := svc.CrearCliente(context.Background(), dto.CrearClienteRequest{
		Nombre:   "Maria",
		Apellido: "Perez",
		Email:    strPtr("maria@example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Maria", resp.Nombre)
	assert.Equal(t, "maria@example.com", *resp.Email)
}

func TestCrearCliente_EmailDuplicado(t *testing.T) {
	svc, _, _ := clienteFixture()
	_, err := svc.CrearCliente(context.Background(), dto.CrearClienteRequest{
		Nombre: "Maria", Apellido: "Perez", Email: strPtr("maria@example.com"),
	})
	require.NoError(t, err)

	_, err = svc.CrearCliente(context.Background(), dto.CrearClienteRequest{
		Nombre: "Mario", Apellido: "Gomez", Email: strPtr("maria@example.com"),
	})

	assert.ErrorIs(t, err, apierror.ErrConflicto)
}

func TestCrearCliente_SinEmailNoConflictua(t *testing.T) {
	// Email es opcional: varios clientes pueden no tenerlo
	svc, repo, _ := clienteFixture()

	for _, nombre := range []string{"Juan", "Pedro"} {
		_, err := svc.CrearCliente(context.Background(), dto.CrearClienteRequest{Nombre: nombre, Apellido: "Sin Mail"})
		require.NoError(t, err)
	}
	assert.Len(t, repo.clientes, 2)
}

func TestAgregarVehiculo(t *testing.T) {
	svc, _, _ := clienteFixture()
	cliente, err := svc.CrearCliente(context.Background(), dto.CrearClienteRequest{Nombre: "Maria", Apellido: "Perez"})
	require.NoError(t, err)

	resp, err := svc.AgregarVehiculo(context.Background(), uuid.MustParse(cliente.ID), dto.CrearVehiculoRequest{
		Patente: "AB123CD",
		Marca:   "Toyota",
		Modelo:  "Corolla",
		Anio:    2020,
	})

	require.NoError(t, err)
	assert.Equal(t, "AB123CD", resp.Patente)
	assert.Equal(t, cliente.ID, resp.ClienteID)
}

func TestAgregarVehiculo_ClienteInexistente(t *testing.T) {
	svc, _, vehiculoRepo := clienteFixture()

	_, err := svc.AgregarVehiculo(context.Background(), uuid.New(), dto.CrearVehiculoRequest{
		Patente: "AB123CD", Marca: "Toyota", Modelo: "Corolla", Anio: 2020,
	})

	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)
	assert.Empty(t, vehiculoRepo.vehiculos)
}

func TestAgregarVehiculo_PatenteDuplicada(t *testing.T) {
	svc, _, _ := clienteFixture()
	cliente, err := svc.CrearCliente(context.Background(), dto.CrearClienteRequest{Nombre: "Maria", Apellido: "Perez"})
	require.NoError(t, err)
	clienteID := uuid.MustParse(cliente.ID)

	_, err = svc.AgregarVehiculo(context.Background(), clienteID, dto.CrearVehiculoRequest{
		Patente: "AB123CD", Marca: "Toyota", Modelo: "Corolla", Anio: 2020,
	})
	require.NoError(t, err)

	_, err = svc.AgregarVehiculo(context.Background(), clienteID, dto.CrearVehiculoRequest{
		Patente: "AB123CD", Marca: "Fiat", Modelo: "Cronos", Anio: 2022,
	})

	assert.ErrorIs(t, err, apierror.ErrConflicto)
}

func TestActualizarVehiculo_Parcial(t *testing.T) {
	svc, _, _ := clienteFixture()
	cliente, err := svc.CrearCliente(context.Background(), dto.CrearClienteRequest{Nombre: "Maria", Apellido: "Perez"})
	require.NoError(t, err)
	vehiculo, err := svc.AgregarVehiculo(context.Background(), uuid.MustParse(cliente.ID), dto.CrearVehiculoRequest{
		Patente: "AB123CD", Marca: "Toyota", Modelo: "Corolla", Anio: 2020,
	})
	require.NoError(t, err)

	nuevoAnio := 2021
	resp, err := svc.ActualizarVehiculo(context.Background(), uuid.MustParse(vehiculo.ID), dto.ActualizarVehiculoRequest{
		Anio: &nuevoAnio,
	})

	require.NoError(t, err)
	assert.Equal(t, 2021, resp.Anio)
	assert.Equal(t, "AB123CD", resp.Patente) // resto intacto
}

func TestEliminarVehiculo_Inexistente(t *testing.T) {
	svc, _, _ := clienteFixture()

	err := svc.EliminarVehiculo(context.Background(), uuid.New())

	assert.ErrorIs(t, err, apierror.ErrNoEncontrado)
}
