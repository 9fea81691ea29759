package service

import (
	"context"
	"errors"

	"mecanicagil/internal/apierror"
	"mecanicagil/internal/dto"
	"mecanicagil/internal/model"
	"mecanicagil/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteService manages clients and their vehicles (the original desk flow:
// a vehicle is always registered through its owner).
type ClienteService interface {
	CrearCliente(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ListarClientes(ctx context.Context) ([]dto.ClienteResponse, error)
	AgregarVehiculo(ctx context.Context, clienteID uuid.UUID, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error)
	ListarVehiculosDeCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.VehiculoResponse, error)
	ListarVehiculos(ctx context.Context) ([]dto.VehiculoResponse, error)
	ActualizarVehiculo(ctx context.Context, id uuid.UUID, req dto.ActualizarVehiculoRequest) (*dto.VehiculoResponse, error)
	EliminarVehiculo(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo         repository.ClienteRepository
	vehiculoRepo repository.VehiculoRepository
}

func NewClienteService(repo repository.ClienteRepository, vehiculoRepo repository.VehiculoRepository) ClienteService {
	return &clienteService{repo: repo, vehiculoRepo: vehiculoRepo}
}

func mapCliente(c model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:        c.ID.String(),
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
		CreatedAt: c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func mapVehiculo(v model.Vehiculo) dto.VehiculoResponse {
	resp := dto.VehiculoResponse{
		ID:        v.ID.String(),
		ClienteID: v.ClienteID.String(),
		Patente:   v.Patente,
		Marca:     v.Marca,
		Modelo:    v.Modelo,
		Anio:      v.Anio,
		VIN:       v.VIN,
	}
	if v.Cliente != nil {
		resp.ClienteNombre = v.Cliente.Nombre + " " + v.Cliente.Apellido
	}
	return resp
}

func (s *clienteService) CrearCliente(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	cliente := &model.Cliente{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	}
	if err := s.repo.Crear(ctx, cliente); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("El email ya esta registrado para otro cliente")
		}
		return nil, err
	}
	resp := mapCliente(*cliente)
	return &resp, nil
}

func (s *clienteService) ListarClientes(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCliente(c))
	}
	return result, nil
}

func (s *clienteService) AgregarVehiculo(ctx context.Context, clienteID uuid.UUID, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error) {
	if _, err := s.repo.ObtenerPorID(ctx, clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Cliente no encontrado")
		}
		return nil, err
	}

	vehiculo := &model.Vehiculo{
		ClienteID: clienteID,
		Patente:   req.Patente,
		Marca:     req.Marca,
		Modelo:    req.Modelo,
		Anio:      req.Anio,
		VIN:       req.VIN,
	}
	if err := s.vehiculoRepo.Crear(ctx, vehiculo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("La patente o el VIN ya existen")
		}
		return nil, err
	}
	resp := mapVehiculo(*vehiculo)
	return &resp, nil
}

func (s *clienteService) ListarVehiculosDeCliente(ctx context.Context, clienteID uuid.UUID) ([]dto.VehiculoResponse, error) {
	if _, err := s.repo.ObtenerPorID(ctx, clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Cliente no encontrado")
		}
		return nil, err
	}
	list, err := s.vehiculoRepo.ListarPorCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.VehiculoResponse, 0, len(list))
	for _, v := range list {
		result = append(result, mapVehiculo(v))
	}
	return result, nil
}

func (s *clienteService) ListarVehiculos(ctx context.Context) ([]dto.VehiculoResponse, error) {
	list, err := s.vehiculoRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.VehiculoResponse, 0, len(list))
	for _, v := range list {
		result = append(result, mapVehiculo(v))
	}
	return result, nil
}

func (s *clienteService) ActualizarVehiculo(ctx context.Context, id uuid.UUID, req dto.ActualizarVehiculoRequest) (*dto.VehiculoResponse, error) {
	vehiculo, err := s.vehiculoRepo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Vehiculo no encontrado")
		}
		return nil, err
	}

	if req.Patente != nil {
		vehiculo.Patente = *req.Patente
	}
	if req.Marca != nil {
		vehiculo.Marca = *req.Marca
	}
	if req.Modelo != nil {
		vehiculo.Modelo = *req.Modelo
	}
	if req.Anio != nil {
		vehiculo.Anio = *req.Anio
	}
	if req.VIN != nil {
		vehiculo.VIN = req.VIN
	}

	if err := s.vehiculoRepo.Actualizar(ctx, vehiculo); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("La patente o el VIN ya existen")
		}
		return nil, err
	}
	resp := mapVehiculo(*vehiculo)
	return &resp, nil
}

func (s *clienteService) EliminarVehiculo(ctx context.Context, id uuid.UUID) error {
	if _, err := s.vehiculoRepo.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NoEncontrado("Vehiculo no encontrado")
		}
		return err
	}
	return s.vehiculoRepo.Eliminar(ctx, id)
}
