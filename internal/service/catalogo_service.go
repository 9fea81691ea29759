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

// CatalogoService manages the service catalog. Base price changes here never
// touch historical order items — their prices were frozen by value.
type CatalogoService interface {
	Crear(ctx context.Context, req dto.CrearServicioRequest) (*dto.ServicioResponse, error)
	Listar(ctx context.Context) ([]dto.ServicioResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type catalogoService struct {
	repo repository.ServicioRepository
}

func NewCatalogoService(repo repository.ServicioRepository) CatalogoService {
	return &catalogoService{repo: repo}
}

func mapServicio(s model.Servicio) dto.ServicioResponse {
	return dto.ServicioResponse{
		ID:          s.ID.String(),
		Nombre:      s.Nombre,
		Descripcion: s.Descripcion,
		PrecioBase:  s.PrecioBase,
	}
}

func (s *catalogoService) Crear(ctx context.Context, req dto.CrearServicioRequest) (*dto.ServicioResponse, error) {
	if req.Nombre == "" {
		return nil, apierror.Validacion("El nombre del servicio es obligatorio")
	}
	if req.PrecioBase.IsNegative() {
		return nil, apierror.Validacion("El precio base no puede ser negativo")
	}

	servicio := &model.Servicio{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		PrecioBase:  req.PrecioBase,
	}
	if err := s.repo.Crear(ctx, servicio); err != nil {
		return nil, err
	}
	resp := mapServicio(*servicio)
	return &resp, nil
}

func (s *catalogoService) Listar(ctx context.Context) ([]dto.ServicioResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ServicioResponse, 0, len(list))
	for _, servicio := range list {
		result = append(result, mapServicio(servicio))
	}
	return result, nil
}

func (s *catalogoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ServicioResponse, error) {
	servicio, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Servicio no encontrado")
		}
		return nil, err
	}
	resp := mapServicio(*servicio)
	return &resp, nil
}

func (s *catalogoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarServicioRequest) (*dto.ServicioResponse, error) {
	servicio, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Servicio no encontrado")
		}
		return nil, err
	}

	if req.Nombre != nil {
		if *req.Nombre == "" {
			return nil, apierror.Validacion("El nombre del servicio es obligatorio")
		}
		servicio.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		servicio.Descripcion = req.Descripcion
	}
	if req.PrecioBase != nil {
		if req.PrecioBase.IsNegative() {
			return nil, apierror.Validacion("El precio base no puede ser negativo")
		}
		servicio.PrecioBase = *req.PrecioBase
	}

	if err := s.repo.Actualizar(ctx, servicio); err != nil {
		return nil, err
	}
	resp := mapServicio(*servicio)
	return &resp, nil
}

func (s *catalogoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NoEncontrado("Servicio no encontrado")
		}
		return err
	}
	return s.repo.Eliminar(ctx, id)
}
