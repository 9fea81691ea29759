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

// PagoService registers payments against work orders and aggregates revenue.
type PagoService interface {
	Registrar(ctx context.Context, req dto.RegistrarPagoRequest) (*dto.PagoResponse, error)
	Historial(ctx context.Context) ([]dto.PagoResponse, error)
	ResumenIngresos(ctx context.Context) (*dto.ResumenIngresosResponse, error)
}

type pagoService struct {
	repo      repository.PagoRepository
	ordenRepo repository.OrdenRepository
}

func NewPagoService(repo repository.PagoRepository, ordenRepo repository.OrdenRepository) PagoService {
	return &pagoService{repo: repo, ordenRepo: ordenRepo}
}

func mapPago(p model.Pago) dto.PagoResponse {
	return dto.PagoResponse{
		ID:             p.ID.String(),
		OrdenTrabajoID: p.OrdenTrabajoID.String(),
		Monto:          p.Monto,
		Metodo:         p.Metodo,
		Estado:         p.Estado,
		CreatedAt:      p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func (s *pagoService) Registrar(ctx context.Context, req dto.RegistrarPagoRequest) (*dto.PagoResponse, error) {
	ordenID, err := uuid.Parse(req.OrdenTrabajoID)
	if err != nil {
		return nil, apierror.Validacion("orden_trabajo_id invalido")
	}
	if req.Monto.IsNegative() || req.Monto.IsZero() {
		return nil, apierror.Validacion("El monto debe ser mayor a cero")
	}

	if _, err := s.ordenRepo.ObtenerPorID(ctx, ordenID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Orden de trabajo no encontrada")
		}
		return nil, err
	}

	estado := req.Estado
	if estado == "" {
		estado = "pagado"
	}
	pago := &model.Pago{
		OrdenTrabajoID: ordenID,
		Monto:          req.Monto,
		Metodo:         req.Metodo,
		Estado:         estado,
	}
	if err := s.repo.Crear(ctx, pago); err != nil {
		return nil, err
	}
	resp := mapPago(*pago)
	return &resp, nil
}

func (s *pagoService) Historial(ctx context.Context) ([]dto.PagoResponse, error) {
	pagos, err := s.repo.Historial(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PagoResponse, 0, len(pagos))
	for _, p := range pagos {
		result = append(result, mapPago(p))
	}
	return result, nil
}

func (s *pagoService) ResumenIngresos(ctx context.Context) (*dto.ResumenIngresosResponse, error) {
	total, err := s.repo.TotalPagado(ctx)
	if err != nil {
		return nil, err
	}
	porMetodo, err := s.repo.TotalPorMetodo(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ResumenIngresosResponse{
		TotalIngresos: total,
		PorMetodo:     porMetodo,
	}, nil
}
