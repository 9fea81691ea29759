package service

import (
	"context"
	"errors"
	"fmt"

	"mecanicagil/internal/apierror"
	"mecanicagil/internal/dto"
	"mecanicagil/internal/infra"
	"mecanicagil/internal/model"
	"mecanicagil/internal/repository"
	"mecanicagil/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrdenService owns the work-order lifecycle: creation, item addition with
// price freezing, status transitions and reads.
type OrdenService interface {
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error)
	AgregarItem(ctx context.Context, ordenID uuid.UUID, req dto.AgregarItemRequest) (*dto.AgregarItemResponse, error)
	ActualizarEstado(ctx context.Context, ordenID uuid.UUID, req dto.ActualizarEstadoRequest) (*dto.OrdenResponse, error)
	ObtenerPorID(ctx context.Context, ordenID uuid.UUID) (*dto.OrdenResponse, error)
	Listar(ctx context.Context) ([]dto.OrdenResponse, error)
	GenerarRecibo(ctx context.Context, ordenID uuid.UUID) (string, error)
}

type ordenService struct {
	repo         repository.OrdenRepository
	vehiculoRepo repository.VehiculoRepository
	servicioRepo repository.ServicioRepository
	dispatcher   *worker.Dispatcher
	pdfPath      string
}

func NewOrdenService(
	repo repository.OrdenRepository,
	vehiculoRepo repository.VehiculoRepository,
	servicioRepo repository.ServicioRepository,
	dispatcher *worker.Dispatcher,
	pdfPath string,
) OrdenService {
	return &ordenService{
		repo:         repo,
		vehiculoRepo: vehiculoRepo,
		servicioRepo: servicioRepo,
		dispatcher:   dispatcher,
		pdfPath:      pdfPath,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *ordenService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error) {
	vehiculoID, err := uuid.Parse(req.VehiculoID)
	if err != nil {
		return nil, apierror.Validacion("vehiculo_id invalido")
	}

	if _, err := s.vehiculoRepo.ObtenerPorID(ctx, vehiculoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Vehiculo no encontrado")
		}
		return nil, err
	}

	orden := &model.OrdenTrabajo{
		VehiculoID: vehiculoID,
		UsuarioID:  usuarioID,
		Estado:     model.EstadoPendiente,
	}
	if err := s.repo.Crear(ctx, orden); err != nil {
		return nil, err
	}
	resp := ordenToResponse(orden, false)
	return &resp, nil
}

// AgregarItem freezes the service's current base price into a new item and
// bumps the order total by the same amount. Both writes share one transaction:
// either the item exists AND the total reflects it, or neither happened.
func (s *ordenService) AgregarItem(ctx context.Context, ordenID uuid.UUID, req dto.AgregarItemRequest) (*dto.AgregarItemResponse, error) {
	servicioID, err := uuid.Parse(req.ServicioID)
	if err != nil {
		return nil, apierror.Validacion("servicio_id invalido")
	}

	if _, err := s.repo.ObtenerPorID(ctx, ordenID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Orden no encontrada")
		}
		return nil, err
	}

	servicio, err := s.servicioRepo.ObtenerPorID(ctx, servicioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Servicio no encontrado")
		}
		return nil, err
	}

	item := &model.OrdenItem{
		OrdenTrabajoID:  ordenID,
		ServicioID:      servicio.ID,
		PrecioAlMomento: servicio.PrecioBase,
	}

	// El total se relee dentro de la transaccion: con AgregarItem
	// concurrentes una lectura previa puede quedar vieja.
	var nuevoTotal decimal.Decimal
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CrearItemTx(tx, item); err != nil {
			return err
		}
		if err := s.repo.IncrementarTotalTx(tx, ordenID, servicio.PrecioBase); err != nil {
			return err
		}
		total, err := s.repo.ObtenerTotalTx(tx, ordenID)
		if err != nil {
			return err
		}
		nuevoTotal = total
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.AgregarItemResponse{
		Item: dto.ItemOrdenResponse{
			ID:              item.ID.String(),
			ServicioID:      servicio.ID.String(),
			ServicioNombre:  servicio.Nombre,
			PrecioAlMomento: item.PrecioAlMomento,
		},
		OrdenTotal: nuevoTotal,
	}, nil
}

func (s *ordenService) ActualizarEstado(ctx context.Context, ordenID uuid.UUID, req dto.ActualizarEstadoRequest) (*dto.OrdenResponse, error) {
	if !model.EstadoValido(req.Estado) {
		return nil, apierror.Validacion(fmt.Sprintf(
			"Estado invalido. Permitidos: %s, %s, %s, %s",
			model.EstadoPendiente, model.EstadoEnProgreso, model.EstadoFinalizado, model.EstadoEntregado,
		))
	}

	orden, err := s.repo.ObtenerPorID(ctx, ordenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Orden no encontrada")
		}
		return nil, err
	}

	if err := s.repo.ActualizarEstado(ctx, ordenID, req.Estado); err != nil {
		return nil, err
	}
	orden.Estado = req.Estado

	// "Vehicle ready" notification — best-effort, fire & forget.
	if req.Estado == model.EstadoFinalizado && s.dispatcher != nil {
		s.notificarFinalizada(ctx, orden)
	}

	resp := ordenToResponse(orden, true)
	return &resp, nil
}

func (s *ordenService) notificarFinalizada(ctx context.Context, orden *model.OrdenTrabajo) {
	if orden.Vehiculo == nil || orden.Vehiculo.Cliente == nil || orden.Vehiculo.Cliente.Email == nil {
		return
	}
	cliente := orden.Vehiculo.Cliente
	payload := worker.NotificacionPayload{
		Para:   *cliente.Email,
		Asunto: fmt.Sprintf("Su vehiculo %s esta listo", orden.Vehiculo.Patente),
		Cuerpo: fmt.Sprintf(
			"Hola %s,\n\nLos trabajos sobre su %s %s (patente %s) han finalizado. Ya puede retirarlo del taller.\n\nMecanica Agil",
			cliente.Nombre, orden.Vehiculo.Marca, orden.Vehiculo.Modelo, orden.Vehiculo.Patente,
		),
	}
	if err := s.dispatcher.EnqueueNotificacion(ctx, payload); err != nil {
		log.Warn().Err(err).Str("orden_id", orden.ID.String()).Msg("no se pudo encolar la notificacion")
	}
}

func (s *ordenService) ObtenerPorID(ctx context.Context, ordenID uuid.UUID) (*dto.OrdenResponse, error) {
	orden, err := s.repo.ObtenerPorID(ctx, ordenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("Orden no encontrada")
		}
		return nil, err
	}
	resp := ordenToResponse(orden, true)
	return &resp, nil
}

// GenerarRecibo writes the printable receipt PDF for an order and returns the
// path to the generated file.
func (s *ordenService) GenerarRecibo(ctx context.Context, ordenID uuid.UUID) (string, error) {
	orden, err := s.repo.ObtenerPorID(ctx, ordenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apierror.NoEncontrado("Orden no encontrada")
		}
		return "", err
	}
	return infra.GenerateReciboPDF(orden, s.pdfPath)
}

func (s *ordenService) Listar(ctx context.Context) ([]dto.OrdenResponse, error) {
	ordenes, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.OrdenResponse, 0, len(ordenes))
	for i := range ordenes {
		result = append(result, ordenToResponse(&ordenes[i], false))
	}
	return result, nil
}

func ordenToResponse(o *model.OrdenTrabajo, detalle bool) dto.OrdenResponse {
	items := make([]dto.ItemOrdenResponse, 0, len(o.Items))
	for _, item := range o.Items {
		nombre := ""
		if item.Servicio != nil {
			nombre = item.Servicio.Nombre
		}
		items = append(items, dto.ItemOrdenResponse{
			ID:              item.ID.String(),
			ServicioID:      item.ServicioID.String(),
			ServicioNombre:  nombre,
			PrecioAlMomento: item.PrecioAlMomento,
		})
	}

	resp := dto.OrdenResponse{
		ID:         o.ID.String(),
		VehiculoID: o.VehiculoID.String(),
		UsuarioID:  o.UsuarioID.String(),
		Estado:     o.Estado,
		Total:      o.Total,
		Items:      items,
		CreatedAt:  o.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}

	if detalle && o.Vehiculo != nil {
		resp.Vehiculo = &dto.VehiculoResponse{
			ID:        o.Vehiculo.ID.String(),
			ClienteID: o.Vehiculo.ClienteID.String(),
			Patente:   o.Vehiculo.Patente,
			Marca:     o.Vehiculo.Marca,
			Modelo:    o.Vehiculo.Modelo,
			Anio:      o.Vehiculo.Anio,
			VIN:       o.Vehiculo.VIN,
		}
		if o.Vehiculo.Cliente != nil {
			c := o.Vehiculo.Cliente
			resp.Cliente = &dto.ClienteResponse{
				ID:        c.ID.String(),
				Nombre:    c.Nombre,
				Apellido:  c.Apellido,
				Email:     c.Email,
				Telefono:  c.Telefono,
				Direccion: c.Direccion,
				CreatedAt: c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			}
		}
	}
	return resp
}
