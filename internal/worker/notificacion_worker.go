package worker

// notificacion_worker.go
// Processes "vehicle ready" notification jobs from QueueNotificaciones and
// mails them to the vehicle owner via SMTP.

import (
	"context"
	"encoding/json"

	"mecanicagil/internal/infra"

	"github.com/rs/zerolog/log"
)

// NotificacionPayload is the job envelope sent to QueueNotificaciones.
type NotificacionPayload struct {
	Para   string `json:"para"`
	Asunto string `json:"asunto"`
	Cuerpo string `json:"cuerpo"`
}

// NotificacionWorker sends client emails queued by the order service.
type NotificacionWorker struct {
	mailer *infra.Mailer
}

func NewNotificacionWorker(mailer *infra.Mailer) *NotificacionWorker {
	return &NotificacionWorker{mailer: mailer}
}

// Process sends one queued notification. Failures are logged, never retried —
// a missed courtesy email is not worth blocking the queue.
func (w *NotificacionWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload NotificacionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacion_worker: invalid payload")
		return
	}
	if payload.Para == "" {
		log.Warn().Msg("notificacion_worker: empty recipient — skipping")
		return
	}

	if err := w.mailer.SendNotificacion(payload.Para, payload.Asunto, payload.Cuerpo); err != nil {
		log.Error().Err(err).Str("para", payload.Para).Msg("notificacion_worker: failed to send email")
		return
	}
	log.Info().Str("para", payload.Para).Msg("notificacion_worker: notification sent")
}
