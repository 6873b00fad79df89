package audit

import "github.com/rs/zerolog/log"

// Lifecycle actions recorded on the audit trail.
const (
	ActionBookingCreated   = "booking_created"
	ActionBookingCancelled = "booking_cancelled"
	ActionStatusUpdated    = "booking_status_updated"
	ActionBookingAssigned  = "booking_assigned"
	ActionBookingDeleted   = "booking_deleted"
	ActionBookingRestored  = "booking_restored"
	ActionBookingPurged    = "booking_purged"
	ActionPaymentConfirmed = "payment_confirmed"
	ActionPaymentFailed    = "payment_failed"
	ActionServiceChanged   = "service_changed"
	ActionUserChanged      = "user_changed"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Warn().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch never blocks the request path; when the queue is full the event
// is dropped. A nil dispatcher discards events.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
