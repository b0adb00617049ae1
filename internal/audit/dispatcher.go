package audit

import "github.com/rs/zerolog/log"

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink receives dispatched events; Logger is the gorm-backed one.
type Sink interface {
	Log(userID *uint, action string, entity string, entityID *uint, metadata any) error
}

// Dispatcher decouples audit writes from request handling: events go
// through a buffered channel to a single worker so a slow audit insert
// never blocks a booking.
type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
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

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		// audit must never break the API; drop when the queue is full
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
