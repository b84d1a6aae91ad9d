package audit

import "go.uber.org/zap"

type Event struct {
	ActorID   *uint
	ActorType string
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

// Sink receives the events the dispatcher drains; the gorm-backed Logger is
// the production sink.
type Sink interface {
	Log(actorID *uint, actorType, action, entity string, entityID *uint, metadata any) error
}

// Dispatcher writes audit events through a buffered channel so a slow or
// failing audit insert never blocks a request.
type Dispatcher struct {
	logger Sink
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger Sink, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ActorID,
			ev.ActorType,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop the event rather than stall the API
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
