// Package mutation implements the write side of the API: it validates
// commands against the current dataset, applies them atomically and derives
// the lifecycle event that subscribers receive. All cross-entity rules live
// here; the store itself has no business logic.
package mutation

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
	"github.com/postwire/postwire/internal/store"
	"github.com/postwire/postwire/pubsub"
)

// Service is the mutation engine. It holds no state of its own beyond the
// command currently being processed; the store owns every entity instance.
type Service struct {
	store    *store.Store
	bus      *pubsub.Bus
	logger   *zap.Logger
	validate *validator.Validate
}

func NewService(st *store.Store, bus *pubsub.Bus, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		store:    st,
		bus:      bus,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// publish fans an event out after the store write committed. The bus is
// optional so the engine can run without subscribers (e.g. in tests).
func (s *Service) publish(topic string, ev entities.Event) {
	if s.bus == nil {
		return
	}

	s.bus.Publish(topic, ev)
}
