// FILE: internal/service/intake_service.go
package service

import (
	"context"

	"bot-intake-be/internal/engine"
	"bot-intake-be/internal/pkg/logger"
)

type IIntakeService interface {
	Handle(ctx context.Context, in engine.Inbound) (engine.Reply, error)
}

type intakeService struct {
	machine  *engine.Machine
	registry *engine.Registry
	logger   logger.ILogger
}

func NewIntakeService(machine *engine.Machine, registry *engine.Registry, log logger.ILogger) IIntakeService {
	return &intakeService{
		machine:  machine,
		registry: registry,
		logger:   log,
	}
}

// Handle routes one inbound event to the user's session. A session is
// created only on a recognized entry command; stray text from an unknown
// user gets a hint without registering anything.
func (s *intakeService) Handle(ctx context.Context, in engine.Inbound) (engine.Reply, error) {
	sess, found := s.registry.Get(in.UserID)
	if !found {
		sess = engine.NewSession(in.UserID)
	}

	reply := s.machine.Advance(ctx, sess, in)

	// Keep known sessions registered (an Idle state after completion still
	// counts; the registry entry is ready for the next cycle). A fresh
	// session that stayed Idle (stray text, denied admin entry) is
	// discarded.
	if found || sess.CurrentState() != engine.StateIdle {
		s.registry.Put(sess)
	}

	s.logger.Debug("INTAKE", "Event handled", map[string]interface{}{
		"user_id": in.UserID,
		"state":   sess.CurrentState().String(),
	})
	return reply, nil
}
