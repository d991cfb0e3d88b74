package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"muc-lab/contract"
	"muc-lab/domain"
	"muc-lab/runtime/workers"
)

var _ contract.JoinSubmitter = (*JoinPool)(nil)

// JoinPool feeds join requests to a bounded pool of supervised JoinWorkers.
// Attempts for different rooms proceed fully in parallel; two submissions for
// the same room race, both will eventually mutate its status.
type JoinPool struct {
	log         *slog.Logger
	supervisor  contract.ISupervisor
	registry    *Registry
	statuses    contract.StatusStore
	credentials contract.CredentialStore
	prompt      contract.CredentialPrompt
	alerter     contract.Alerter
	messages    contract.Messages
	requests    chan domain.JoinRequest
	numWorkers  int
}

func NewJoinPool(
	log *slog.Logger,
	supervisor *workers.Supervisor,
	registry *Registry,
	statuses contract.StatusStore,
	credentials contract.CredentialStore,
	prompt contract.CredentialPrompt,
	alerter contract.Alerter,
	messages contract.Messages,
	numWorkers, bufferSize int) *JoinPool {
	return &JoinPool{
		log:         log,
		supervisor:  supervisor,
		registry:    registry,
		statuses:    statuses,
		credentials: credentials,
		prompt:      prompt,
		alerter:     alerter,
		messages:    messages,
		requests:    make(chan domain.JoinRequest, bufferSize),
		numWorkers:  numWorkers,
	}
}

// Start registers the pool workers and runs the supervisor until ctx is
// canceled. The supervisor goroutine owns worker restarts; Start itself
// returns immediately.
func (p *JoinPool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.supervisor.Add(workers.NewJoinWorker(
			p.requests, p.registry, p.statuses, p.credentials,
			p.prompt, p.alerter, p.messages, p.log))
	}
	go p.supervisor.Run(ctx)
}

// Submit queues a join request without blocking the caller. The outcome is
// reported through the registry, the alerter or the prompt, never through a
/// return value: the network round trip behind a join is unbounded.
func (p *JoinPool) Submit(req domain.JoinRequest) {
	select {
	case p.requests <- req:
	default:
		p.log.Warn(fmt.Sprintf("Join channel full, dropping request for room %s", req.Room.Name),
			"request", req.ID)
	}
}

func (p *JoinPool) Stop() {
	p.supervisor.Stop()
}
