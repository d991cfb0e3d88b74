package workers

import (
	"context"
	"fmt"
	"log/slog"

	"muc-lab/contract"
	"muc-lab/domain"
	"muc-lab/errors"
)

// Ensure *JoinWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*JoinWorker)(nil)

// JoinWorker consumes join requests from a shared channel and runs the join
// state machine for each one. The session join call is the only blocking
// point and it happens here, never on the goroutine that submitted the
// request. A request resolves to exactly one terminal outcome, with at most
// one retry after an accepted credential prompt.
type JoinWorker struct {
	requests    <-chan domain.JoinRequest
	registry    contract.StatusSink
	statuses    contract.StatusStore
	credentials contract.CredentialStore
	prompt      contract.CredentialPrompt
	alerter     contract.Alerter
	messages    contract.Messages
	log         *slog.Logger
}

func NewJoinWorker(
	requests <-chan domain.JoinRequest,
	registry contract.StatusSink,
	statuses contract.StatusStore,
	credentials contract.CredentialStore,
	prompt contract.CredentialPrompt,
	alerter contract.Alerter,
	messages contract.Messages,
	log *slog.Logger) *JoinWorker {
	return &JoinWorker{
		requests:    requests,
		registry:    registry,
		statuses:    statuses,
		credentials: credentials,
		prompt:      prompt,
		alerter:     alerter,
		messages:    messages,
		log:         log,
	}
}

func (w *JoinWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping join worker")
			return ctx.Err()
		case req, ok := <-w.requests:
			if !ok {
				w.log.Debug("Join channel is closed")
				return nil
			}
			w.attempt(ctx, req, true)
		}
	}
}

// attempt runs one join attempt to its terminal classification. retryAllowed
// is true only for the original request; the nested retry runs with false so
// a request can never fan out into more than two attempts.
func (w *JoinWorker) attempt(ctx context.Context, req domain.JoinRequest, retryAllowed bool) {
	room := req.Room

	password := req.Password
	if password.IsEmpty() {
		stored, ok, err := w.credentials.Load(room.Key())
		if err != nil {
			w.log.Warn("Failed to load remembered password", "room", room.Name, "error", err)
		} else if ok {
			password = stored
		}
	}

	var err error
	switch {
	case !password.IsEmpty():
		err = room.Session.JoinWithPassword(ctx, req.Nickname, password)
	case req.Nickname != "":
		err = room.Session.JoinAs(ctx, req.Nickname)
	default:
		err = room.Session.Join(ctx)
	}

	outcome := errors.ClassifyJoin(err)
	if err != nil {
		w.log.Debug(fmt.Sprintf("Failed to join chat room %s", room.Name),
			"request", req.ID, "outcome", outcome, "error", err)
	}
	w.done(ctx, req, password, outcome, retryAllowed)
}

// done applies the terminal classification.
func (w *JoinWorker) done(ctx context.Context, req domain.JoinRequest,
	password domain.Secret, outcome domain.JoinOutcome, retryAllowed bool) {
	room := req.Room

	// The status flips online on every terminal outcome, success or not.
	// Long-standing behavior callers depend on; do not narrow it to success.
	w.registry.SetStatus(room, domain.StatusOnline)
	if err := w.statuses.SaveStatus(room.Key(), domain.StatusOnline); err != nil {
		w.log.Warn("Failed to persist room status", "room", room.Name, "error", err)
	}

	switch outcome {
	case domain.JoinSuccess:
		if req.Remember {
			if err := w.credentials.Save(room.Key(), password); err != nil {
				w.log.Warn("Failed to save password", "room", room.Name, "error", err)
			}
		}
		if req.Subject != "" {
			if err := room.Session.SetSubject(req.Subject); err != nil {
				w.log.Warn("Failed to set subject", "room", room.Name, "error", err)
			}
		}

	case domain.JoinAuthenticationFailed:
		// Auth failures are handled entirely through the prompt, never
		// through the generic error surface.
		if err := w.credentials.Remove(room.Key()); err != nil {
			w.log.Warn("Failed to remove stored password", "room", room.Name, "error", err)
		}
		if !retryAllowed {
			w.log.Warn("Authentication failed on retry, giving up", "room", room.Name, "request", req.ID)
			return
		}
		answer, ok := w.prompt.Prompt(room, !req.FirstAttempt)
		if !ok {
			return
		}
		retry := req
		retry.Password = answer.Secret
		retry.Remember = answer.Remember
		retry.FirstAttempt = false
		w.attempt(ctx, retry, false)

	default:
		w.alerter.ShowError(w.messages.ErrorTitle(), w.messages.JoinFailed(outcome, room.Name))
	}
}
