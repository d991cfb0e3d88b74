//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"muc-lab/domain"
)

// CredentialStore persists remembered room passwords, keyed by room identity.
// Different keys must support independent concurrent access; same-key races
// are last-writer-wins.
type CredentialStore interface {
	// Load returns (zero, false, nil) when no secret is remembered.
	// Absence is not an error.
	Load(key domain.RoomKey) (domain.Secret, bool, error)
	Save(key domain.RoomKey, secret domain.Secret) error
	Remove(key domain.RoomKey) error
}

// StatusStore persists the last completed presence status per room. This is
// the "remembered" auto-join preference consulted on the next login.
type StatusStore interface {
	SaveStatus(key domain.RoomKey, status domain.PresenceStatus) error
	LoadStatus(key domain.RoomKey) (domain.PresenceStatus, bool, error)
}

// PromptAnswer is the result of an accepted credential prompt.
type PromptAnswer struct {
	Secret   domain.Secret
	Remember bool
}

// CredentialPrompt asks the user for a room password. Invoked only after an
// authentication failure; retry is true when a previous attempt already
// failed, so the prompt can show a hint.
type CredentialPrompt interface {
	// Prompt blocks until the user answers. ok is false when canceled.
	Prompt(room *domain.Room, retry bool) (answer PromptAnswer, ok bool)
}

// Alerter is the fire-and-forget user notification surface.
type Alerter interface {
	ShowError(title, message string)
	ShowWarning(title, message string)
}

// Messages selects user-facing text by classification. Localized catalogs
// live behind this interface; the core never assembles sentences itself.
type Messages interface {
	ErrorTitle() string
	WarningTitle() string
	RoomNotConnected(roomName string) string
	RoomLeaveNotConnected() string
	RoomNotFound(roomName string, provider domain.ProviderID) string
	CreateRoomFailed(provider domain.ProviderID) string
	JoinFailed(outcome domain.JoinOutcome, roomName string) string
}

// RoomListListener observes registry mutations. Callbacks run synchronously
// on the mutating goroutine and must not re-enter the registry.
type RoomListListener interface {
	OnRoomListChanged(event domain.RoomListEvent)
}

// StatusSink is the slice of the registry the join workflow needs: marking a
// room's terminal status and firing the matching change event.
type StatusSink interface {
	SetStatus(room *domain.Room, status domain.PresenceStatus)
}

// JoinSubmitter queues asynchronous join requests for the worker pool.
type JoinSubmitter interface {
	Submit(req domain.JoinRequest)
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// initialization or lifecycle events, avoiding the need for manual naming in
// the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
