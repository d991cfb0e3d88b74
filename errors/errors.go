package errors

import (
	"errors"
	"fmt"

	"muc-lab/domain"
)

var (
	// ErrDuplicateRoom signals a registry insert for an identity that is
	// already tracked. This is a programming error on the caller's side and
	// is never absorbed silently.
	ErrDuplicateRoom = fmt.Errorf("room already registered")
	// ErrRoomNotConnected means the room has no live provider session.
	ErrRoomNotConnected = fmt.Errorf("room not connected")
	ErrRoomNotFound     = fmt.Errorf("room not found")
	// ErrNoMultiUserChat means the provider lacks the multi-user chat
	// capability.
	ErrNoMultiUserChat = fmt.Errorf("provider does not support multi-user chat")
	ErrWorkerPanic     = fmt.Errorf("worker panic")
)

// JoinError is a classified join failure returned by a RoomSession.
// Providers wrap their protocol-level failures into one of the non-success
// outcomes; anything else is classified as JoinUnknownError.
type JoinError struct {
	Outcome domain.JoinOutcome
	Room    string
	Err     error
}

func NewJoinError(outcome domain.JoinOutcome, room string, err error) *JoinError {
	return &JoinError{Outcome: outcome, Room: room, Err: err}
}

func (e *JoinError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("join %s failed (%s): %v", e.Room, e.Outcome, e.Err)
	}
	return fmt.Sprintf("join %s failed (%s)", e.Room, e.Outcome)
}

func (e *JoinError) Unwrap() error {
	return e.Err
}

// ClassifyJoin maps the result of a join call to its terminal outcome.
func ClassifyJoin(err error) domain.JoinOutcome {
	if err == nil {
		return domain.JoinSuccess
	}
	var joinErr *JoinError
	if errors.As(err, &joinErr) {
		return joinErr.Outcome
	}
	return domain.JoinUnknownError
}
