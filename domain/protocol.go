//go:generate go run go.uber.org/mock/mockgen -source=protocol.go -destination=../mocks/mock_protocol.go -package=mocks
package domain

import "context"

// Provider is a messaging account capable of multi-user chat. The wire
// protocol behind it is entirely the implementation's concern.
type Provider interface {
	ID() ProviderID
	// UserID is the account's own identity, used as the default nickname
	// when accepting an invitation.
	UserID() string
	SupportsMultiUserChat() bool
	CreateRoom(name string, properties map[string]any) (RoomSession, error)
	// FindRoom returns nil without error when no such room exists server side.
	FindRoom(name string) (RoomSession, error)
	ListExistingRooms() ([]string, error)
	RejectInvitation(invitation Invitation, reason string) error
}

// RoomSession is the live, provider-supplied handle to an actual
// joinable room. Join calls block for the duration of the network round
// trip and must therefore never run on the caller's goroutine.
type RoomSession interface {
	Name() string
	ID() string
	Join(ctx context.Context) error
	JoinAs(ctx context.Context, nickname string) error
	JoinWithPassword(ctx context.Context, nickname string, password Secret) error
	Leave() error
	IsJoined() bool
	Invite(identity, reason string) error
	SetSubject(subject string) error
}

// Invitation is an incoming request to join a room, carrying the target
// session and an optional password supplied by the inviter.
type Invitation struct {
	Session  RoomSession
	Provider ProviderID
	Inviter  string
	Reason   string
	Password Secret
}
