package domain

import "github.com/google/uuid"

// JoinOutcome is the terminal classification of one join attempt.
type JoinOutcome int

const (
	JoinSuccess JoinOutcome = iota
	JoinAuthenticationFailed
	JoinRegistrationRequired
	JoinProviderOffline
	JoinSubscriptionExists
	JoinUnknownError
)

func (o JoinOutcome) String() string {
	switch o {
	case JoinSuccess:
		return "Success"
	case JoinAuthenticationFailed:
		return "AuthenticationFailed"
	case JoinRegistrationRequired:
		return "RegistrationRequired"
	case JoinProviderOffline:
		return "ProviderNotRegistered"
	case JoinSubscriptionExists:
		return "SubscriptionAlreadyExists"
	default:
		return "UnknownError"
	}
}

// JoinRequest is one caller-visible request to join a room. It lives for the
// duration of a single asynchronous attempt, plus at most one retry after a
// credential prompt.
type JoinRequest struct {
	ID           uuid.UUID
	Room         *Room
	Nickname     string
	Password     Secret
	Remember     bool
	FirstAttempt bool
	Subject      string
}

func NewJoinRequest(room *Room, nickname string, password Secret, subject string) JoinRequest {
	return JoinRequest{
		ID:           uuid.New(),
		Room:         room,
		Nickname:     nickname,
		Password:     password,
		FirstAttempt: true,
		Subject:      subject,
	}
}
