package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"muc-lab/contract"
	"muc-lab/domain"
	"muc-lab/errors"
	"muc-lab/runtime"
)

var validate = validator.New()

// CreateRoomRequest describes a room to create. Private is passed through to
// the provider as a room property, never interpreted locally.
type CreateRoomRequest struct {
	Name       string `validate:"required"`
	Provider   domain.Provider
	Invitees   []string
	Reason     string
	Join       bool
	Persistent bool
	Private    bool
}

type IMUCService interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error)
	JoinRoom(room *domain.Room, nickname string, password domain.Secret, subject string)
	JoinRoomBySession(session domain.RoomSession, provider domain.ProviderID, nickname string, password domain.Secret)
	JoinRoomByName(name string, entry *runtime.ProviderEntry)
	LeaveRoom(room *domain.Room)
	AcceptInvitation(invitation domain.Invitation)
	RejectInvitation(invitation domain.Invitation, reason string)
	RemoveRoom(room *domain.Room)
	Synchronize(provider domain.Provider)
}

// MUCService is the façade tying the registry, the synchronizer and the join
// pool together for create/join/leave/synchronize operations.
type MUCService struct {
	log          *slog.Logger
	registry     *runtime.Registry
	synchronizer *runtime.Synchronizer
	joins        contract.JoinSubmitter
	statuses     contract.StatusStore
	credentials  contract.CredentialStore
	alerter      contract.Alerter
	messages     contract.Messages
}

func NewMUCService(
	log *slog.Logger,
	registry *runtime.Registry,
	synchronizer *runtime.Synchronizer,
	joins contract.JoinSubmitter,
	statuses contract.StatusStore,
	credentials contract.CredentialStore,
	alerter contract.Alerter,
	messages contract.Messages) *MUCService {
	return &MUCService{
		log:          log,
		registry:     registry,
		synchronizer: synchronizer,
		joins:        joins,
		statuses:     statuses,
		credentials:  credentials,
		alerter:      alerter,
		messages:     messages,
	}
}

// CreateRoom creates a room through the provider and registers its wrapper.
// With Join set, the room is additionally joined synchronously and every
// invitee is invited best-effort: an invite failure never rolls back the
// creation. When the server hands back an already known room ID, the
// existing wrapper is reused instead of a duplicate.
func (s *MUCService) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if req.Provider == nil || !req.Provider.SupportsMultiUserChat() {
		return nil, errors.ErrNoMultiUserChat
	}

	entry := s.registry.AddProvider(req.Provider)

	session, err := req.Provider.CreateRoom(req.Name, map[string]any{"isPrivate": req.Private})
	if err != nil {
		s.log.Error("Failed to create chat room", "room", req.Name, "error", err)
		s.alerter.ShowError(s.messages.ErrorTitle(),
			s.messages.CreateRoomFailed(entry.Provider.ID()))
		return nil, fmt.Errorf("create room %s: %w", req.Name, err)
	}

	if req.Join {
		if err := session.Join(ctx); err != nil {
			s.log.Error("Failed to join created chat room", "room", req.Name, "error", err)
			s.alerter.ShowError(s.messages.ErrorTitle(),
				s.messages.CreateRoomFailed(entry.Provider.ID()))
		} else {
			for _, invitee := range req.Invitees {
				if err := session.Invite(invitee, req.Reason); err != nil {
					s.log.Warn("Failed to invite contact", "room", req.Name,
						"invitee", invitee, "error", err)
				}
			}
		}
	}

	if room, ok := s.registry.FindBySession(session); ok {
		return room, nil
	}

	room := domain.NewRoom(session.Name(), session.ID(), req.Provider.ID(), session)
	room.Persistent = req.Persistent
	if err := s.registry.AddRoom(room); err != nil {
		// Same room ID materialized concurrently; reuse the tracked wrapper.
		if existing, ok := s.registry.FindRoom(room.Key()); ok {
			return existing, nil
		}
		return nil, err
	}
	return room, nil
}

// JoinRoom starts the asynchronous join workflow for a tracked room. A room
// without a live session never reaches the workflow: the caller is warned
// synchronously and nothing is submitted.
func (s *MUCService) JoinRoom(room *domain.Room, nickname string, password domain.Secret, subject string) {
	if room.Session == nil {
		s.alerter.ShowWarning(s.messages.WarningTitle(),
			s.messages.RoomNotConnected(room.Name))
		return
	}
	s.joins.Submit(domain.NewJoinRequest(room, nickname, password, subject))
}

// JoinRoomBySession joins a live session the server handed back, registering
// a wrapper for it first when it is not tracked yet.
func (s *MUCService) JoinRoomBySession(session domain.RoomSession, provider domain.ProviderID,
	nickname string, password domain.Secret) {
	room, ok := s.registry.FindBySession(session)
	if !ok {
		room = domain.NewRoom(session.Name(), session.ID(), provider, session)
		if err := s.registry.AddRoom(room); err != nil {
			s.log.Warn("Session already tracked under another wrapper",
				"room", session.Name(), "error", err)
			if existing, found := s.registry.FindRoom(room.Key()); found {
				room = existing
			}
		}
	}
	s.JoinRoom(room, nickname, password, "")
}

// JoinRoomByName resolves a room name through the provider and joins it with
// the default identity. An unknown name surfaces one error alert.
func (s *MUCService) JoinRoomByName(name string, entry *runtime.ProviderEntry) {
	session, err := entry.Provider.FindRoom(name)
	if err != nil {
		s.log.Debug(fmt.Sprintf("An exception occurred while searching for room %s", name),
			"error", err)
	}
	if session == nil {
		s.alerter.ShowError(s.messages.ErrorTitle(),
			s.messages.RoomNotFound(name, entry.Provider.ID()))
		return
	}
	s.JoinRoomBySession(session, entry.Provider.ID(), "", domain.Secret{})
}

// LeaveRoom leaves the room's live session when it is joined. The offline
// status is persisted unconditionally, session or not: the user's choice to
// leave must survive to the next login even when the network call never ran,
// so the room is not auto-rejoined.
func (s *MUCService) LeaveRoom(room *domain.Room) {
	if room.Session == nil {
		s.alerter.ShowWarning(s.messages.WarningTitle(), s.messages.RoomLeaveNotConnected())
	} else if room.Session.IsJoined() {
		if err := room.Session.Leave(); err != nil {
			s.log.Warn("Failed to leave chat room", "room", room.Name, "error", err)
		}
	}

	if err := s.statuses.SaveStatus(room.Key(), domain.StatusOffline); err != nil {
		s.log.Warn("Failed to persist offline status", "room", room.Name, "error", err)
	}
	s.registry.SetStatus(room, domain.StatusOffline)
}

// AcceptInvitation joins the invitation's target room using the invited
// account's own identity as nickname.
func (s *MUCService) AcceptInvitation(invitation domain.Invitation) {
	entry, ok := s.registry.FindProvider(invitation.Provider)
	if !ok {
		s.log.Warn("Invitation from unknown provider", "provider", invitation.Provider)
		return
	}
	s.JoinRoomBySession(invitation.Session, invitation.Provider,
		entry.Provider.UserID(), invitation.Password)
}

func (s *MUCService) RejectInvitation(invitation domain.Invitation, reason string) {
	entry, ok := s.registry.FindProvider(invitation.Provider)
	if !ok {
		s.log.Warn("Invitation from unknown provider", "provider", invitation.Provider)
		return
	}
	if err := entry.Provider.RejectInvitation(invitation, reason); err != nil {
		s.log.Warn("Failed to reject invitation", "provider", invitation.Provider, "error", err)
	}
}

// RemoveRoom drops a room from the registry and forgets its stored secret.
// The persisted status is reset to offline so the room is never auto-joined
// if it comes back under the same identity.
func (s *MUCService) RemoveRoom(room *domain.Room) {
	s.registry.RemoveRoom(room)
	if err := s.credentials.Remove(room.Key()); err != nil {
		s.log.Warn("Failed to remove stored password", "room", room.Name, "error", err)
	}
	if err := s.statuses.SaveStatus(room.Key(), domain.StatusOffline); err != nil {
		s.log.Warn("Failed to reset room status", "room", room.Name, "error", err)
	}
}

// Synchronize refreshes the local room list against the provider's server.
// Providers without multi-user chat are skipped; listing failures are logged
// by the synchronizer and never interrupt the caller.
func (s *MUCService) Synchronize(provider domain.Provider) {
	if !provider.SupportsMultiUserChat() {
		s.log.Debug("Provider has no multi-user chat, skipping synchronize",
			"provider", provider.ID())
		return
	}
	s.synchronizer.Synchronize(provider)
}

// AddRoomListListener registers a listener for registry change events.
func (s *MUCService) AddRoomListListener(l contract.RoomListListener) {
	s.registry.AddListener(l)
}

func (s *MUCService) RemoveRoomListListener(l contract.RoomListListener) {
	s.registry.RemoveListener(l)
}
