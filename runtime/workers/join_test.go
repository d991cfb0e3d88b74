package workers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"muc-lab/contract"
	"muc-lab/domain"
	"muc-lab/errors"
	"muc-lab/mocks"
	"muc-lab/ui"
)

type joinFixture struct {
	registry    *mocks.MockStatusSink
	statuses    *mocks.MockStatusStore
	credentials *mocks.MockCredentialStore
	prompt      *mocks.MockCredentialPrompt
	alerter     *mocks.MockAlerter
	catalog     *ui.EnglishCatalog
	requests    chan domain.JoinRequest
	worker      *JoinWorker
}

func newJoinFixture(ctrl *gomock.Controller) *joinFixture {
	f := &joinFixture{
		registry:    mocks.NewMockStatusSink(ctrl),
		statuses:    mocks.NewMockStatusStore(ctrl),
		credentials: mocks.NewMockCredentialStore(ctrl),
		prompt:      mocks.NewMockCredentialPrompt(ctrl),
		alerter:     mocks.NewMockAlerter(ctrl),
		catalog:     ui.NewEnglishCatalog(),
		requests:    make(chan domain.JoinRequest, 4),
	}
	f.worker = NewJoinWorker(f.requests, f.registry, f.statuses, f.credentials,
		f.prompt, f.alerter, f.catalog, slog.Default())
	return f
}

func newConnectedRoom(session domain.RoomSession) *domain.Room {
	return domain.NewRoom("lobby", "lobby", "jabber:alice", session)
}

func TestJoinWorker_Anonymous_Success_No_Popup_No_Prompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newJoinFixture(ctrl)

	session := mocks.NewMockRoomSession(ctrl)
	room := newConnectedRoom(session)

	// Given no stored secret and a session that accepts the nickname join
	f.credentials.EXPECT().Load(room.Key()).Return(domain.Secret{}, false, nil)
	session.EXPECT().JoinAs(gomock.Any(), "alice").Return(nil)

	// Then the handle turns online once and nothing else happens
	f.registry.EXPECT().SetStatus(room, domain.StatusOnline).Times(1)
	f.statuses.EXPECT().SaveStatus(room.Key(), domain.StatusOnline).Return(nil).Times(1)

	f.worker.attempt(context.Background(), domain.NewJoinRequest(room, "alice", domain.Secret{}, ""), true)
}

func TestJoinWorker_AuthFailure_Prompt_Retry_Saves_Password(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newJoinFixture(ctrl)

	session := mocks.NewMockRoomSession(ctrl)
	room := newConnectedRoom(session)
	secret := domain.SecretFromString("s3cr3t")

	// Given the first attempt fails authentication
	f.credentials.EXPECT().Load(room.Key()).Return(domain.Secret{}, false, nil)
	session.EXPECT().JoinAs(gomock.Any(), "alice").
		Return(errors.NewJoinError(domain.JoinAuthenticationFailed, room.Name, nil))

	// Then the stored secret is erased and the user is prompted without a
	// retry hint
	f.credentials.EXPECT().Remove(room.Key()).Return(nil)
	f.prompt.EXPECT().Prompt(room, false).
		Return(contract.PromptAnswer{Secret: secret, Remember: true}, true)

	// And exactly one retry runs with the entered password
	session.EXPECT().JoinWithPassword(gomock.Any(), "alice", secret).Return(nil)
	f.credentials.EXPECT().Save(room.Key(), secret).Return(nil)

	// Both terminal classifications mark the handle online
	f.registry.EXPECT().SetStatus(room, domain.StatusOnline).Times(2)
	f.statuses.EXPECT().SaveStatus(room.Key(), domain.StatusOnline).Return(nil).Times(2)

	f.worker.attempt(context.Background(), domain.NewJoinRequest(room, "alice", domain.Secret{}, ""), true)
}

func TestJoinWorker_AuthFailure_On_Retry_Never_Prompts_Twice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newJoinFixture(ctrl)

	session := mocks.NewMockRoomSession(ctrl)
	room := newConnectedRoom(session)
	secret := domain.SecretFromString("wrong")

	f.credentials.EXPECT().Load(room.Key()).Return(domain.Secret{}, false, nil)
	session.EXPECT().JoinAs(gomock.Any(), "alice").
		Return(errors.NewJoinError(domain.JoinAuthenticationFailed, room.Name, nil))

	// Given the prompt is accepted but the retry fails authentication too
	f.prompt.EXPECT().Prompt(room, false).
		Return(contract.PromptAnswer{Secret: secret}, true).Times(1)
	session.EXPECT().JoinWithPassword(gomock.Any(), "alice", secret).
		Return(errors.NewJoinError(domain.JoinAuthenticationFailed, room.Name, nil))

	// Then the secret is erased after each failure but no second prompt and
	// no third attempt follow
	f.credentials.EXPECT().Remove(room.Key()).Return(nil).Times(2)
	f.registry.EXPECT().SetStatus(room, domain.StatusOnline).Times(2)
	f.statuses.EXPECT().SaveStatus(room.Key(), domain.StatusOnline).Return(nil).Times(2)

	f.worker.attempt(context.Background(), domain.NewJoinRequest(room, "alice", domain.Secret{}, ""), true)
}

func TestJoinWorker_AuthFailure_Prompt_Canceled_Terminates_Silently(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newJoinFixture(ctrl)

	session := mocks.NewMockRoomSession(ctrl)
	room := newConnectedRoom(session)

	f.credentials.EXPECT().Load(room.Key()).Return(domain.Secret{}, false, nil)
	session.EXPECT().JoinAs(gomock.Any(), "alice").
		Return(errors.NewJoinError(domain.JoinAuthenticationFailed, room.Name, nil))
	f.credentials.EXPECT().Remove(room.Key()).Return(nil)

	// Given the user cancels the prompt
	f.prompt.EXPECT().Prompt(room, false).Return(contract.PromptAnswer{}, false)

	// Then no retry, no alert popup
	f.registry.EXPECT().SetStatus(room, domain.StatusOnline).Times(1)
	f.statuses.EXPECT().SaveStatus(room.Key(), domain.StatusOnline).Return(nil).Times(1)

	f.worker.attempt(context.Background(), domain.NewJoinRequest(room, "alice", domain.Secret{}, ""), true)
}

func TestJoinWorker_Classified_Failures_Raise_One_Alert(t *testing.T) {
	outcomes := []domain.JoinOutcome{
		domain.JoinRegistrationRequired,
		domain.JoinProviderOffline,
		domain.JoinSubscriptionExists,
		domain.JoinUnknownError,
	}

	for _, outcome := range outcomes {
		t.Run(outcome.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newJoinFixture(ctrl)

			session := mocks.NewMockRoomSession(ctrl)
			room := newConnectedRoom(session)

			f.credentials.EXPECT().Load(room.Key()).Return(domain.Secret{}, false, nil)
			session.EXPECT().JoinAs(gomock.Any(), "alice").
				Return(errors.NewJoinError(outcome, room.Name, nil))

			f.registry.EXPECT().SetStatus(room, domain.StatusOnline).Times(1)
			f.statuses.EXPECT().SaveStatus(room.Key(), domain.StatusOnline).Return(nil).Times(1)

			// Then exactly one popup with the classification's message
			f.alerter.EXPECT().ShowError(f.catalog.ErrorTitle(),
				f.catalog.JoinFailed(outcome, room.Name)).Times(1)

			f.worker.attempt(context.Background(), domain.NewJoinRequest(room, "alice", domain.Secret{}, ""), true)
		})
	}
}

func TestJoinWorker_Unclassified_Error_Is_UnknownError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newJoinFixture(ctrl)

	session := mocks.NewMockRoomSession(ctrl)
	room := newConnectedRoom(session)

	f.credentials.EXPECT().Load(room.Key()).Return(domain.Secret{}, false, nil)
	session.EXPECT().Join(gomock.Any()).Return(fmt.Errorf("connection reset"))

	f.registry.EXPECT().SetStatus(room, domain.StatusOnline).Times(1)
	f.statuses.EXPECT().SaveStatus(room.Key(), domain.StatusOnline).Return(nil).Times(1)
	f.alerter.EXPECT().ShowError(f.catalog.ErrorTitle(),
		f.catalog.JoinFailed(domain.JoinUnknownError, room.Name)).Times(1)

	f.worker.attempt(context.Background(), domain.NewJoinRequest(room, "", domain.Secret{}, ""), true)
}

func TestJoinWorker_Stored_Password_Feeds_Credential_Join(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newJoinFixture(ctrl)

	session := mocks.NewMockRoomSession(ctrl)
	room := newConnectedRoom(session)
	stored := domain.SecretFromString("remembered")

	// Given a remembered secret
	f.credentials.EXPECT().Load(room.Key()).Return(stored, true, nil)
	session.EXPECT().JoinWithPassword(gomock.Any(), "alice", stored).Return(nil)

	f.registry.EXPECT().SetStatus(room, domain.StatusOnline).Times(1)
	f.statuses.EXPECT().SaveStatus(room.Key(), domain.StatusOnline).Return(nil).Times(1)

	// Then no save happens: the request did not ask to remember
	f.worker.attempt(context.Background(), domain.NewJoinRequest(room, "alice", domain.Secret{}, ""), true)
}

func TestJoinWorker_Subject_Failure_Is_Nonfatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newJoinFixture(ctrl)

	session := mocks.NewMockRoomSession(ctrl)
	room := newConnectedRoom(session)

	f.credentials.EXPECT().Load(room.Key()).Return(domain.Secret{}, false, nil)
	session.EXPECT().JoinAs(gomock.Any(), "alice").Return(nil)
	session.EXPECT().SetSubject("welcome").Return(fmt.Errorf("not allowed"))

	f.registry.EXPECT().SetStatus(room, domain.StatusOnline).Times(1)
	f.statuses.EXPECT().SaveStatus(room.Key(), domain.StatusOnline).Return(nil).Times(1)

	// Then the failure is only logged, never surfaced
	f.worker.attempt(context.Background(), domain.NewJoinRequest(room, "alice", domain.Secret{}, "welcome"), true)
}

func TestJoinWorker_Run_Consumes_Requests_Until_Channel_Closes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newJoinFixture(ctrl)

	session := mocks.NewMockRoomSession(ctrl)
	room := newConnectedRoom(session)

	f.credentials.EXPECT().Load(room.Key()).Return(domain.Secret{}, false, nil)
	session.EXPECT().Join(gomock.Any()).Return(nil)
	f.registry.EXPECT().SetStatus(room, domain.StatusOnline).Times(1)
	f.statuses.EXPECT().SaveStatus(room.Key(), domain.StatusOnline).Return(nil).Times(1)

	f.requests <- domain.NewJoinRequest(room, "", domain.Secret{}, "")
	close(f.requests)

	done := make(chan error, 1)
	go func() {
		done <- f.worker.Run(context.Background())
	}()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(500 * time.Millisecond):
		req.Fail("Worker should have stopped after channel close")
	}
}

func TestJoinWorker_Run_Stops_On_Context_Cancel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newJoinFixture(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req.ErrorIs(f.worker.Run(ctx), context.Canceled)
}
