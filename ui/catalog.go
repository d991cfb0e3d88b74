package ui

import (
	"fmt"

	"muc-lab/contract"
	"muc-lab/domain"
)

var _ contract.Messages = (*EnglishCatalog)(nil)

// EnglishCatalog is the default message catalog. Localized catalogs implement
// contract.Messages and are injected in its place.
type EnglishCatalog struct{}

func NewEnglishCatalog() *EnglishCatalog {
	return &EnglishCatalog{}
}

func (EnglishCatalog) ErrorTitle() string {
	return "Error"
}

func (EnglishCatalog) WarningTitle() string {
	return "Warning"
}

func (EnglishCatalog) RoomNotConnected(roomName string) string {
	return fmt.Sprintf("The chat room %s is not connected.", roomName)
}

func (EnglishCatalog) RoomLeaveNotConnected() string {
	return "You cannot leave a chat room that is not connected."
}

func (EnglishCatalog) RoomNotFound(roomName string, provider domain.ProviderID) string {
	return fmt.Sprintf("The chat room %s does not exist on server %s.", roomName, provider)
}

func (EnglishCatalog) CreateRoomFailed(provider domain.ProviderID) string {
	return fmt.Sprintf("Failed to create a chat room through account %s.", provider)
}

func (EnglishCatalog) JoinFailed(outcome domain.JoinOutcome, roomName string) string {
	switch outcome {
	case domain.JoinRegistrationRequired:
		return fmt.Sprintf("You need to be registered to join the chat room %s.", roomName)
	case domain.JoinProviderOffline:
		return fmt.Sprintf("The chat room %s is not connected.", roomName)
	case domain.JoinSubscriptionExists:
		return fmt.Sprintf("You have already joined the chat room %s.", roomName)
	default:
		return fmt.Sprintf("Failed to join the chat room %s.", roomName)
	}
}
