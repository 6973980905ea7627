package session

import "github.com/dmitrijs2005/harifurniture/internal/client/models"

// State is a snapshot of the session. User is a private copy.
type State struct {
	User                *models.UserProfile
	IsLoading           bool
	LoginModalVisible   bool
	ProfileModalVisible bool

	// PhoneEntryPending is set when the login exchange reported a profile
	// without a phone number; the login modal stays open until it is given.
	PhoneEntryPending bool
}

func (s State) SignedIn() bool { return s.User != nil }
