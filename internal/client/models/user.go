package models

import "encoding/json"

// UserProfile is the client's cached copy of the signed-in customer. The
// identity itself is owned by the external identity provider.
type UserProfile struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	PictureURL string `json:"picture,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// UnmarshalJSON accepts both "id" and Mongo-style "_id".
func (u *UserProfile) UnmarshalJSON(b []byte) error {
	type plain UserProfile
	var raw struct {
		plain
		MongoID ID `json:"_id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*u = UserProfile(raw.plain)
	if u.ID == "" {
		u.ID = raw.MongoID
	}
	return nil
}

// Clone returns a copy so that callers cannot mutate shared state.
func (u *UserProfile) Clone() *UserProfile {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// LoginResponse is returned by the external-credential exchange.
type LoginResponse struct {
	Token      string      `json:"token"`
	User       UserProfile `json:"user"`
	NeedsPhone bool        `json:"needsPhone,omitempty"`
}

// ProfileUpdate is the body of PUT /user-auth/update-profile.
type ProfileUpdate struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
