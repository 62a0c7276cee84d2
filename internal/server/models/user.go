// Package models holds the persisted entities of the accounts service and
// their API-facing projections.
package models

import "time"

// User is the persisted account record. Nullable profile columns are
// pointers; nil means the column is NULL. PasswordHash never leaves the
// service through the API projection.
type User struct {
	ID                string
	Username          string
	Email             string
	PasswordHash      string
	GivenName         *string
	FamilyName        *string
	AvatarURL         *string
	AddressLine1      *string
	AddressLine2      *string
	AddressCity       *string
	AddressState      *string
	AddressPostalCode *string
	AddressCountry    *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// APIAddress is the postal address block of the public projection.
type APIAddress struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// APIProfile is the optional profile block of the public projection.
type APIProfile struct {
	GivenName  string      `json:"givenName,omitempty"`
	FamilyName string      `json:"familyName,omitempty"`
	AvatarURL  string      `json:"avatarUrl,omitempty"`
	Address    *APIAddress `json:"address,omitempty"`
}

// APIUser is the public projection of a User: everything a client may see.
// The credential hash is deliberately not representable here.
type APIUser struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Profile   *APIProfile `json:"profile,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// API maps the persisted record to its public projection. Profile is present
// only when at least one profile field is set; the address block is present
// only when at least one address field is set.
func (u *User) API() *APIUser {
	profile := &APIProfile{
		GivenName:  deref(u.GivenName),
		FamilyName: deref(u.FamilyName),
		AvatarURL:  deref(u.AvatarURL),
	}

	address := &APIAddress{
		Line1:      deref(u.AddressLine1),
		Line2:      deref(u.AddressLine2),
		City:       deref(u.AddressCity),
		State:      deref(u.AddressState),
		PostalCode: deref(u.AddressPostalCode),
		Country:    deref(u.AddressCountry),
	}
	if *address != (APIAddress{}) {
		profile.Address = address
	}

	api := &APIUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if profile.GivenName != "" || profile.FamilyName != "" || profile.AvatarURL != "" || profile.Address != nil {
		api.Profile = profile
	}

	return api
}

// UserUpdate describes a partial update. A nil pointer keeps the current
// value; a pointer to the empty string clears the column.
type UserUpdate struct {
	Username          *string
	Email             *string
	GivenName         *string
	FamilyName        *string
	AvatarURL         *string
	AddressLine1      *string
	AddressLine2      *string
	AddressCity       *string
	AddressState      *string
	AddressPostalCode *string
	AddressCountry    *string
}

// Apply merges the update into the user in place. Username and email are
// identity fields: empty strings are treated as absent, never cleared.
// Profile columns set to the empty string become NULL.
func (u *User) Apply(upd UserUpdate) {
	if upd.Username != nil && *upd.Username != "" {
		u.Username = *upd.Username
	}
	if upd.Email != nil && *upd.Email != "" {
		u.Email = *upd.Email
	}
	applyNullable(&u.GivenName, upd.GivenName)
	applyNullable(&u.FamilyName, upd.FamilyName)
	applyNullable(&u.AvatarURL, upd.AvatarURL)
	applyNullable(&u.AddressLine1, upd.AddressLine1)
	applyNullable(&u.AddressLine2, upd.AddressLine2)
	applyNullable(&u.AddressCity, upd.AddressCity)
	applyNullable(&u.AddressState, upd.AddressState)
	applyNullable(&u.AddressPostalCode, upd.AddressPostalCode)
	applyNullable(&u.AddressCountry, upd.AddressCountry)
}

func applyNullable(dst **string, src *string) {
	if src == nil {
		return
	}
	if *src == "" {
		*dst = nil
		return
	}
	v := *src
	*dst = &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
