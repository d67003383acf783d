// Package models defines the data types shared by the qtask client:
// session credentials and tokens, the editable user profile, and the
// directory entries returned by the listing endpoint.
package models

// Credentials is the email/password pair supplied to a login attempt.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair holds the access/refresh token strings proving an authenticated
// session. Both values are present or the pair is treated as absent.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// UserProfile is the profile of the logged-in user. Field names in JSON
// match the persisted localStorage format of the original web client.
type UserProfile struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	JobTitle          string `json:"jobTitle"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	Address           string `json:"address"`
	WorkingHours      string `json:"workingHours"`
}
