package models

import "encoding/json"

type UserLogin struct {
	UUID string `json:"uuid"`
}

type UserName struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

type Street struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Postcode is a string in most locales but a bare number in some,
// so it accepts both JSON forms.
type Postcode string

func (p *Postcode) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Postcode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*p = Postcode(n.String())
	return nil
}

type UserLocation struct {
	Street   Street   `json:"street"`
	City     string   `json:"city"`
	State    string   `json:"state"`
	Country  string   `json:"country"`
	Postcode Postcode `json:"postcode"`
}

type UserPicture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Thumbnail string `json:"thumbnail"`
}

// User is one directory entry from the listing endpoint. Entries are value
// data: fetched in one batch, immutable afterwards, replaced wholesale on
// refresh.
type User struct {
	Login    UserLogin    `json:"login"`
	Name     UserName     `json:"name"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	Cell     string       `json:"cell"`
	Location UserLocation `json:"location"`
	Picture  UserPicture  `json:"picture"`
	Nat      string       `json:"nat"`
}

// FullName joins first and last name the way the directory search matches
// against them.
func (u *User) FullName() string {
	return u.Name.First + " " + u.Name.Last
}

// ListingInfo is the metadata block of a listing response.
type ListingInfo struct {
	Seed    string `json:"seed"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	Version string `json:"version"`
}

// ListingResponse is the envelope returned by GET /?results=n.
type ListingResponse struct {
	Results []User      `json:"results"`
	Info    ListingInfo `json:"info"`
}
