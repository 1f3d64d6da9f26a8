// Package models holds the server-side domain types.
package models

// Credentials is the inbound request mapping for register and login.
// Key presence matters: an absent key is different from an empty value.
type Credentials map[string]string

// User is a stored user record. Password holds the bcrypt digest and must
// never leave the service layer; use Public to build a response.
type User struct {
	ID        string `json:"-"`
	Password  string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Location  string `json:"location"`
	Date      string `json:"date"`
}

// PublicUser is the projection of a User that is safe to return to callers.
type PublicUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Location  string `json:"location"`
	Date      string `json:"date"`
}

// Public builds a fresh projection of u without the id and password.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Location:  u.Location,
		Date:      u.Date,
	}
}
