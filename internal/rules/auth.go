package rules

import "unicode/utf8"

const (
	RoleAdmin   = "Admin"
	RoleUser    = "User"
	RoleInvalid = "Invalid"
)

// Authenticator classifies a login attempt. The admin credential is
// injected; everyone else only has to meet the length minimums.
type Authenticator struct {
	adminUsername string
	adminPassword string
}

func NewAuthenticator(adminUsername, adminPassword string) *Authenticator {
	return &Authenticator{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

func DefaultAuthenticator() *Authenticator {
	return NewAuthenticator("admin", "admin123")
}

func (a *Authenticator) AuthenticateUser(username, password string) string {
	switch {
	case username == a.adminUsername && password == a.adminPassword:
		return RoleAdmin
	case utf8.RuneCountInString(username) >= 5 && utf8.RuneCountInString(password) >= 8:
		return RoleUser
	default:
		return RoleInvalid
	}
}
