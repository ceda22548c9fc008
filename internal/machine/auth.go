package machine

import "github.com/luckyComet55/whitebox-sim/internal/fsm"

const (
	AuthLoggedOut fsm.State = "Logged Out"
	AuthLoggedIn  fsm.State = "Logged In"

	EventLogin  fsm.Event = "login"
	EventLogout fsm.Event = "logout"
)

type UserAuthentication struct {
	*machine
}

func NewUserAuthentication() *UserAuthentication {
	f := fsm.NewFSM(AuthLoggedOut).
		Transition(AuthLoggedOut, EventLogin, AuthLoggedIn).
		Transition(AuthLoggedIn, EventLogout, AuthLoggedOut)

	m := newMachine("auth", f, invalidOperation).
		message(EventLogin, "Login successful").
		message(EventLogout, "Logout successful")

	return &UserAuthentication{m}
}

func NewUserAuthenticationAt(state fsm.State) (*UserAuthentication, error) {
	ua := NewUserAuthentication()
	if err := ua.restore(state); err != nil {
		return nil, err
	}
	return ua, nil
}

func (ua *UserAuthentication) Login() string {
	return ua.fire(EventLogin)
}

func (ua *UserAuthentication) Logout() string {
	return ua.fire(EventLogout)
}
