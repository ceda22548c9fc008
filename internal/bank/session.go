package bank

import (
	"fmt"
	"time"

	"github.com/luckyComet55/whitebox-sim/internal/fsm"
)

const (
	SessionLoggedOut fsm.State = "Logged Out"
	SessionLoggedIn  fsm.State = "Logged In"

	eventAuthenticate fsm.Event = "authenticate"
	eventLogout       fsm.Event = "logout"

	metaPassword = "password"
	dataSince    = "since"
)

// sessionRepository keeps one session machine per account, each a copy of
// the same prototype.
type sessionRepository struct {
	sessions    map[string]*fsm.FSM
	fsmOriginal *fsm.FSM
}

func newSessionRepository(now func() time.Time) *sessionRepository {
	proto := fsm.NewFSM(SessionLoggedOut).
		TransitionWhen(SessionLoggedOut, eventAuthenticate, SessionLoggedIn, passwordMatches).
		Transition(SessionLoggedIn, eventLogout, SessionLoggedOut).
		OnEnter(SessionLoggedIn, func(ctx *fsm.FSMContext) error {
			ctx.Data[dataSince] = now()
			return nil
		}).
		OnExit(SessionLoggedIn, func(ctx *fsm.FSMContext) error {
			delete(ctx.Data, dataSince)
			return nil
		})

	return &sessionRepository{
		sessions:    make(map[string]*fsm.FSM),
		fsmOriginal: proto,
	}
}

func passwordMatches(ctx *fsm.FSMContext) bool {
	given, ok := ctx.Input.(string)
	return ok && given == ctx.Meta[metaPassword]
}

func (sr *sessionRepository) add(username, password string) error {
	if _, ok := sr.sessions[username]; ok {
		return fmt.Errorf("session for %q already exists", username)
	}

	s := sr.fsmOriginal.Copy()
	s.Context().Meta[metaPassword] = password
	sr.sessions[username] = s
	return nil
}

func (sr *sessionRepository) state(username string) (fsm.State, bool) {
	s, ok := sr.sessions[username]
	if !ok {
		return "", false
	}
	return s.Current(), true
}

func (sr *sessionRepository) since(username string) (time.Time, bool) {
	s, ok := sr.sessions[username]
	if !ok {
		return time.Time{}, false
	}
	t, ok := s.Context().Data[dataSince].(time.Time)
	return t, ok
}

func (sr *sessionRepository) trigger(username string, event fsm.Event, input ...any) error {
	s, ok := sr.sessions[username]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, username)
	}
	return s.Trigger(event, input...)
}
