package session

import "fmt"

// State is one page of the navigation flow. The original flow was driven by
// ambient mutable flags; here it is an explicit finite-state machine so that
// every legal transition is named and everything else is rejected.
type State string

const (
	Login               State = "login"
	CreateAccount       State = "create_account"
	ForgotPasswordStep1 State = "forgot_password_step1"
	ForgotPasswordStep2 State = "forgot_password_step2"
	Landing             State = "landing"
	Main                State = "main"
)

// Event is a named transition triggered by a user action.
type Event string

const (
	GoToCreateAccount  Event = "go_to_create_account"
	AccountCreated     Event = "account_created"
	LoggedIn           Event = "logged_in"
	GoToForgotPassword Event = "go_to_forgot_password"
	ResetVerified      Event = "reset_verified"
	PasswordUpdated    Event = "password_updated"
	StartExploring     Event = "start_exploring"
	BackToLanding      Event = "back_to_landing"
	BackToLogin        Event = "back_to_login"
	LoggedOut          Event = "logged_out"
)

var transitions = map[State]map[Event]State{
	Login: {
		GoToCreateAccount:  CreateAccount,
		GoToForgotPassword: ForgotPasswordStep1,
		LoggedIn:           Landing,
	},
	CreateAccount: {
		AccountCreated: Login,
		BackToLogin:    Login,
	},
	ForgotPasswordStep1: {
		ResetVerified: ForgotPasswordStep2,
		BackToLogin:   Login,
	},
	ForgotPasswordStep2: {
		PasswordUpdated: Login,
		BackToLogin:     Login,
	},
	Landing: {
		StartExploring: Main,
		LoggedOut:      Login,
	},
	Main: {
		BackToLanding: Landing,
		LoggedOut:     Login,
	},
}

type InvalidTransitionError struct {
	From  State
	Event Event
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %q from state %q", e.Event, e.From)
}

// Session is the explicit context object passed to each screen handler. It
// carries the current page state and the school ID pending a password reset;
// it is private to one user and never shared.
type Session struct {
	State         State
	ResetSchoolID string
}

func New() *Session {
	return &Session{State: Login}
}

// Trigger applies the named transition or returns InvalidTransitionError. Any
// transition that leaves the forgot-password flow clears the pending reset ID.
func (s *Session) Trigger(event Event) error {
	next, ok := transitions[s.State][event]
	if !ok {
		return InvalidTransitionError{From: s.State, Event: event}
	}
	if next != ForgotPasswordStep2 && s.ResetSchoolID != "" {
		s.ResetSchoolID = ""
	}
	s.State = next
	return nil
}

// Can reports whether event is a legal transition from the current state.
func (s *Session) Can(event Event) bool {
	_, ok := transitions[s.State][event]
	return ok
}
