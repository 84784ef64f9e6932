package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_loginFlow(t *testing.T) {
	s := New()
	assert.Equal(t, Login, s.State)

	require.NoError(t, s.Trigger(LoggedIn))
	assert.Equal(t, Landing, s.State)

	require.NoError(t, s.Trigger(StartExploring))
	assert.Equal(t, Main, s.State)

	require.NoError(t, s.Trigger(BackToLanding))
	assert.Equal(t, Landing, s.State)

	require.NoError(t, s.Trigger(LoggedOut))
	assert.Equal(t, Login, s.State)
}

func TestSession_createAccountFlow(t *testing.T) {
	s := New()

	require.NoError(t, s.Trigger(GoToCreateAccount))
	assert.Equal(t, CreateAccount, s.State)

	require.NoError(t, s.Trigger(AccountCreated))
	assert.Equal(t, Login, s.State)
}

func TestSession_forgotPasswordFlow(t *testing.T) {
	s := New()

	require.NoError(t, s.Trigger(GoToForgotPassword))
	assert.Equal(t, ForgotPasswordStep1, s.State)

	require.NoError(t, s.Trigger(ResetVerified))
	assert.Equal(t, ForgotPasswordStep2, s.State)
	s.ResetSchoolID = "S100"

	require.NoError(t, s.Trigger(PasswordUpdated))
	assert.Equal(t, Login, s.State)
	assert.Empty(t, s.ResetSchoolID, "leaving the reset flow clears the pending school ID")
}

func TestSession_abandonedResetClearsPendingID(t *testing.T) {
	s := &Session{State: ForgotPasswordStep2, ResetSchoolID: "S100"}

	require.NoError(t, s.Trigger(BackToLogin))
	assert.Empty(t, s.ResetSchoolID)
}

func TestSession_invalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		state State
		event Event
	}{
		{"cannot explore before login", Login, StartExploring},
		{"cannot skip reset verification", ForgotPasswordStep1, PasswordUpdated},
		{"cannot re-login from main", Main, LoggedIn},
		{"cannot create account while logged in", Landing, GoToCreateAccount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{State: tt.state}
			err := s.Trigger(tt.event)

			var terr InvalidTransitionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, tt.state, terr.From)
			assert.Equal(t, tt.event, terr.Event)
			assert.Equal(t, tt.state, s.State, "a rejected event must not move the state")
			assert.False(t, s.Can(tt.event))
		})
	}
}
