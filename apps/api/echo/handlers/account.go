package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/apnapan/pulse/apps/api/echo/helpers"
	"github.com/apnapan/pulse/core"
	"github.com/apnapan/pulse/core/account"
	"github.com/apnapan/pulse/core/session"
)

type accountApi struct {
	service  *account.Service
	sessions *SessionStore
}

func RegisterAccountAPI(g *echo.Group, svc *account.Service, sessions *SessionStore) {
	api := accountApi{service: svc, sessions: sessions}

	ag := g.Group("/accounts")
	ag.POST("/register", api.accountRegister)
	ag.POST("/login", api.accountLogin)
	ag.POST("/password-reset", api.accountResetPassword)
	ag.POST("/password-reset-confirm", api.accountConfirmPasswordReset)
}

// Handlers

func (api *accountApi) accountRegister(ctx echo.Context) error {
	data := new(account.NewAccount)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	acct, err := api.service.Register(*data)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{
		Message: "Account created successfully! Please log in.",
		Account: acct,
	})
}

func (api *accountApi) accountLogin(ctx echo.Context) error {
	data := new(LoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	acct, err := api.service.Authenticate(data.SchoolID, data.Password)
	if err != nil {
		return err
	}
	token, err := helpers.GenerateToken(helpers.GetAccountClaims(acct))
	if err != nil {
		return err
	}

	// a login starts the navigation over from scratch
	st := api.sessions.Reset(acct.SchoolID)
	if err := st.Session.Trigger(session.LoggedIn); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		Message: "Login successful!",
		State:   st.Session.State,
	})
}

func (api *accountApi) accountResetPassword(ctx echo.Context) error {
	data := new(account.ResetRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	acct, err := api.service.VerifyReset(data.SchoolID, data.Email)
	if err != nil {
		return err
	}

	// walk the forgot-password flow up to the new-password page and remember
	// which school ID was verified
	st := api.sessions.Reset(acct.SchoolID)
	if err := st.Session.Trigger(session.GoToForgotPassword); err != nil {
		return err
	}
	if err := st.Session.Trigger(session.ResetVerified); err != nil {
		return err
	}
	st.Session.ResetSchoolID = acct.SchoolID

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: "Verification successful. Please set your new password.",
		State:   st.Session.State,
	})
}

func (api *accountApi) accountConfirmPasswordReset(ctx echo.Context) error {
	data := new(account.ResetConfirm)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	// step 2 is only reachable after step 1 verified this school ID
	st := api.sessions.Get(data.SchoolID)
	if st.Session.State != session.ForgotPasswordStep2 || st.Session.ResetSchoolID != data.SchoolID {
		return session.InvalidTransitionError{From: st.Session.State, Event: session.PasswordUpdated}
	}

	if _, err := api.service.SetNewPassword(data.SchoolID, data.Password); err != nil {
		return err
	}
	if err := st.Session.Trigger(session.PasswordUpdated); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: "Password has been updated successfully!",
		State:   st.Session.State,
	})
}

type (
	LoginRequest struct {
		SchoolID string `json:"school_id" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token   string        `json:"token"`
		Message string        `json:"message"`
		State   session.State `json:"state"`
	}

	RegisterResponse struct {
		Message string          `json:"message"`
		Account account.Account `json:"account"`
	}

	MessageResponse struct {
		Message string        `json:"message"`
		State   session.State `json:"state,omitempty"`
	}
)

func (lr *LoginRequest) Validate() error {
	lr.SchoolID = core.CleanString(lr.SchoolID)
	return core.Validate.Struct(lr)
}
