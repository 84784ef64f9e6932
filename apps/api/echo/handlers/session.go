package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/apnapan/pulse/apps/api/echo/helpers"
	"github.com/apnapan/pulse/core"
	"github.com/apnapan/pulse/core/session"
)

type sessionApi struct {
	sessions *SessionStore
}

func RegisterSessionAPI(g *echo.Group, jwt echo.MiddlewareFunc, sessions *SessionStore) {
	api := sessionApi{sessions: sessions}

	sg := g.Group("/session", jwt)
	sg.GET("", api.sessionRetrieve)
	sg.POST("/navigate", api.sessionNavigate)
}

// Handlers

func (api *sessionApi) sessionRetrieve(ctx echo.Context) error {
	schoolID, err := helpers.GetContextSchoolID(ctx)
	if err != nil {
		return err
	}
	st := api.sessions.Get(schoolID)
	return ctx.JSON(http.StatusOK, SessionResponse{
		State:      st.Session.State,
		HasDataset: st.Dataset != nil,
	})
}

func (api *sessionApi) sessionNavigate(ctx echo.Context) error {
	schoolID, err := helpers.GetContextSchoolID(ctx)
	if err != nil {
		return err
	}

	data := new(NavigateRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	st := api.sessions.Get(schoolID)
	if err := st.Session.Trigger(session.Event(data.Event)); err != nil {
		return err
	}
	// logging out forgets the uploaded dataset
	if st.Session.State == session.Login {
		st = api.sessions.Reset(schoolID)
	}

	return ctx.JSON(http.StatusOK, SessionResponse{
		State:      st.Session.State,
		HasDataset: st.Dataset != nil,
	})
}

type (
	NavigateRequest struct {
		Event string `json:"event" validate:"required"`
	}

	SessionResponse struct {
		State      session.State `json:"state"`
		HasDataset bool          `json:"has_dataset"`
	}
)

func (nr *NavigateRequest) Validate() error {
	nr.Event = core.CleanString(nr.Event, true /* lower */)
	return core.Validate.Struct(nr)
}
