package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/apnapan/pulse/core/feedback"
)

type feedbackApi struct {
	service *feedback.Service
}

func RegisterFeedbackAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *feedback.Service) {
	api := feedbackApi{service: svc}

	g.POST("/feedback", api.feedbackSubmit, jwt)
}

func (api *feedbackApi) feedbackSubmit(ctx echo.Context) error {
	data := new(feedback.NewEntry)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	entry, err := api.service.Submit(*data)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, FeedbackResponse{
		Message: "Thank you for your feedback!",
		Entry:   entry,
	})
}

type FeedbackResponse struct {
	Message string         `json:"message"`
	Entry   feedback.Entry `json:"entry"`
}
