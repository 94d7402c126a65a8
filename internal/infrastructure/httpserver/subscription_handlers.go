package httpserver

import (
	"net/http"

	"github.com/futureblog/newsletter/internal/core/domain/subscriber"
	"github.com/labstack/echo/v4"
)

// subscribe handles POST /subscriptions. It accepts a form-encoded body
// with name and email and registers a pending subscriber. Responses carry
// no body beyond the status code; diagnostics go to the log only.
func (s *Server) subscribe(c echo.Context) error {
	var req subscriber.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "name and email are required")
	}

	if _, err := s.subscriptionSvc.RegisterSubscriber(c.Request().Context(), &req); err != nil {
		return echo.NewHTTPError(httpStatusFor(err))
	}

	return c.NoContent(http.StatusOK)
}

// confirm handles GET /subscriptions/confirm. A missing token parameter is
// a client error; an unknown token is reported as unauthorized rather than
// not-found so probing clients cannot enumerate tokens.
func (s *Server) confirm(c echo.Context) error {
	token := c.QueryParam("subscription_token")
	if token == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "subscription_token is required")
	}

	if err := s.subscriptionSvc.ConfirmSubscription(c.Request().Context(), token); err != nil {
		return echo.NewHTTPError(httpStatusFor(err))
	}

	return c.NoContent(http.StatusOK)
}
