package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcastros/clothing_store/internal/logging"
	"github.com/mcastros/clothing_store/internal/service"
	"github.com/mcastros/clothing_store/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

func (h *UserHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.register")

	var req transport.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := h.Svc.Register(ctx, req.Username, req.Password, req.Role)
	if err != nil {
		return httpError(err)
	}

	l.Info("register_successful", "username", req.Username)
	return c.JSON(http.StatusCreated, transport.TokenResponse{
		Message:     "User registered successfully.",
		AccessToken: token,
	})
}

func (h *UserHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.login")

	var req transport.LoginUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	l.Info("login_successful", "username", req.Username)
	return c.JSON(http.StatusOK, transport.TokenResponse{
		Message:     "User logged in successfully.",
		AccessToken: token,
	})
}

func (h *UserHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update")

	var req transport.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Update(ctx, req.Username, req.NewPassword, req.NewRole); err != nil {
		return httpError(err)
	}

	l.Info("update_successful", "username", req.Username)
	return c.JSON(http.StatusOK, transport.MessageResponse{
		Message: "User " + req.Username + " updated successfully.",
	})
}
