package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"todo-service/internal/application/command"
	"todo-service/internal/application/interfaces"
	"todo-service/internal/domain/entities"
	"todo-service/internal/infrastructure"
)

const (
	loginSuccessURL = "/todo.html"
	loginFailureURL = "/login.html?error=true"
	logoutURL       = "/login.html"
)

type credentials struct {
	UserName string `json:"userName" form:"username"`
	Password string `json:"password" form:"password"`
}

// AuthHandler turns verified credentials into a session cookie or a bearer token.
type AuthHandler struct {
	authService  interfaces.AuthService
	sessions     infrastructure.SessionStore
	cookieName   string
	cookieSecure bool
	logger       zerolog.Logger
}

func NewAuthHandler(authService interfaces.AuthService, sessions infrastructure.SessionStore, cookieName string, cookieSecure bool, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessions:     sessions,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		logger:       logger.With().Str("component", "auth_handler").Logger(),
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	form := isFormRequest(c)

	var req credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.authService.LoginUser(c.Request().Context(), &command.LoginUserCommand{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		if form && errors.Is(err, entities.ErrAuthenticationFailed) {
			return c.Redirect(http.StatusFound, loginFailureURL)
		}
		return err
	}

	// a fresh id on every login, the old session is dropped
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
			h.logger.Warn().Err(err).Msg("drop previous session")
		}
	}

	sessionID, err := h.sessions.Create(c.Request().Context(), result.User.UserName)
	if err != nil {
		return err
	}
	c.SetCookie(h.sessionCookie(sessionID, int(h.sessions.TTL().Seconds())))

	if form {
		return c.Redirect(http.StatusFound, loginSuccessURL)
	}
	return c.JSON(http.StatusOK, map[string]string{"userName": result.User.UserName})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(h.sessionCookie("", -1))

	if isFormRequest(c) || acceptsHTML(c) {
		return c.Redirect(http.StatusFound, logoutURL)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.authService.IssueToken(c.Request().Context(), &command.LoginUserCommand{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token":     result.Token,
		"expiresAt": result.ExpiresAt,
	})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
