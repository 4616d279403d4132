package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"todo-service/internal/infrastructure"
)

const principalKey = "principal"

// TokenParser resolves a bearer token to the user name it was issued for.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// PrincipalFrom returns the authenticated user name, or "" on public routes without one.
func PrincipalFrom(c echo.Context) string {
	principal, _ := c.Get(principalKey).(string)
	return principal
}

// Authenticate resolves the principal from a bearer token or the session cookie and
// rejects requests to non-public paths that have none. The principal never comes from
// the request body or path. Public paths are served without a principal when the session
// store fails.
func Authenticate(policy *RoutePolicy, sessions infrastructure.SessionStore, tokens TokenParser, cookieName string, logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			public := policy.PolicyFor(c.Request().URL.Path) == PolicyPublic

			principal, err := resolvePrincipal(c, sessions, tokens, cookieName)
			if err != nil {
				if !public {
					return err
				}
				logger.Debug().Err(err).Str("path", c.Request().URL.Path).Msg("session lookup failed")
				principal = ""
			}
			if principal != "" {
				c.Set(principalKey, principal)
				return next(c)
			}
			if public {
				return next(c)
			}

			if acceptsHTML(c) {
				return c.Redirect(http.StatusFound, "/login.html")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "authorization required")
		}
	}
}

func resolvePrincipal(c echo.Context, sessions infrastructure.SessionStore, tokens TokenParser, cookieName string) (string, error) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return "", nil
		}
		userName, err := tokens.ParseToken(token)
		if err != nil {
			return "", nil
		}
		return userName, nil
	}

	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return "", nil
	}
	userName, err := sessions.Get(c.Request().Context(), cookie.Value)
	if err != nil {
		return "", err
	}
	return userName, nil
}

// RequestLogger logs one line per finished request.
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := logger.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				event = logger.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("route", v.RoutePath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("principal", PrincipalFrom(c)).
				Msg("request")
			return nil
		},
	})
}

func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// AuthRateLimiter limits public credential endpoints per client IP.
func AuthRateLimiter(rps float64, burst int) echo.MiddlewareFunc {
	deny := func(c echo.Context, identifier string, err error) error {
		return c.JSON(http.StatusTooManyRequests, errorResponse(http.StatusTooManyRequests, "rate limit exceeded"))
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(rps),
				Burst:     burst,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, errorResponse(http.StatusForbidden, "unable to identify client"))
		},
		DenyHandler: deny,
	})
}
