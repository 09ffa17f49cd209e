package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/sokochat/sokochat/pkg/services"
)

const requestIDHeader = "X-Request-ID"

// requestID accepts the caller's X-Request-ID or generates one, echoes it
// back, and attaches request metadata to the context so audit entries
// written by the service layer carry it.
func requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			c.Set(ctxRequestID, id)
			c.Response().Header().Set(requestIDHeader, id)

			req := c.Request()
			ctx := services.WithRequestMeta(req.Context(), services.RequestMeta{
				RequestID: id,
				IP:        c.RealIP(),
				UserAgent: req.UserAgent(),
			})
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

// requestLogger logs one line per request after it completes.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)

			req := c.Request()
			status := 0
			if res, resErr := echo.UnwrapResponse(c.Response()); resErr == nil {
				status = res.Status
			}
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", requestIDFrom(c),
			}
			if err != nil {
				attrs = append(attrs, "error", err)
				slog.Warn("request failed", attrs...)
				return err
			}
			slog.Info("request", attrs...)
			return nil
		}
	}
}

// recovery converts handler panics into 500 responses instead of killing the
// connection.
func recovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("handler panic", "panic", r, "path", c.Request().URL.Path)
					err = newAPIError(http.StatusInternalServerError, CodeInternal, "internal server error")
				}
			}()
			return next(c)
		}
	}
}

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// cors allows the platform-wide origins. Tenant-specific allowed_origins are
// applied by the tenant-context middleware once the tenant is resolved.
func (s *Server) cors() echo.MiddlewareFunc {
	allowed := make(map[string]bool)
	if s.cfg != nil && s.cfg.System != nil {
		for _, origin := range s.cfg.System.AllowedOrigins {
			allowed[origin] = true
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			origin := c.Request().Header.Get("Origin")
			if origin != "" && allowed[origin] {
				allowOrigin(c, origin)
			}
			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}

func allowOrigin(c *echo.Context, origin string) {
	h := c.Response().Header()
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Vary", "Origin")
	h.Set("Access-Control-Allow-Headers",
		"Authorization, Content-Type, X-Request-ID, X-Tenant-ID, X-Tenant-API-Key")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
}
