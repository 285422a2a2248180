package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func (s *Server) registerRoutes() {
	s.echo.Use(s.requestLoggerMiddleware())
	s.echo.Use(middleware.Recover())

	s.echo.GET("/healthz", s.handleHealth)
	s.echo.GET("/api/values", s.handleValues)

	s.echo.POST("/api/register", s.handleRegister)
	s.echo.POST("/api/login", s.handleLogin)

	authed := s.echo.Group("/api", s.authMiddleware)
	authed.POST("/entries", s.handleCreateEntry)
	authed.GET("/entries", s.handleListEntries)
	authed.GET("/dashboard", s.handleDashboard)
}

func (s *Server) requestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// metadata only, never payloads
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("dur", v.Latency),
				zap.String("remote", v.RemoteIP),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			s.log.Info("http", fields...)
			return nil
		},
	})
}
