package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
	"github.com/rocketscienceinc/tresenraya-backend/internal/presenter"
)

const shutdownTimeout = 5 * time.Second

type gameManager interface {
	GetOrCreateMatch(ctx context.Context, sessionID string) (*entity.Match, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Match, error)
	ResetRound(ctx context.Context, sessionID string) (*entity.Match, error)
	ResetScores(ctx context.Context, sessionID string) (*entity.Match, error)
}

type visitCounter interface {
	Visit(ctx context.Context) int64
}

type Server struct {
	logger    *slog.Logger
	echo      *echo.Echo
	games     gameManager
	visits    visitCounter
	presenter *presenter.Presenter
}

func New(logger *slog.Logger, games gameManager, visits visitCounter, presenter *presenter.Presenter) *Server {
	server := &Server{
		logger:    logger.With("component", "rest"),
		echo:      echo.New(),
		games:     games,
		visits:    visits,
		presenter: presenter,
	}

	server.echo.HideBanner = true
	server.echo.HidePort = true

	server.echo.Use(middleware.Recover())
	server.echo.Use(server.requestLogger())

	server.echo.GET("/ping", pingHandler)

	api := server.echo.Group("/api")
	api.GET("/players", server.handlePlayers)
	api.GET("/game", server.handleGetGame)
	api.POST("/game/turn", server.handleTurn)
	api.POST("/game/reset", server.handleReset)
	api.GET("/visits", server.handleVisits)

	return server
}

func (that *Server) Handler() http.Handler {
	return that.echo
}

// Start - starts the HTTP server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	that.echo.Server.ReadTimeout = 10 * time.Second
	that.echo.Server.WriteTimeout = 10 * time.Second
	that.echo.Server.IdleTimeout = 30 * time.Second

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		if err := that.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := that.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	}
}

func (that *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			that.logger.Info("http",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"dur", v.Latency.Round(time.Millisecond),
			)
			return nil
		},
	})
}
