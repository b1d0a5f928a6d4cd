package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tresenraya-backend/internal/config"
	"github.com/rocketscienceinc/tresenraya-backend/internal/presenter"
	"github.com/rocketscienceinc/tresenraya-backend/internal/repository"
	"github.com/rocketscienceinc/tresenraya-backend/internal/repository/storage"
	"github.com/rocketscienceinc/tresenraya-backend/internal/usecase"
	"github.com/rocketscienceinc/tresenraya-backend/transport/rest"
	"github.com/rocketscienceinc/tresenraya-backend/transport/websocket"
)

var ErrUnknownStorage = errors.New("unknown storage")

type repositories struct {
	matches repository.MatchRepository
	visits  repository.VisitRepository
	close   func() error
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	repos, err := newRepositories(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = repos.close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	log.Info("Storage ready", "storage", conf.Storage)

	view := presenter.New(conf.Players.Roster())
	gameManager := usecase.NewGameManager(logger, repos.matches)
	visitCounter := usecase.NewVisitCounter(logger, repos.visits)

	wsServer := websocket.New(logger, gameManager, view)
	gameManager.SetPublisher(wsServer)

	httpServer := rest.New(logger, gameManager, visitCounter, view)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := httpServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newRepositories(ctx context.Context, conf *config.Config) (*repositories, error) {
	switch conf.Storage {
	case config.StorageMemory:
		return &repositories{
			matches: repository.NewMemoryMatchRepository(),
			visits:  repository.NewMemoryVisitRepository(),
			close:   func() error { return nil },
		}, nil
	case config.StorageRedis:
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return &repositories{
			matches: repository.NewMatchRepository(redisStorage, conf.Redis.MatchTTL),
			visits:  repository.NewVisitRepository(redisStorage),
			close:   redisStorage.Close,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage)
	}
}
