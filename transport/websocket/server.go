package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gorilla "github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
	"github.com/rocketscienceinc/tresenraya-backend/internal/presenter"
	"github.com/rocketscienceinc/tresenraya-backend/internal/tictactoe"
)

const (
	maxMessageSize  = 4096
	shutdownTimeout = 5 * time.Second
)

type gameManager interface {
	GetOrCreateMatch(ctx context.Context, sessionID string) (*entity.Match, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Match, error)
	ResetRound(ctx context.Context, sessionID string) (*entity.Match, error)
	ResetScores(ctx context.Context, sessionID string) (*entity.Match, error)
}

type handlerFunc func(ctx context.Context, msg *Message, conn *connection) error

type Server struct {
	logger    *slog.Logger
	games     gameManager
	presenter *presenter.Presenter

	upgrader gorilla.Upgrader
	hub      *hub

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games gameManager, presenter *presenter.Presenter) *Server {
	server := &Server{
		logger:    logger.With("component", "websocket"),
		games:     games,
		presenter: presenter,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the game page may be served from any origin
			CheckOrigin: func(*http.Request) bool { return true },
		},
		hub: newHub(),
	}

	server.handlers = map[string]handlerFunc{
		actionConnect: server.handleConnect,
		actionTurn:    server.handleTurn,
		actionReset:   server.handleReset,
		actionState:   server.handleState,
	}

	return server
}

// Handler serves the WebSocket endpoint at /ws.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
		that.closeConnections()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	}
}

// Publish sends game events to every connection attached to sessionID.
func (that *Server) Publish(_ context.Context, sessionID string, events []tictactoe.Event) {
	log := that.logger.With("method", "Publish", "session", sessionID)

	conns := that.hub.connections(sessionID)
	if len(conns) == 0 {
		return
	}

	for _, event := range events {
		msg, err := that.eventMessage(event)
		if err != nil {
			log.Error("failed to build event message", "event", event.Type, "error", err)
			continue
		}

		for _, conn := range conns {
			if err = conn.send(msg); err != nil {
				log.Error("failed to send event", "event", event.Type, "error", err)
			}
		}
	}
}

func (that *Server) eventMessage(event tictactoe.Event) (Message, error) {
	view := that.presenter.View(event.Match)

	switch event.Type {
	case tictactoe.EventResult:
		var dialog presenter.Dialog
		if event.Result != nil {
			dialog = that.presenter.Dialog(*event.Result)
		}
		return newMessage(actionResult, ResponsePayload{SessionID: event.Match.ID, Game: &view, Dialog: &dialog})
	default:
		return newMessage(actionState, ResponsePayload{SessionID: event.Match.ID, Game: &view})
	}
}

// upgradeToWebSocket - upgrades the connection to WebSocket and serves its messages.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	socket, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := &connection{socket: socket}
	that.hub.register(conn)

	defer func() {
		that.hub.unregister(conn)
		_ = socket.Close()
	}()

	log.Info("WebSocket connection established")

	if err = that.handleMessages(req.Context(), conn); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages")

	conn.socket.SetReadLimit(maxMessageSize)

	for {
		_, data, err := conn.socket.ReadMessage()
		if err != nil {
			if gorilla.IsUnexpectedCloseError(err, gorilla.CloseGoingAway, gorilla.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			that.sendError(conn, actionError, "malformed message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			that.sendError(conn, message.Action, "unknown action")
			continue
		}

		if err = handler(ctx, &message, conn); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) closeConnections() {
	for _, conn := range that.hub.snapshot() {
		if err := conn.close(); err != nil {
			that.logger.Debug("failed to close connection", "error", err)
		}
	}
}
