package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tresenraya-backend/internal/apperror"
	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleConnect")

	payload, err := decodePayload(msg)
	if err != nil {
		that.sendError(conn, msg.Action, "malformed payload")
		return err
	}

	match, err := that.games.GetOrCreateMatch(ctx, payload.SessionID)
	if err != nil {
		that.sendError(conn, msg.Action, "failed to load the game")
		return fmt.Errorf("failed to get match: %w", err)
	}

	that.hub.attach(conn, match.ID)

	roster := that.presenter.Roster()
	view := that.presenter.View(*match)

	if err = that.reply(conn, msg.Action, ResponsePayload{SessionID: match.ID, Players: &roster, Game: &view}); err != nil {
		return err
	}

	log.Info("player connected", "session", match.ID)

	return nil
}

func (that *Server) handleTurn(ctx context.Context, msg *Message, conn *connection) error {
	sessionID, ok := that.requireSession(conn, msg.Action)
	if !ok {
		return nil
	}

	payload, err := decodePayload(msg)
	if err != nil || payload.Cell == nil {
		that.sendError(conn, msg.Action, "cell is required")
		return err
	}

	// accepted moves reach this connection through Publish
	_, err = that.games.MakeTurn(ctx, sessionID, *payload.Cell)
	if apperror.IsInvalidMove(err) {
		return nil
	}

	if err != nil {
		that.sendError(conn, msg.Action, "failed to make turn")
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return nil
}

func (that *Server) handleReset(ctx context.Context, msg *Message, conn *connection) error {
	sessionID, ok := that.requireSession(conn, msg.Action)
	if !ok {
		return nil
	}

	payload, err := decodePayload(msg)
	if err != nil {
		that.sendError(conn, msg.Action, "malformed payload")
		return err
	}

	if payload.Scores {
		_, err = that.games.ResetScores(ctx, sessionID)
	} else {
		_, err = that.games.ResetRound(ctx, sessionID)
	}

	if err != nil {
		that.sendError(conn, msg.Action, "failed to reset the game")
		return fmt.Errorf("failed to reset: %w", err)
	}

	return nil
}

func (that *Server) handleState(ctx context.Context, msg *Message, conn *connection) error {
	sessionID, ok := that.requireSession(conn, msg.Action)
	if !ok {
		return nil
	}

	match, err := that.games.GetOrCreateMatch(ctx, sessionID)
	if err != nil {
		that.sendError(conn, msg.Action, "failed to load the game")
		return fmt.Errorf("failed to get match: %w", err)
	}

	return that.sendView(conn, msg.Action, match)
}

func (that *Server) requireSession(conn *connection, action string) (string, bool) {
	sessionID := that.hub.session(conn)
	if sessionID == "" {
		that.sendError(conn, action, "connect first")
		return "", false
	}

	return sessionID, true
}

func (that *Server) sendView(conn *connection, action string, match *entity.Match) error {
	view := that.presenter.View(*match)

	return that.reply(conn, action, ResponsePayload{SessionID: match.ID, Game: &view})
}

func (that *Server) reply(conn *connection, action string, payload ResponsePayload) error {
	msg, err := newMessage(action, payload)
	if err != nil {
		return err
	}

	if err = conn.send(msg); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *connection, action, reason string) {
	if err := that.reply(conn, actionError, ResponsePayload{Error: action + ": " + reason}); err != nil {
		that.logger.Error("failed to send error", "error", err)
	}
}
