package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
	"github.com/rocketscienceinc/tresenraya-backend/internal/presenter"
)

const (
	actionConnect = "connect"
	actionTurn    = "game:turn"
	actionReset   = "game:reset"
	actionState   = "game:state"
	actionResult  = "game:result"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	SessionID string `json:"session_id,omitempty"`
	Cell      *int   `json:"cell,omitempty"`
	Scores    bool   `json:"scores,omitempty"`
}

type ResponsePayload struct {
	SessionID string              `json:"session_id,omitempty"`
	Players   *entity.Roster      `json:"players,omitempty"`
	Game      *presenter.GameView `json:"game,omitempty"`
	Dialog    *presenter.Dialog   `json:"dialog,omitempty"`
	Error     string              `json:"error,omitempty"`
}

func newMessage(action string, payload ResponsePayload) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return Message{Action: action, Payload: data}, nil
}

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return payload, nil
}
