package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tresenraya-backend/internal/apperror"
	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
	"github.com/rocketscienceinc/tresenraya-backend/internal/presenter"
	"github.com/rocketscienceinc/tresenraya-backend/internal/usecase"
)

const sessionCookie = "user_session"

type turnRequest struct {
	Cell *int `json:"cell"`
}

type gameResponse struct {
	presenter.GameView
	Session string `json:"session"`
	Ignored bool   `json:"ignored,omitempty"`
}

type visitsResponse struct {
	Visits int64 `json:"visits"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handlePlayers(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, that.presenter.Roster())
}

func (that *Server) handleGetGame(ctx echo.Context) error {
	log := that.logger.With("method", "handleGetGame")

	sessionID := that.session(ctx)

	match, err := that.games.GetOrCreateMatch(ctx.Request().Context(), sessionID)
	if err != nil {
		log.Error("failed to get match", "session", sessionID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to load the game"})
	}

	return ctx.JSON(http.StatusOK, that.response(match, false))
}

func (that *Server) handleTurn(ctx echo.Context) error {
	log := that.logger.With("method", "handleTurn")

	var req turnRequest
	if err := ctx.Bind(&req); err != nil || req.Cell == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cell is required"})
	}

	sessionID := that.session(ctx)

	match, err := that.games.MakeTurn(ctx.Request().Context(), sessionID, *req.Cell)
	if apperror.IsInvalidMove(err) {
		return ctx.JSON(http.StatusOK, that.response(match, true))
	}

	if err != nil {
		log.Error("failed to make turn", "session", sessionID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to make turn"})
	}

	return ctx.JSON(http.StatusOK, that.response(match, false))
}

func (that *Server) handleReset(ctx echo.Context) error {
	log := that.logger.With("method", "handleReset")

	resetScores, _ := strconv.ParseBool(ctx.QueryParam("scores"))
	sessionID := that.session(ctx)

	var (
		match *entity.Match
		err   error
	)
	if resetScores {
		match, err = that.games.ResetScores(ctx.Request().Context(), sessionID)
	} else {
		match, err = that.games.ResetRound(ctx.Request().Context(), sessionID)
	}

	if err != nil {
		log.Error("failed to reset", "session", sessionID, "scores", resetScores, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to reset the game"})
	}

	return ctx.JSON(http.StatusOK, that.response(match, false))
}

func (that *Server) handleVisits(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, visitsResponse{Visits: that.visits.Visit(ctx.Request().Context())})
}

func (that *Server) response(match *entity.Match, ignored bool) gameResponse {
	return gameResponse{
		GameView: that.presenter.View(*match),
		Session:  match.ID,
		Ignored:  ignored,
	}
}

// session - returns the session ID from the cookie, issuing a new one when absent.
func (that *Server) session(ctx echo.Context) string {
	if cookie, err := ctx.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := usecase.NewSessionID()
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    sessionID,
		Expires:  time.Now().Add(24 * time.Hour),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	that.logger.Info("session cookie not found, new one created", "session", sessionID)

	return sessionID
}
