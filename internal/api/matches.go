package api

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jimmy058910/replitballgame-sub010/internal/constants"
	"github.com/jimmy058910/replitballgame-sub010/internal/engine"
	"github.com/jimmy058910/replitballgame-sub010/internal/game"
	"github.com/jimmy058910/replitballgame-sub010/internal/logging"
	"github.com/jimmy058910/replitballgame-sub010/internal/service"
)

var matchIDRegex = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

// SimulateMatch runs one full match from two inline roster snapshots
// and returns the complete result. The match id doubles as the RNG
// seed, so resubmitting the same id with the same rosters reproduces
// the same match; ids of stored matches must be unique.
func (h *MatchHandler) SimulateMatch(c *gin.Context) {
	var body struct {
		MatchID  string      `json:"match_id"`
		Duration int         `json:"duration"`
		Home     game.Roster `json:"home"`
		Away     game.Roster `json:"away"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	matchID := strings.TrimSpace(body.MatchID)
	if matchID == "" {
		matchID = uuid.NewString()
	}
	if !matchIDRegex.MatchString(matchID) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchID})
		return
	}
	if _, err := h.repo.GetMatch(matchID); err == nil {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchAlreadyExists})
		return
	}
	duration := body.Duration
	if duration == 0 {
		duration = h.duration
	}

	res, err := service.RunMatch(h.repo, matchID, body.Home, body.Away, duration, h.tuning, h.commentator)
	if err != nil {
		if isCallerError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				constants.JSONKeyError:   constants.ErrRosterInvalid,
				constants.JSONKeyMessage: err.Error(),
			})
			return
		}
		logging.Error("match simulation failed", err, logging.Fields{constants.LogFieldMatchID: matchID})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSimulateMatch})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// isCallerError reports whether the failure was raised by
// construction-time validation (bad rosters or parameters) rather than
// by the persistence layer.
func isCallerError(err error) bool {
	return errors.Is(err, engine.ErrRosterTooSmall) ||
		errors.Is(err, engine.ErrInvalidDuration) ||
		errors.Is(err, service.ErrMatchIDRequired)
}

// GetMatch returns one stored match summary.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	matchID := c.Param("matchID")
	if !matchIDRegex.MatchString(matchID) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchID})
		return
	}
	rec, err := h.repo.GetMatch(matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ListMatches returns recent matches, newest first. Optional ?limit=N.
func (h *MatchHandler) ListMatches(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	recs, err := h.repo.ListMatches(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GetMatchEvents returns the stored event stream in emission order.
func (h *MatchHandler) GetMatchEvents(c *gin.Context) {
	matchID := c.Param("matchID")
	if !matchIDRegex.MatchString(matchID) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchID})
		return
	}
	if _, err := h.repo.GetMatch(matchID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	evs, err := h.repo.GetEvents(matchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchEvents})
		return
	}
	c.JSON(http.StatusOK, evs)
}

// GetMatchStats returns the stored per-player final lines.
func (h *MatchHandler) GetMatchStats(c *gin.Context) {
	matchID := c.Param("matchID")
	if !matchIDRegex.MatchString(matchID) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchID})
		return
	}
	if _, err := h.repo.GetMatch(matchID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}
	lines, err := h.repo.GetPlayerStats(matchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, lines)
}
