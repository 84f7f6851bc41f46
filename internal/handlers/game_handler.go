package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lol-damage-engine/internal/cache"
	"lol-damage-engine/internal/engine"
	"lol-damage-engine/internal/models"
	"lol-damage-engine/internal/store"
)

// GameHandler serves the game-snapshot lookup and damage-computation route.
type GameHandler struct {
	db     *store.Database
	cache  *cache.CacheService
	engine *engine.Engine
}

// NewGameHandler wires a GameHandler from its three collaborators.
func NewGameHandler(db *store.Database, cacheService *cache.CacheService, eng *engine.Engine) *GameHandler {
	return &GameHandler{db: db, cache: cacheService, engine: eng}
}

// Health reports the database connection status.
func (h *GameHandler) Health(c *gin.Context) {
	if err := h.db.Health(); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.HTTPErrorResponse{Success: false, Message: "database unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}

// LastByCode handles POST /api/game/last: resolve the most recent snapshot
// for a game code, run the damage engine over it against the requested
// tool, and return the enriched response.
func (h *GameHandler) LastByCode(c *gin.Context) {
	var req models.LastByCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.HTTPErrorResponse{Success: false, Message: "invalid request body"})
		return
	}

	var snap *store.Snapshot
	cacheKey := cache.SnapshotCacheKey(req.Code)
	if h.cache.IsEnabled() {
		var cached store.Snapshot
		if err := h.cache.GetJSON(cacheKey, &cached); err == nil {
			snap = &cached
		}
	}

	if snap == nil {
		var err error
		snap, err = h.db.LastByCode(c.Request.Context(), req.Code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.HTTPErrorResponse{Success: false, Message: "lookup failed"})
			return
		}
		if snap != nil && h.cache.IsEnabled() {
			_ = h.cache.SetJSON(cacheKey, snap, cache.TTLSnapshot)
		}
	}

	if snap == nil {
		c.JSON(http.StatusNotFound, models.HTTPErrorResponse{Success: false, Message: "no game found for code"})
		return
	}

	var game models.GameProps
	if err := json.Unmarshal([]byte(snap.GameDataJSON), &game); err != nil {
		c.JSON(http.StatusInternalServerError, models.HTTPErrorResponse{Success: false, Message: "stored snapshot is malformed"})
		return
	}
	c.Header("ETag", cache.SnapshotDigest(snap.GameID, game.GameData.GameTime))

	result, err := h.engine.Calculate(c.Request.Context(), game, req.Item, req.Rec)
	if err != nil {
		if errors.Is(err, engine.ErrActiveTeamUnset) {
			c.JSON(http.StatusBadRequest, models.HTTPErrorResponse{Success: false, Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, models.HTTPErrorResponse{Success: false, Message: err.Error()})
		return
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.HTTPErrorResponse{Success: false, Message: "failed to serialize game data"})
		return
	}

	var summonerName, championName *string
	if snap.SummonerName != "" {
		summonerName = &snap.SummonerName
	}
	if snap.ChampionName != "" {
		championName = &snap.ChampionName
	}
	gameCode := &snap.GameCode

	c.JSON(http.StatusOK, models.LastByCodeResponse{
		Success: true,
		Data: models.LastByCodeResponseData{
			GameID:       snap.GameID,
			SummonerName: summonerName,
			CreatedAt:    snap.CreatedAt,
			GameCode:     gameCode,
			ChampionName: championName,
			Game:         string(resultJSON),
		},
	})
}
