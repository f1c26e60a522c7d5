package catalog

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"orderdesk/internal/domain"
)

type Controller struct {
	catalog *Catalog
	logger  *zap.Logger
}

func NewController(catalog *Catalog, logger *zap.Logger) *Controller {
	return &Controller{
		catalog: catalog,
		logger:  logger,
	}
}

type teamsResponse struct {
	TraceID string        `json:"traceId"`
	Teams   []domain.Team `json:"teams"`
}

type membersResponse struct {
	Team    domain.Team         `json:"team"`
	Members []domain.TeamMember `json:"members"`
}

type errorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *Controller) Routes(r chi.Router) {
	r.Get("/teams", c.HandleListTeams)
	r.Get("/teams/{teamId}/members", c.HandleListMembers)
}

func (c *Controller) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	teams := c.catalog.Teams()
	c.logger.Debug("listing teams", zap.String("traceId", traceID), zap.Int("count", len(teams)))

	c.writeJSON(w, http.StatusOK, teamsResponse{TraceID: traceID, Teams: teams})
}

func (c *Controller) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamId")

	team, ok := c.catalog.FindTeam(teamID)
	if !ok {
		traceID := uuid.New().String()
		c.logger.Warn("unknown team requested", zap.String("traceId", traceID), zap.String("teamId", teamID))
		c.writeJSON(w, http.StatusNotFound, errorResponse{
			TraceID:   traceID,
			Status:    http.StatusNotFound,
			Code:      "NOT_FOUND",
			Message:   "team " + teamID + " not found",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	c.writeJSON(w, http.StatusOK, membersResponse{
		Team:    team,
		Members: c.catalog.Members(teamID),
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
