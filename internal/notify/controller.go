package notify

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Controller struct {
	feed   *Feed
	logger *zap.Logger
}

func NewController(feed *Feed, logger *zap.Logger) *Controller {
	return &Controller{feed: feed, logger: logger}
}

type feedResponse struct {
	Notifications []Notification `json:"notifications"`
}

func (c *Controller) HandleRecent(w http.ResponseWriter, r *http.Request) {
	items := c.feed.Recent()
	if items == nil {
		items = []Notification{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(feedResponse{Notifications: items}); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
