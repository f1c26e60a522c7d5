package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orderdesk/internal/domain"
	"orderdesk/internal/dto"
	"orderdesk/internal/order/usecase"
)

type DashboardUseCase interface {
	ListOrders(ctx context.Context, query string) ([]domain.Order, error)
	Stats(ctx context.Context) (domain.Stats, error)
	Export(ctx context.Context, query string) (*usecase.ExportFile, error)
}

type TeamLookup interface {
	Team(id *string) *domain.Team
	FindTeam(id string) (domain.Team, bool)
}

type OrderController struct {
	responder
	useCase DashboardUseCase
	teams   TeamLookup
}

func NewOrderController(useCase DashboardUseCase, teams TeamLookup, logger *zap.Logger) *OrderController {
	return &OrderController{
		responder: newResponder(logger),
		useCase:   useCase,
		teams:     teams,
	}
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	query := r.URL.Query().Get("q")

	orders, err := c.useCase.ListOrders(r.Context(), query)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	views := make([]dto.OrderView, len(orders))
	for i, o := range orders {
		views[i] = dto.NewOrderView(o, c.teams.Team)
	}

	c.writeJSON(w, http.StatusOK, dto.ListOrdersResponse{
		TraceID: traceID,
		Query:   query,
		Count:   len(views),
		Orders:  views,
	})
}

func (c *OrderController) Stats(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	stats, err := c.useCase.Stats(r.Context())
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.StatsResponse{TraceID: traceID, Stats: stats})
}

func (c *OrderController) Export(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	file, err := c.useCase.Export(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.Header().Set("X-Trace-Id", traceID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		logger.Error("failed to write export", zap.Error(err))
	}
}
