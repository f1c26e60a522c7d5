package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"orderdesk/internal/domain"
	apperrors "orderdesk/internal/errors"
	"orderdesk/internal/notify"
	"orderdesk/internal/order/service"
)

const (
	titleExportComplete   = "Export Complete"
	messageExportComplete = "Orders data has been exported successfully"
)

type ExportFile struct {
	FileName string
	Content  []byte
	Rows     int
}

type DashboardUseCase struct {
	orders   OrderRepository
	exporter *service.ExportService
	notifier Notifier
	metrics  MetricsRecorder
	logger   *zap.Logger
	now      func() time.Time
}

func NewDashboardUseCase(
	orders OrderRepository,
	exporter *service.ExportService,
	notifier Notifier,
	metrics MetricsRecorder,
	logger *zap.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		orders:   orders,
		exporter: exporter,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// ListOrders returns the orders matching query, in collection order.
func (uc *DashboardUseCase) ListOrders(ctx context.Context, query string) ([]domain.Order, error) {
	orders, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return service.Filter(orders, query), nil
}

// Stats is computed over the whole collection regardless of any search.
func (uc *DashboardUseCase) Stats(ctx context.Context) (domain.Stats, error) {
	orders, err := uc.load(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return service.ComputeStats(orders), nil
}

// Export renders the filtered orders as CSV. An empty result still yields
// the header row.
func (uc *DashboardUseCase) Export(ctx context.Context, query string) (*ExportFile, error) {
	orders, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := service.Filter(orders, query)

	var buf bytes.Buffer
	rows, err := uc.exporter.WriteCSV(&buf, filtered)
	if err != nil {
		return nil, apperrors.NewInternalError("rendering export", err)
	}

	now := uc.now()
	uc.metrics.RecordExport(rows)
	uc.logger.Info("orders exported", zap.Int("rows", rows), zap.String("query", query))

	n := notify.Notification{
		Title:     titleExportComplete,
		Message:   messageExportComplete,
		Severity:  notify.SeveritySuccess,
		Timestamp: now.UTC(),
	}
	if err := uc.notifier.Notify(ctx, n); err != nil {
		uc.logger.Error("failed to deliver notification", zap.String("title", n.Title), zap.Error(err))
	}

	return &ExportFile{
		FileName: uc.exporter.FileName(now),
		Content:  buf.Bytes(),
		Rows:     rows,
	}, nil
}

func (uc *DashboardUseCase) load(ctx context.Context) ([]domain.Order, error) {
	orders, err := uc.orders.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("loading orders", fmt.Errorf("listing orders: %w", err))
	}
	return orders, nil
}
