package order

import (
	"go.uber.org/zap"

	"orderdesk/internal/assignment"
	"orderdesk/internal/catalog"
	"orderdesk/internal/config"
	"orderdesk/internal/metrics"
	"orderdesk/internal/notify"
	"orderdesk/internal/order/controller"
	"orderdesk/internal/order/service"
	"orderdesk/internal/order/usecase"
)

type Module struct {
	Orders   *controller.OrderController
	Sessions *controller.AssignmentController
}

func NewModule(
	orderRepo usecase.OrderRepository,
	teams *catalog.Catalog,
	notifier notify.Sink,
	m *metrics.Metrics,
	cfg *config.Config,
	logger *zap.Logger,
) *Module {
	exporter := service.NewExportService(cfg.Export.Location, cfg.Export.DateLayout)

	dashboard := usecase.NewDashboardUseCase(orderRepo, exporter, notifier, m, logger)
	assign := usecase.NewAssignmentUseCase(
		orderRepo,
		teams,
		assignment.NewRegistry(),
		notifier,
		m,
		logger,
		cfg.Assignment.Timeout,
		cfg.Assignment.MaxRetryAttempts,
	)

	return &Module{
		Orders:   controller.NewOrderController(dashboard, teams, logger),
		Sessions: controller.NewAssignmentController(assign, teams, logger),
	}
}
