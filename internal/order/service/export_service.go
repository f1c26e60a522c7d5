package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"orderdesk/internal/domain"
)

var exportHeader = []string{"Order ID", "Invoice No", "Amount", "Team", "Member", "Status", "Customer", "Date"}

const (
	unassignedTeam   = "Unassigned"
	unassignedMember = "None"
)

type ExportService struct {
	location   *time.Location
	dateLayout string
}

func NewExportService(location *time.Location, dateLayout string) *ExportService {
	if location == nil {
		location = time.UTC
	}
	if dateLayout == "" {
		dateLayout = "1/2/2006"
	}
	return &ExportService{
		location:   location,
		dateLayout: dateLayout,
	}
}

// WriteCSV writes the header and one row per order and returns the number
// of data rows written.
func (s *ExportService) WriteCSV(w io.Writer, orders []domain.Order) (int, error) {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("writing csv header: %w", err)
	}

	for i, o := range orders {
		if err := cw.Write(s.row(o)); err != nil {
			return i, fmt.Errorf("writing csv row for order %s: %w", o.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return len(orders), fmt.Errorf("flushing csv: %w", err)
	}
	return len(orders), nil
}

func (s *ExportService) row(o domain.Order) []string {
	team := unassignedTeam
	if o.TeamStatus != nil {
		team = *o.TeamStatus
	}
	member := unassignedMember
	if o.AssignedMember != nil {
		member = *o.AssignedMember
	}

	return []string{
		o.ID,
		o.InvoiceNo,
		o.TotalPrice.String(),
		team,
		member,
		string(o.Status),
		o.PrimaryBuyer().Name,
		o.CreatedAt.In(s.location).Format(s.dateLayout),
	}
}

// FileName returns the download name for an export made at now, dated in UTC.
func (s *ExportService) FileName(now time.Time) string {
	return "orders_" + now.UTC().Format("2006-01-02") + ".csv"
}
