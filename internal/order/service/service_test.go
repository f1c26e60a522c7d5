package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/domain"
	"orderdesk/internal/order/repository"
)

func ids(orders []domain.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	orders := repository.SampleOrders()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps all", "", []string{"ORD001", "ORD002", "ORD003"}},
		{"buyer name case insensitive", "jane", []string{"ORD002"}},
		{"invoice substring", "inv-2024-00", []string{"ORD001", "ORD002", "ORD003"}},
		{"exact invoice", "INV-2024-003", []string{"ORD003"}},
		{"product name", "widget", []string{"ORD001"}},
		{"shared buyer surname", "johnson", []string{"ORD003"}},
		{"no match", "zzz", []string{}},
		{"email is not searched", "example.com", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(orders, tt.query)))
		})
	}
}

func TestFilter_IdempotentAndPure(t *testing.T) {
	orders := repository.SampleOrders()

	once := Filter(orders, "o")
	twice := Filter(once, "o")

	assert.Equal(t, ids(once), ids(twice))
	assert.Len(t, orders, 3)

	all := Filter(orders, "")
	all[0].ID = "changed"
	assert.Equal(t, "ORD001", orders[0].ID)
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(repository.SampleOrders())

	assert.Equal(t, domain.Stats{Total: 3, Completed: 1, InProgress: 1, Unassigned: 1}, stats)
	assert.Equal(t, domain.Stats{}, ComputeStats(nil))
}

func TestExportService_WriteCSV_Sample(t *testing.T) {
	svc := NewExportService(time.UTC, "1/2/2006")
	var buf bytes.Buffer

	n, err := svc.WriteCSV(&buf, repository.SampleOrders())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Order ID,Invoice No,Amount,Team,Member,Status,Customer,Date", lines[0])
	assert.Equal(t, "ORD001,INV-2024-001,2499.99,accounting,Alice Johnson,in_progress,John Doe,1/15/2024", lines[1])
	assert.Equal(t, "ORD002,INV-2024-002,1899.5,designing,Carol Davis,completed,Jane Smith,1/14/2024", lines[2])
	assert.Equal(t, "ORD003,INV-2024-003,750,Unassigned,None,pending,Mike Johnson,1/16/2024", lines[3])
}

func TestExportService_WriteCSV_FilteredAndEmpty(t *testing.T) {
	svc := NewExportService(time.UTC, "")
	orders := repository.SampleOrders()

	var buf bytes.Buffer
	n, err := svc.WriteCSV(&buf, Filter(orders, "jane"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"), 2)

	buf.Reset()
	n, err = svc.WriteCSV(&buf, Filter(orders, "nothing matches"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "Order ID,Invoice No,Amount,Team,Member,Status,Customer,Date\n", buf.String())
}

func TestExportService_WriteCSV_QuotesFields(t *testing.T) {
	svc := NewExportService(time.UTC, "1/2/2006")
	orders := repository.SampleOrders()[:1]
	orders[0].Buyers[0].Name = "Doe, John"

	var buf bytes.Buffer
	_, err := svc.WriteCSV(&buf, orders)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"Doe, John"`)
}

func TestExportService_DateUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-10", -10*3600)
	svc := NewExportService(loc, "1/2/2006")
	orders := repository.SampleOrders()[2:]

	var buf bytes.Buffer
	_, err := svc.WriteCSV(&buf, orders)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), ",1/15/2024")
}

func TestExportService_FileName(t *testing.T) {
	svc := NewExportService(time.UTC, "")

	assert.Equal(t, "orders_2024-03-09.csv", svc.FileName(time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)))
}
