package repository

import (
	"context"
	"database/sql"
	"fmt"

	"orderdesk/internal/domain"
	"orderdesk/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const selectOrderColumns = `
		SELECT o.id, o.invoiceNo, o.totalPrice, o.teamStatus, o.assignedMember,
		       o.paymentType, o.status, o.buyerName, o.buyerEmail, o.mobileNumber,
		       o.createdAt, i.productName, i.quantity, i.unitPrice
		FROM Orders o
		JOIN OrderItems i ON i.orderId = o.id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order          domain.Order
		teamStatus     sql.NullString
		assignedMember sql.NullString
		buyer          domain.Buyer
	)

	err := row.Scan(
		&order.ID, &order.InvoiceNo, &order.TotalPrice, &teamStatus, &assignedMember,
		&order.PaymentType, &order.Status, &buyer.Name, &buyer.Email, &order.Delivery.MobileNumber,
		&order.CreatedAt, &order.Item.ProductName, &order.Item.Quantity, &order.Item.UnitPrice,
	)
	if err != nil {
		return nil, err
	}

	if teamStatus.Valid {
		order.TeamStatus = &teamStatus.String
	}
	if assignedMember.Valid {
		order.AssignedMember = &assignedMember.String
	}
	order.Buyers = []domain.Buyer{buyer}

	return &order, nil
}

func (r *MySQLOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, selectOrderColumns+` ORDER BY o.sortOrder ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	return orders, nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRowContext(ctx, selectOrderColumns+` WHERE o.id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

// AssignTeamMember locks the order row, checks it is unassigned and writes
// team, member and status together. The returned order is the locked row with
// the assignment applied, so nothing is read after the commit.
func (r *MySQLOrderRepository) AssignTeamMember(ctx context.Context, orderID, teamID, memberName string) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	order, err := scanOrder(tx.QueryRowContext(ctx, selectOrderColumns+` WHERE o.id = ? FOR UPDATE`, orderID))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}
	if err != nil {
		return nil, fmt.Errorf("locking order: %w", err)
	}
	if order.IsAssigned() {
		return nil, errors.NewConflictError(errors.CodeAlreadyAssigned, fmt.Sprintf("order %s is already assigned", orderID))
	}
	if err := order.Assign(teamID, memberName); err != nil {
		return nil, fmt.Errorf("applying assignment: %w", err)
	}

	query := `UPDATE Orders SET teamStatus = ?, assignedMember = ?, status = ? WHERE id = ? AND teamStatus IS NULL`
	result, err := tx.ExecContext(ctx, query, teamID, memberName, string(order.Status), orderID)
	if err != nil {
		return nil, fmt.Errorf("updating order assignment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, errors.NewConflictError(errors.CodeAlreadyAssigned, fmt.Sprintf("order %s is already assigned", orderID))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing assignment: %w", err)
	}

	return order, nil
}
