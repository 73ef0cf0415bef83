package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMemberOrdersQueryHandler retrieves a member's order history from the database.
// Aggregates line totals in SQL so the handler never loads full aggregates.
type GetMemberOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMemberOrdersQueryHandler creates a handler for member order history queries.
// Requires a GORM database connection for query execution.
func NewGetMemberOrdersQueryHandler(db *gorm.DB) GetMemberOrdersQueryHandler {
	return GetMemberOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the member's orders, newest first.
// A member without orders yields an empty slice, not an error.
func (h GetMemberOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMemberOrdersQuery,
) ([]GetMemberOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetMemberOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.order_date,
			COALESCE(SUM(l.order_price * l.count), 0)
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.member_id = ?
		GROUP BY o.id, o.status, o.order_date
		ORDER BY o.order_date DESC
	`, query.MemberID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			status     int
			orderDate  time.Time
			totalPrice int
		)
		if err = rows.Scan(&id, &status, &orderDate, &totalPrice); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetMemberOrdersQueryResponse{
			ID:         orderID,
			Status:     order.Status(status).String(),
			OrderDate:  orderDate,
			TotalPrice: totalPrice,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
