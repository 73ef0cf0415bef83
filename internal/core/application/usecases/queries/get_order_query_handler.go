package queries

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Reads the order, member, delivery and line tables directly with SQL instead
// of reconstructing the domain aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order with its lines.
// Returns an ObjectNotFoundError when no order exists for the given id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	lines, totalPrice, err := h.fetchLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Lines = lines
	response.TotalPrice = totalPrice

	return response, nil
}

func (h GetOrderQueryHandler) fetchOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.order_date,
			m.name,
			d.status
		FROM orders o
		JOIN members m ON m.id = o.member_id
		JOIN deliveries d ON d.order_id = o.id
		WHERE o.id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}

	var (
		id             uuid.UUID
		status         int
		orderDate      time.Time
		memberName     string
		deliveryStatus int
	)
	if err = rows.Scan(&id, &status, &orderDate, &memberName, &deliveryStatus); err != nil {
		return GetOrderQueryResponse{}, err
	}

	responseID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:             responseID,
		MemberName:     memberName,
		Status:         order.Status(status).String(),
		DeliveryStatus: order.DeliveryStatus(deliveryStatus).String(),
		OrderDate:      orderDate,
	}, nil
}

func (h GetOrderQueryHandler) fetchLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderLineResponse, int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.item_id,
			i.name,
			l.order_price,
			l.count
		FROM order_lines l
		JOIN items i ON i.id = l.item_id
		WHERE l.order_id = ?
		ORDER BY i.name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	totalPrice := 0

	for rows.Next() {
		var (
			itemID   uuid.UUID
			itemName string
			price    int
			count    int
		)
		if err = rows.Scan(&itemID, &itemName, &price, &count); err != nil {
			return nil, 0, err
		}

		lineItemID, idErr := kernel.UUIDFromBytes(itemID[:])
		if idErr != nil {
			return nil, 0, idErr
		}

		lines = append(lines, OrderLineResponse{
			ItemID:     lineItemID,
			ItemName:   itemName,
			OrderPrice: price,
			Count:      count,
		})
		totalPrice += price * count
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return lines, totalPrice, nil
}
