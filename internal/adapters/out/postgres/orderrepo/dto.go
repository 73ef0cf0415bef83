// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations. The order's
// delivery and lines are persisted as child rows and cascade on save.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Delivery and Lines are GORM associations: creating an order cascades to its
// delivery row and order line rows in the same statement batch.
type OrderDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status    int            `gorm:"type:int;not null;index"`
	OrderDate time.Time      `gorm:"type:timestamptz;not null"`
	Delivery  DeliveryDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Lines     []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO represents the database structure for persisting an order's delivery.
// A delivery exists only as part of its order, so the order id is the primary key.
type DeliveryDTO struct {
	OrderID uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status  int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AddressDTO represents the embedded delivery address columns.
type AddressDTO struct {
	City    string `gorm:"type:varchar(255);not null"`
	Street  string `gorm:"type:varchar(255);not null"`
	Zipcode string `gorm:"type:varchar(32);not null"`
}

// OrderLineDTO represents the database structure for persisting order lines.
// A line is identified by the pair of order and item: one order carries at
// most one line per item.
type OrderLineDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	OrderPrice int       `gorm:"type:int;not null"`
	Count      int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation,
// including the delivery row and one row per order line.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:    orderID,
			ItemID:     line.Item().ID().Bytes(),
			OrderPrice: line.OrderPrice(),
			Count:      line.Count(),
		})
	}

	return OrderDTO{
		ID:        orderID,
		MemberID:  o.Member().ID().Bytes(),
		Status:    int(o.Status()),
		OrderDate: o.OrderDate(),
		Delivery: DeliveryDTO{
			OrderID: orderID,
			Address: AddressDTO{
				City:    o.Delivery().Address().City(),
				Street:  o.Delivery().Address().Street(),
				Zipcode: o.Delivery().Address().Zipcode(),
			},
			Status: int(o.Delivery().Status()),
		},
		Lines: lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// The purchasing member and the line items are loaded separately by the
// repository and passed in; items is keyed by the raw item id.
func toDomain(dto OrderDTO, m *member.Member, items map[uuid.UUID]*item.Item) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(
		dto.Delivery.Address.City,
		dto.Delivery.Address.Street,
		dto.Delivery.Address.Zipcode,
	)
	if err != nil {
		return nil, err
	}

	delivery, err := order.RestoreDelivery(address, order.DeliveryStatus(dto.Delivery.Status))
	if err != nil {
		return nil, err
	}

	lines := make([]*order.OrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		it, ok := items[lineDTO.ItemID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("item", lineDTO.ItemID.String())
		}

		line, lineErr := order.RestoreOrderLine(it, lineDTO.OrderPrice, lineDTO.Count)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, m, delivery, order.Status(dto.Status), dto.OrderDate, lines...)
}
