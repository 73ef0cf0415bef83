// Package itemrepo provides data transfer objects and mapping functions for item persistence.
// This package implements the repository pattern for the item domain aggregate, handling
// the conversion between domain entities and database representations.
package itemrepo

import (
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting item aggregates.
// The version column backs the optimistic concurrency check applied on update,
// which prevents two concurrent orders from both deducting the same stock.
type ItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Price         int       `gorm:"type:int;not null"`
	StockQuantity int       `gorm:"type:int;not null"`
	Version       int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for item entities.
// Overrides GORM's default naming convention to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// FromDomain converts an item domain aggregate to its database representation.
func FromDomain(it *item.Item) ItemDTO {
	return ItemDTO{
		ID:            it.ID().Bytes(),
		Name:          it.Name(),
		Price:         it.Price(),
		StockQuantity: it.StockQuantity(),
		Version:       it.Version(),
	}
}

// ToDomain converts a database DTO to an item domain aggregate.
// Exported because the order repository reconstructs line items
// when loading an order aggregate.
func ToDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, dto.Name, dto.Price, dto.StockQuantity, dto.Version)
}
