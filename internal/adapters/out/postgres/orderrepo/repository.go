package orderrepo

import (
	"context"
	"errors"

	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
// The insert cascades through the Delivery and Lines associations, so the
// delivery row and all order line rows are created alongside the order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, reconstructing the full aggregate: the
// purchasing member, the delivery and every line with its item.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Delivery").
		Preload("Lines").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return r.loadAggregate(ctx, dto)
}

// GetAllAwaitingDelivery retrieves all placed orders whose delivery has not
// been completed yet. Used by the delivery completion sweep.
func (r *GormOrderRepository) GetAllAwaitingDelivery(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Delivery").
		Preload("Lines").
		Joins("JOIN deliveries ON deliveries.order_id = orders.id AND deliveries.status = ?",
			int(order.DeliveryReady)).
		Find(&dtos, "orders.status = ?", int(order.Placed)).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := r.loadAggregate(ctx, dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// loadAggregate finishes reconstruction of an order DTO by loading the
// purchasing member and every line item, then mapping to the domain aggregate.
func (r *GormOrderRepository) loadAggregate(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	m, err := r.loadMember(ctx, dto.MemberID)
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, dto.Lines)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, m, items)
}

func (r *GormOrderRepository) loadMember(ctx context.Context, memberID uuid.UUID) (*member.Member, error) {
	var dto memberrepo.MemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("member", memberID.String())
		}
		return nil, err
	}

	return memberrepo.ToDomain(dto)
}

func (r *GormOrderRepository) loadItems(ctx context.Context, lines []OrderLineDTO) (map[uuid.UUID]*item.Item, error) {
	if len(lines) == 0 {
		return map[uuid.UUID]*item.Item{}, nil
	}

	itemIDs := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		itemIDs = append(itemIDs, line.ItemID)
	}

	var dtos []itemrepo.ItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", itemIDs).Error; err != nil {
		return nil, err
	}

	items := make(map[uuid.UUID]*item.Item, len(dtos))
	for _, dto := range dtos {
		it, err := itemrepo.ToDomain(dto)
		if err != nil {
			return nil, err
		}
		items[dto.ID] = it
	}

	return items, nil
}
