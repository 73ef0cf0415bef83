// Package memberrepo provides data transfer objects and mapping functions for member persistence.
// This package implements the repository pattern for the member domain aggregate, handling
// the conversion between domain entities and database representations.
package memberrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"

	"github.com/google/uuid"
)

// MemberDTO represents the database structure for persisting member aggregates.
// The member's address is embedded as address_-prefixed columns.
type MemberDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// TableName specifies the database table name for member entities.
// Overrides GORM's default naming convention to use "members".
func (MemberDTO) TableName() string {
	return "members"
}

// AddressDTO represents the embedded address columns within the member table.
type AddressDTO struct {
	City    string `gorm:"type:varchar(255);not null"`
	Street  string `gorm:"type:varchar(255);not null"`
	Zipcode string `gorm:"type:varchar(32);not null"`
}

// FromDomain converts a member domain aggregate to its database representation.
func FromDomain(m *member.Member) MemberDTO {
	return MemberDTO{
		ID:   m.ID().Bytes(),
		Name: m.Name(),
		Address: AddressDTO{
			City:    m.Address().City(),
			Street:  m.Address().Street(),
			Zipcode: m.Address().Zipcode(),
		},
	}
}

// ToDomain converts a database DTO to a member domain aggregate.
// Exported because the order repository reconstructs the purchasing member
// when loading an order aggregate.
func ToDomain(dto MemberDTO) (*member.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.Zipcode)
	if err != nil {
		return nil, err
	}

	return member.RestoreMember(id, dto.Name, address)
}
