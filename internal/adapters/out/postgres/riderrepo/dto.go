// Package riderrepo provides data transfer objects and mapping functions for
// rider persistence.
package riderrepo

import (
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
type RiderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);not null;index"`
	District       string    `gorm:"type:varchar(255);not null;index"`
	ApprovalStatus string    `gorm:"type:varchar(16);not null;index"`
	WorkStatus     string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(r *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:             r.ID().Bytes(),
		Name:           r.Name(),
		Email:          r.Email(),
		District:       r.District(),
		ApprovalStatus: r.ApprovalStatus().String(),
		WorkStatus:     r.WorkStatus().String(),
		CreatedAt:      r.CreatedAt(),
	}
}

// toDomain converts a database row to a rider domain aggregate.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	approvalStatus, err := rider.ApprovalStatusFromString(dto.ApprovalStatus)
	if err != nil {
		return nil, err
	}

	workStatus, err := rider.WorkStatusFromString(dto.WorkStatus)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(id, dto.Name, dto.Email, dto.District, approvalStatus, workStatus, dto.CreatedAt)
}
