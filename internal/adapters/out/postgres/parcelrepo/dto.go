// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// aggregate, converting between the domain entity and its database row.
package parcelrepo

import (
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The tracking and rider columns are nullable: they are populated by payment
// reconciliation and rider assignment respectively.
type ParcelDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name           string     `gorm:"type:varchar(255);not null"`
	SenderEmail    string     `gorm:"type:varchar(255);not null;index"`
	Cost           int64      `gorm:"type:bigint;not null"`
	DeliveryStatus string     `gorm:"type:varchar(32);not null;index"`
	PaymentStatus  string     `gorm:"type:varchar(16);not null"`
	TrackingID     *string    `gorm:"type:varchar(32);uniqueIndex"`
	RiderID        *uuid.UUID `gorm:"type:uuid;index"`
	RiderName      *string    `gorm:"type:varchar(255)"`
	RiderEmail     *string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	dto := ParcelDTO{
		ID:             p.ID().Bytes(),
		Name:           p.Name(),
		SenderEmail:    p.SenderEmail(),
		Cost:           p.Cost(),
		DeliveryStatus: p.DeliveryStatus().String(),
		PaymentStatus:  p.PaymentStatus().String(),
		CreatedAt:      p.CreatedAt(),
	}

	if p.TrackingID() != nil {
		trackingID := p.TrackingID().String()
		dto.TrackingID = &trackingID
	}

	if p.Rider() != nil {
		riderID := p.Rider().ID().Bytes()
		riderName := p.Rider().Name()
		riderEmail := p.Rider().Email()
		dto.RiderID = &riderID
		dto.RiderName = &riderName
		dto.RiderEmail = &riderEmail
	}

	return dto
}

// toDomain converts a database row to a parcel domain aggregate.
// RestoreParcel re-validates the cross-field invariants, so corrupt rows are
// rejected rather than silently loaded.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryStatus, err := parcel.DeliveryStatusFromString(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := parcel.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	var trackingID *kernel.TrackingID
	if dto.TrackingID != nil {
		tid, tidErr := kernel.TrackingIDFromString(*dto.TrackingID)
		if tidErr != nil {
			return nil, tidErr
		}
		trackingID = &tid
	}

	var riderRef *parcel.RiderRef
	if dto.RiderID != nil {
		riderID, ridErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if ridErr != nil {
			return nil, ridErr
		}

		var riderName, riderEmail string
		if dto.RiderName != nil {
			riderName = *dto.RiderName
		}
		if dto.RiderEmail != nil {
			riderEmail = *dto.RiderEmail
		}

		ref, refErr := parcel.NewRiderRef(riderID, riderName, riderEmail)
		if refErr != nil {
			return nil, refErr
		}
		riderRef = &ref
	}

	return parcel.RestoreParcel(
		id,
		dto.Name,
		dto.SenderEmail,
		dto.Cost,
		deliveryStatus,
		paymentStatus,
		trackingID,
		riderRef,
		dto.CreatedAt,
	)
}
