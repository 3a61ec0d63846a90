// Package paymentrepo provides data transfer objects and mapping functions
// for the append-only payment ledger.
package paymentrepo

import (
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for ledger records.
// TransactionID carries the uniqueness constraint that makes payment
// reconciliation idempotent under concurrency: the second insert for the same
// processor transaction fails instead of double-crediting.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Amount        int64     `gorm:"type:bigint;not null"`
	Currency      string    `gorm:"type:varchar(8);not null"`
	PayerEmail    string    `gorm:"type:varchar(255);not null;index"`
	ParcelID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ParcelName    string    `gorm:"type:varchar(255);not null"`
	TransactionID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	TrackingID    string    `gorm:"type:varchar(32);not null"`
	PaidAt        time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for ledger records.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a ledger record to its database representation.
func fromDomain(r *payment.Record) PaymentDTO {
	return PaymentDTO{
		ID:            r.ID().Bytes(),
		Amount:        r.Amount(),
		Currency:      r.Currency(),
		PayerEmail:    r.PayerEmail(),
		ParcelID:      r.ParcelID().Bytes(),
		ParcelName:    r.ParcelName(),
		TransactionID: r.TransactionID(),
		TrackingID:    r.TrackingID().String(),
		PaidAt:        r.PaidAt(),
	}
}

// toDomain converts a database row to a ledger record.
func toDomain(dto PaymentDTO) (*payment.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	return payment.RestoreRecord(
		id,
		dto.Amount,
		dto.Currency,
		dto.PayerEmail,
		parcelID,
		dto.ParcelName,
		dto.TransactionID,
		trackingID,
		dto.PaidAt,
	)
}
