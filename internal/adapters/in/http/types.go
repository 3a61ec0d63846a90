package http

import "time"

// Error is the uniform error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterUserRequest is the body of POST /api/v1/users.
type RegisterUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SetUserRoleRequest is the body of PATCH /api/v1/users/:id/role.
type SetUserRoleRequest struct {
	Role string `json:"role"`
}

// UserResponse is the account read model returned by user endpoints.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoleResponse is returned by GET /api/v1/users/role.
type RoleResponse struct {
	Role string `json:"role"`
}

// CreateRiderRequest is the body of POST /api/v1/riders.
type CreateRiderRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	District string `json:"district"`
}

// SetRiderApprovalRequest is the body of PATCH /api/v1/riders/:id/approval.
type SetRiderApprovalRequest struct {
	Status string `json:"status"`
}

// RiderResponse is the rider read model returned by rider endpoints.
type RiderResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	District       string    `json:"district"`
	ApprovalStatus string    `json:"approvalStatus"`
	WorkStatus     string    `json:"workStatus"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateParcelRequest is the body of POST /api/v1/parcels.
// The sender is the authenticated caller; it is never taken from the body.
type CreateParcelRequest struct {
	Name string `json:"name"`
	Cost int64  `json:"cost"`
}

// AssignRiderRequest is the body of PATCH /api/v1/parcels/:id/assign.
type AssignRiderRequest struct {
	RiderID string `json:"riderId"`
}

// ParcelResponse is the parcel read model returned by parcel endpoints.
// trackingId and the rider fields are empty until payment and assignment.
type ParcelResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SenderEmail    string    `json:"senderEmail"`
	Cost           int64     `json:"cost"`
	DeliveryStatus string    `json:"deliveryStatus"`
	PaymentStatus  string    `json:"paymentStatus"`
	TrackingID     string    `json:"trackingId,omitempty"`
	RiderID        string    `json:"riderId,omitempty"`
	RiderName      string    `json:"riderName,omitempty"`
	RiderEmail     string    `json:"riderEmail,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateCheckoutSessionRequest is the body of POST /api/v1/payments/checkout-session.
type CreateCheckoutSessionRequest struct {
	ParcelID   string `json:"parcelId"`
	ParcelName string `json:"parcelName"`
	Cost       int64  `json:"cost"`
}

// CheckoutSessionResponse is the redirect handle for an opened session.
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// ReconcilePaymentRequest is the body of POST /api/v1/payments/reconcile.
type ReconcilePaymentRequest struct {
	SessionID string `json:"sessionId"`
}

// ReconcilePaymentResponse reports the settlement outcome.
// alreadyDone marks repeat reconciliations of a settled transaction.
type ReconcilePaymentResponse struct {
	Success       bool   `json:"success"`
	AlreadyDone   bool   `json:"alreadyDone"`
	TrackingID    string `json:"trackingId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	ParcelID      string `json:"parcelId,omitempty"`
}

// PaymentResponse is the ledger read model returned by payment endpoints.
type PaymentResponse struct {
	ID            string    `json:"id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	PayerEmail    string    `json:"payerEmail"`
	ParcelID      string    `json:"parcelId"`
	ParcelName    string    `json:"parcelName"`
	TransactionID string    `json:"transactionId"`
	TrackingID    string    `json:"trackingId"`
	PaidAt        time.Time `json:"paidAt"`
}

// InconsistencyResponse is one audit finding returned by the consistency
// endpoint.
type InconsistencyResponse struct {
	ParcelID   string `json:"parcelId"`
	TrackingID string `json:"trackingId,omitempty"`
	Kind       string `json:"kind"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
}
