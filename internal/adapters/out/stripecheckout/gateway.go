// Package stripecheckout implements the CheckoutGateway port against the
// Stripe Checkout API. The parcel identity travels as session metadata so
// reconciliation can recover it from the session alone.
package stripecheckout

import (
	"context"
	"errors"
	"fmt"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/ports"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

const (
	metadataParcelID   = "parcelId"
	metadataParcelName = "parcelName"

	// minorUnitsPerUnit converts between the whole currency units used in
	// the domain and the minor units (cents) Stripe expects.
	minorUnitsPerUnit = 100
)

// Gateway talks to Stripe Checkout. Implements ports.CheckoutGateway.
type Gateway struct {
	api        *client.API
	currency   string
	successURL string
	cancelURL  string
}

// NewGateway creates a Stripe-backed checkout gateway.
// siteDomain is the payer-facing frontend origin; Stripe redirects there
// after payment with the session ID templated into the success URL.
func NewGateway(secretKey, currency, siteDomain string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Gateway{
		api:        api,
		currency:   currency,
		successURL: siteDomain + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  siteDomain + "/payment-cancelled",
	}
}

// CreateSession opens a Stripe Checkout session for one parcel.
func (g *Gateway) CreateSession(ctx context.Context, req ports.CreateSessionRequest) (ports.SessionHandle, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(g.currency),
					UnitAmount: stripe.Int64(req.AmountUnits * minorUnitsPerUnit),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ParcelName),
					},
				},
			},
		},
		CustomerEmail: stripe.String(req.SenderEmail),
		SuccessURL:    stripe.String(g.successURL),
		CancelURL:     stripe.String(g.cancelURL),
	}
	params.Context = ctx
	params.AddMetadata(metadataParcelID, req.ParcelID.String())
	params.AddMetadata(metadataParcelName, req.ParcelName)

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return ports.SessionHandle{}, fmt.Errorf("create checkout session: %w", err)
	}

	return ports.SessionHandle{
		ID:          session.ID,
		RedirectURL: session.URL,
	}, nil
}

// RetrieveSession fetches a session and maps it to the reconciliation
// contract. Returns ports.ErrSessionNotFound when Stripe does not know the
// session ID.
func (g *Gateway) RetrieveSession(ctx context.Context, sessionID string) (ports.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return ports.CheckoutSession{}, ports.ErrSessionNotFound
		}
		return ports.CheckoutSession{}, fmt.Errorf("retrieve checkout session: %w", err)
	}

	parcelID, err := kernel.UUIDFromString(session.Metadata[metadataParcelID])
	if err != nil {
		return ports.CheckoutSession{}, fmt.Errorf("session %s carries no parcel identity: %w", sessionID, err)
	}

	var transactionID string
	if session.PaymentIntent != nil {
		transactionID = session.PaymentIntent.ID
	}

	return ports.CheckoutSession{
		ID:            session.ID,
		TransactionID: transactionID,
		Paid:          session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountUnits:   session.AmountTotal / minorUnitsPerUnit,
		Currency:      string(session.Currency),
		CustomerEmail: customerEmail(session),
		ParcelID:      parcelID,
		ParcelName:    session.Metadata[metadataParcelName],
	}, nil
}

// customerEmail prefers the post-payment customer details over the email the
// session was opened with.
func customerEmail(session *stripe.CheckoutSession) string {
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		return session.CustomerDetails.Email
	}
	return session.CustomerEmail
}
