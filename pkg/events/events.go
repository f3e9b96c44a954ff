// Package events publishes booking lifecycle changes.
package events

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// Routing keys.
const (
	BookingCreated         = "booking.created"
	BookingStatusChanged   = "booking.status_changed"
	BookingPaymentRecorded = "booking.payment_recorded"
	BookingRefunded        = "booking.refunded"
	BookingVendorAdded     = "booking.vendor_added"
)

// Event is the message body sent for every routing key.
type Event struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	VenueID    string    `json:"venue_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// LogPublisher writes events to the log. Used when no broker is configured.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log.With(zap.String("component", "events"))}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	body, err := json.Marshal(event.Data)
	if err != nil {
		return err
	}
	p.log.Info("Booking event",
		zap.String("type", event.Type),
		zap.String("booking_id", event.BookingID),
		zap.String("venue_id", event.VenueID),
		zap.ByteString("data", body),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
