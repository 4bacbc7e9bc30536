package service

import (
	"context"
	"fmt"
	"net/http"

	"fleetalert/internal/domain/entity"
	"fleetalert/internal/errors"
)

// PushSender delivers one message to one subscription.
type PushSender interface {
	// Send delivers msg to sub. Failures reported by the push service are returned as *DeliveryError.
	Send(ctx context.Context, sub *entity.PushSubscription, msg *entity.PushMessage) error

	// Transport names the underlying push protocol (webpush, fcm).
	Transport() string
}

// DeliveryError is a push service rejection for a single subscription.
type DeliveryError struct {
	StatusCode int    // HTTP status (or equivalent) reported by the push service; 0 when unknown.
	Detail     string // Response body or provider error code.
	Err        error
}

// NewDeliveryError builds a DeliveryError.
func NewDeliveryError(statusCode int, detail string, err error) *DeliveryError {
	return &DeliveryError{StatusCode: statusCode, Detail: detail, Err: err}
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("push delivery failed (status %d): %s: %v", e.StatusCode, e.Detail, e.Err)
	}

	return fmt.Sprintf("push delivery failed (status %d): %s", e.StatusCode, e.Detail)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Permanent reports whether the endpoint no longer exists and must be pruned.
func (e *DeliveryError) Permanent() bool {
	return e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusGone
}

// IsPermanentDeliveryError reports whether err carries a permanent DeliveryError.
func IsPermanentDeliveryError(err error) bool {
	var deliveryErr *DeliveryError
	ok := errors.As(err, &deliveryErr)

	return ok && deliveryErr.Permanent()
}
