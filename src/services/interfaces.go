package services

import (
	"context"
	"fmt"

	"github.com/username/shipsync/src/models"
)

// OrderService talks to the external order management API.
type OrderService interface {
	// FetchOrdersByStatus returns the first page of sales orders whose
	// custom status matches the filter.
	FetchOrdersByStatus(ctx context.Context, status string) ([]models.SalesOrder, error)
	// UpdateOrderStatus PUTs the reduced order payload, moving the order to
	// newStatus and stamping the consignment number into its comments.
	UpdateOrderStatus(ctx context.Context, order models.SalesOrder, newStatus, consignmentNumber string) error
}

// ReconcileService cross-references shipment records against sales orders
// and drives the per-record status updates.
type ReconcileService interface {
	Reconcile(ctx context.Context, shipments []models.ShipmentRecord, orders []models.SalesOrder, newStatus string) []models.ShipmentOutcome
}

// MailService locates today's dispatch email and downloads its CSV
// attachment. An empty path with a nil error means no matching mail arrived,
// which ends the run cleanly.
type MailService interface {
	FetchLatestCSVAttachment(ctx context.Context) (string, error)
}

// EmailService sends the end-of-run status report.
type EmailService interface {
	SendStatusReport(ctx context.Context, outcomes []models.ShipmentOutcome, runID string) error
}

// RemoteServiceError is returned for any failed interaction with the order
// management API: a non-2xx response carries its status code, a transport or
// decoding failure carries the underlying error and a zero status code.
type RemoteServiceError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RemoteServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status code %d", e.Op, e.StatusCode)
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }
