package models

// Upload status values a shipment record can end a run with.
const (
	StatusNotProcessed = "not processed"
	StatusFound        = "found"
	StatusUpdated      = "updated"
	StatusUpdateFailed = "update failed"
	StatusNotFound     = "not found"
)

// ShipmentRecord is one row of the 3PL dispatch CSV. All dates arrive as
// opaque strings in whatever format the warehouse system exported them.
type ShipmentRecord struct {
	SalesOrder          string `json:"sales_order"` // order number used for matching
	CustomerOrderNumber string `json:"customer_order_number"`
	ShipToContact       string `json:"ship_to_contact"`
	ShipToAdd1          string `json:"ship_to_add1"`
	ShipToAdd2          string `json:"ship_to_add2"`
	ShipToAdd3          string `json:"ship_to_add3"`
	ShipToSuburb        string `json:"ship_to_suburb"`
	ShipToState         string `json:"ship_to_state"`
	ShipToPostCode      string `json:"ship_to_postcode"`
	ShipToCountry       string `json:"ship_to_country"`
	CreatedDate         string `json:"created_date"`
	PickedDate          string `json:"picked_date"`
	DispatchedDate      string `json:"dispatched_date"`
	ConsignmentNumber   string `json:"consignment_number"`
}

// ShipmentOutcome carries a shipment record through the reconciliation run.
// UploadStatus starts at "not found" and is set at most once as the record's
// terminal state becomes known; it is never reverted.
type ShipmentOutcome struct {
	ShipmentRecord

	UploadStatus string  `json:"upload_status"`
	OrderDate    string  `json:"order_date"`
	OrderTotal   float64 `json:"order_total"`
}

// NewShipmentOutcome wraps a parsed record with the default outcome state.
func NewShipmentOutcome(record ShipmentRecord) ShipmentOutcome {
	return ShipmentOutcome{
		ShipmentRecord: record,
		UploadStatus:   StatusNotFound,
	}
}
