package models

// UpdatePayload is the reduced sales order shape sent on a status update PUT.
// The order management API rejects requests carrying fields outside the set
// it accepts for mutation, so this struct is the contractual allow-list: new
// fields are added here deliberately, never by serialising a full SalesOrder.
type UpdatePayload struct {
	Comments              string              `json:"Comments"`
	CustomerRef           string              `json:"CustomerRef,omitempty"`
	DeliveryCity          string              `json:"DeliveryCity,omitempty"`
	DeliveryCountry       string              `json:"DeliveryCountry,omitempty"`
	DeliveryInstruction   string              `json:"DeliveryInstruction,omitempty"`
	DeliveryMethod        string              `json:"DeliveryMethod,omitempty"`
	DeliveryName          string              `json:"DeliveryName,omitempty"`
	DeliveryPostCode      string              `json:"DeliveryPostCode,omitempty"`
	DeliveryRegion        string              `json:"DeliveryRegion,omitempty"`
	DeliveryStreetAddress string              `json:"DeliveryStreetAddress,omitempty"`
	DeliveryStreet2       string              `json:"DeliveryStreetAddress2,omitempty"`
	DeliverySuburb        string              `json:"DeliverySuburb,omitempty"`
	DiscountRate          float64             `json:"DiscountRate"`
	ExchangeRate          float64             `json:"ExchangeRate"`
	OrderStatus           string              `json:"OrderStatus"`
	RequiredDate          string              `json:"RequiredDate,omitempty"`
	SalesOrderGroup       string              `json:"SalesOrderGroup,omitempty"`
	SalesOrderLines       []UpdatePayloadLine `json:"SalesOrderLines"`
	Salesperson           *SalespersonPayload `json:"Salesperson,omitempty"`
	SourceID              string              `json:"SourceId,omitempty"`
	Tax                   *TaxPayload         `json:"Tax,omitempty"`
	Warehouse             *WarehousePayload   `json:"Warehouse,omitempty"`
}

// UpdatePayloadLine keeps just enough of a sales order line for the API to
// consider the order valid; at least one line must be present.
type UpdatePayloadLine struct {
	LineNumber    int                  `json:"LineNumber"`
	Product       UpdatePayloadProduct `json:"Product"`
	OrderQuantity float64              `json:"OrderQuantity"`
	UnitPrice     float64              `json:"UnitPrice"`
	LineTotal     float64              `json:"LineTotal"`
	TaxRate       float64              `json:"TaxRate"`
	LineTax       float64              `json:"LineTax"`
	XeroTaxCode   string               `json:"XeroTaxCode,omitempty"`
	Guid          string               `json:"Guid"`
	SerialNumbers []SerialNumber       `json:"SerialNumbers,omitempty"`
	BatchNumbers  []BatchNumber        `json:"BatchNumbers,omitempty"`
}

type UpdatePayloadProduct struct {
	Guid        string `json:"Guid"`
	ProductCode string `json:"ProductCode"`
}

type SalespersonPayload struct {
	FullName string `json:"FullName"`
	Email    string `json:"Email"`
	Obsolete bool   `json:"Obsolete"`
	Guid     string `json:"Guid"`
}

type TaxPayload struct {
	TaxCode string  `json:"TaxCode"`
	TaxRate float64 `json:"TaxRate"`
}

type WarehousePayload struct {
	WarehouseCode string `json:"WarehouseCode"`
	Guid          string `json:"Guid"`
}
