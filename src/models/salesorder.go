package models

// SalesOrderPage is the paginated envelope the order management API wraps
// every list response in.
type SalesOrderPage struct {
	Pagination Pagination   `json:"Pagination"`
	Items      []SalesOrder `json:"Items"`
}

type Pagination struct {
	NumberOfItems int `json:"NumberOfItems"`
	PageSize      int `json:"PageSize"`
	PageNumber    int `json:"PageNumber"`
	NumberOfPages int `json:"NumberOfPages"`
}

// SalesOrder is the full order projection returned by the order management
// API. Date fields come back in the service's proprietary "/Date(ms)/" form
// and are kept as strings until something needs a real timestamp.
type SalesOrder struct {
	Guid                  string           `json:"Guid"`
	OrderNumber           string           `json:"OrderNumber"`
	OrderDate             string           `json:"OrderDate"`
	RequiredDate          string           `json:"RequiredDate"`
	CompletedDate         string           `json:"CompletedDate"`
	OrderStatus           string           `json:"OrderStatus"`
	CustomOrderStatus     string           `json:"CustomOrderStatus"`
	Customer              *Customer        `json:"Customer"`
	Warehouse             *Warehouse       `json:"Warehouse"`
	SalesOrderLines       []SalesOrderLine `json:"SalesOrderLines"`
	Comments              string           `json:"Comments"`
	CustomerRef           string           `json:"CustomerRef"`
	DeliveryContact       *DeliveryContact `json:"DeliveryContact"`
	DeliveryInstruction   string           `json:"DeliveryInstruction"`
	DeliveryMethod        string           `json:"DeliveryMethod"`
	DeliveryName          string           `json:"DeliveryName"`
	DeliveryCountry       string           `json:"DeliveryCountry"`
	DeliveryCity          string           `json:"DeliveryCity"`
	DeliverySuburb        string           `json:"DeliverySuburb"`
	DeliveryRegion        string           `json:"DeliveryRegion"`
	DeliveryPostCode      string           `json:"DeliveryPostCode"`
	DeliveryStreetAddress string           `json:"DeliveryStreetAddress"`
	DeliveryStreet2       string           `json:"DeliveryStreetAddress2"`
	ReceivedDate          string           `json:"ReceivedDate"`
	Currency              *Currency        `json:"Currency"`
	ExchangeRate          float64          `json:"ExchangeRate"`
	SubTotal              float64          `json:"SubTotal"`
	TaxRate               float64          `json:"TaxRate"`
	TaxTotal              float64          `json:"TaxTotal"`
	Total                 float64          `json:"Total"`
	DiscountRate          float64          `json:"DiscountRate"`
	Tax                   *Tax             `json:"Tax"`
	XeroTaxCode           string           `json:"XeroTaxCode"`
	AllocateProduct       bool             `json:"AllocateProduct"`
	SalesOrderGroup       string           `json:"SalesOrderGroup"`
	Salesperson           *Salesperson     `json:"Salesperson"`
	SourceID              string           `json:"SourceId"`
	CreatedBy             string           `json:"CreatedBy"`
	CreatedOn             string           `json:"CreatedOn"`
	LastModifiedBy        string           `json:"LastModifiedBy"`
	LastModifiedOn        string           `json:"LastModifiedOn"`
}

type SalesOrderLine struct {
	LineNumber    int            `json:"LineNumber"`
	LineType      string         `json:"LineType"`
	Product       Product        `json:"Product"`
	DueDate       string         `json:"DueDate"`
	OrderQuantity float64        `json:"OrderQuantity"`
	UnitPrice     float64        `json:"UnitPrice"`
	DiscountRate  float64        `json:"DiscountRate"`
	LineTotal     float64        `json:"LineTotal"`
	Comments      string         `json:"Comments"`
	TaxRate       float64        `json:"TaxRate"`
	LineTax       float64        `json:"LineTax"`
	XeroTaxCode   string         `json:"XeroTaxCode"`
	Guid          string         `json:"Guid"`
	SerialNumbers []SerialNumber `json:"SerialNumbers"`
	BatchNumbers  []BatchNumber  `json:"BatchNumbers"`
}

type Product struct {
	Guid               string `json:"Guid"`
	ProductCode        string `json:"ProductCode"`
	ProductDescription string `json:"ProductDescription"`
}

type SerialNumber struct {
	Identifier string `json:"Identifier"`
}

type BatchNumber struct {
	Number   string `json:"Number"`
	Quantity string `json:"Quantity"`
}

type Customer struct {
	CustomerCode string `json:"CustomerCode"`
	CustomerName string `json:"CustomerName"`
	CurrencyID   int    `json:"CurrencyId"`
	Guid         string `json:"Guid"`
}

type Warehouse struct {
	WarehouseCode string `json:"WarehouseCode"`
	WarehouseName string `json:"WarehouseName"`
	City          string `json:"City"`
	Country       string `json:"Country"`
	AddressLine1  string `json:"AddressLine1"`
	AddressLine2  string `json:"AddressLine2"`
	Suburb        string `json:"Suburb"`
	Region        string `json:"Region"`
	PostCode      string `json:"PostCode"`
	ContactName   string `json:"ContactName"`
	Guid          string `json:"Guid"`
}

type DeliveryContact struct {
	Guid      string `json:"Guid"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
}

type Currency struct {
	CurrencyCode string `json:"CurrencyCode"`
	Description  string `json:"Description"`
	Guid         string `json:"Guid"`
}

type Tax struct {
	TaxCode            string  `json:"TaxCode"`
	Description        string  `json:"Description"`
	TaxRate            float64 `json:"TaxRate"`
	CanApplyToExpenses bool    `json:"CanApplyToExpenses"`
	CanApplyToRevenue  bool    `json:"CanApplyToRevenue"`
	Obsolete           bool    `json:"Obsolete"`
	Guid               string  `json:"Guid"`
}

type Salesperson struct {
	FullName string `json:"FullName"`
	Email    string `json:"Email"`
	Obsolete bool   `json:"Obsolete"`
	Guid     string `json:"Guid"`
}

// LineTotalSum adds up the order's line totals. The header-level Total also
// carries tax, so reporting uses the line sum instead.
func (o *SalesOrder) LineTotalSum() float64 {
	var sum float64
	for _, line := range o.SalesOrderLines {
		sum += line.LineTotal
	}
	return sum
}
