package services

import (
	"encoding/json"
	"testing"

	"github.com/username/shipsync/src/models"
)

// The fields the update endpoint accepts. Anything outside this set is a
// contract violation, however harmless it looks.
var allowedPayloadFields = map[string]bool{
	"Comments": true, "CustomerRef": true,
	"DeliveryCity": true, "DeliveryCountry": true, "DeliveryInstruction": true,
	"DeliveryMethod": true, "DeliveryName": true, "DeliveryPostCode": true,
	"DeliveryRegion": true, "DeliveryStreetAddress": true,
	"DeliveryStreetAddress2": true, "DeliverySuburb": true,
	"DiscountRate": true, "ExchangeRate": true, "OrderStatus": true,
	"RequiredDate": true, "SalesOrderGroup": true, "SalesOrderLines": true,
	"Salesperson": true, "SourceId": true, "Tax": true, "Warehouse": true,
}

var allowedLineFields = map[string]bool{
	"LineNumber": true, "Product": true, "OrderQuantity": true,
	"UnitPrice": true, "LineTotal": true, "TaxRate": true, "LineTax": true,
	"XeroTaxCode": true, "Guid": true, "SerialNumbers": true, "BatchNumbers": true,
}

func fullSalesOrder() models.SalesOrder {
	return models.SalesOrder{
		Guid:                  "order-guid",
		OrderNumber:           "SO-100",
		OrderDate:             "/Date(1700000000000)/",
		RequiredDate:          "/Date(1700000000000)/",
		OrderStatus:           "Parked",
		Comments:              "original note",
		CustomerRef:           "PO-881",
		DeliveryCity:          "Auckland",
		DeliveryCountry:       "New Zealand",
		DeliveryInstruction:   "ring bell",
		DeliveryMethod:        "courier",
		DeliveryName:          "Main Depot",
		DeliveryPostCode:      "1010",
		DeliveryRegion:        "Auckland",
		DeliveryStreetAddress: "1 Queen St",
		DeliveryStreet2:       "Level 2",
		DeliverySuburb:        "CBD",
		DiscountRate:          0.1,
		ExchangeRate:          1.5,
		SubTotal:              200,
		Total:                 230,
		SalesOrderGroup:       "Web",
		SourceID:              "src-1",
		Customer:              &models.Customer{CustomerCode: "CUST", CustomerName: "Customer"},
		Salesperson:           &models.Salesperson{FullName: "Sam Seller", Email: "sam@example.com", Guid: "sp-guid"},
		Tax:                   &models.Tax{TaxCode: "GST", TaxRate: 0.15},
		Warehouse:             &models.Warehouse{WarehouseCode: "W1", WarehouseName: "Main", Guid: "wh-guid"},
		SalesOrderLines: []models.SalesOrderLine{
			{
				LineNumber:    1,
				LineType:      "Stock",
				Product:       models.Product{Guid: "p-guid", ProductCode: "SKU-9", ProductDescription: "Widget"},
				OrderQuantity: 4,
				UnitPrice:     50,
				LineTotal:     200,
				TaxRate:       0.15,
				LineTax:       30,
				XeroTaxCode:   "OUTPUT2",
				Guid:          "line-guid",
				Comments:      "line note",
				SerialNumbers: []models.SerialNumber{{Identifier: "SN-1"}},
				BatchNumbers:  []models.BatchNumber{{Number: "B-1", Quantity: "4"}},
			},
		},
	}
}

func TestBuildUpdatePayloadStaysWithinAllowList(t *testing.T) {
	payload := BuildUpdatePayload(fullSalesOrder(), "dispatched", "CN-55")

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(raw, &asMap); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	for field := range asMap {
		if !allowedPayloadFields[field] {
			t.Errorf("payload contains field outside the allow-list: %s", field)
		}
	}
	var lines []map[string]json.RawMessage
	if err := json.Unmarshal(asMap["SalesOrderLines"], &lines); err != nil {
		t.Fatalf("unmarshal lines: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	for field := range lines[0] {
		if !allowedLineFields[field] {
			t.Errorf("line payload contains field outside the allow-list: %s", field)
		}
	}
}

func TestBuildUpdatePayloadValues(t *testing.T) {
	payload := BuildUpdatePayload(fullSalesOrder(), "dispatched", "CN-55")

	if payload.OrderStatus != "dispatched" {
		t.Errorf("OrderStatus = %q, want dispatched", payload.OrderStatus)
	}
	if payload.Comments != "original note Consignment Number: CN-55" {
		t.Errorf("Comments = %q", payload.Comments)
	}
	if payload.RequiredDate != "2023-11-14T22:13:20Z" {
		t.Errorf("RequiredDate = %q, want normalized timestamp", payload.RequiredDate)
	}
	if payload.Salesperson == nil || payload.Salesperson.FullName != "Sam Seller" {
		t.Errorf("Salesperson not projected: %+v", payload.Salesperson)
	}
	if payload.Warehouse == nil || payload.Warehouse.WarehouseCode != "W1" {
		t.Errorf("Warehouse not projected: %+v", payload.Warehouse)
	}
	if payload.Tax == nil || payload.Tax.TaxCode != "GST" {
		t.Errorf("Tax not projected: %+v", payload.Tax)
	}
	line := payload.SalesOrderLines[0]
	if line.Product.ProductCode != "SKU-9" || line.Product.Guid != "p-guid" {
		t.Errorf("line product not projected: %+v", line.Product)
	}
	if len(line.SerialNumbers) != 1 || line.SerialNumbers[0].Identifier != "SN-1" {
		t.Errorf("serial numbers not carried over: %+v", line.SerialNumbers)
	}
}

func TestBuildUpdatePayloadEmptyComments(t *testing.T) {
	order := fullSalesOrder()
	order.Comments = ""
	payload := BuildUpdatePayload(order, "dispatched", "CN-9")
	if payload.Comments != "Consignment Number: CN-9" {
		t.Errorf("Comments = %q, want consignment note without leading separator", payload.Comments)
	}
}

func TestBuildUpdatePayloadNilSubObjects(t *testing.T) {
	order := fullSalesOrder()
	order.Salesperson = nil
	order.Tax = nil
	order.Warehouse = nil

	payload := BuildUpdatePayload(order, "dispatched", "CN-9")
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	var asMap map[string]json.RawMessage
	if err := json.Unmarshal(raw, &asMap); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	for _, field := range []string{"Salesperson", "Tax", "Warehouse"} {
		if _, present := asMap[field]; present {
			t.Errorf("nil sub-object %s serialized into the payload", field)
		}
	}
}

func TestBuildUpdatePayloadDoesNotMutateOrder(t *testing.T) {
	order := fullSalesOrder()
	originalComments := order.Comments
	_ = BuildUpdatePayload(order, "dispatched", "CN-1")
	if order.Comments != originalComments {
		t.Errorf("builder mutated the source order comments: %q", order.Comments)
	}
}
