// src/services/payload.go
package services

import (
	"fmt"

	"github.com/username/shipsync/src/models"
	"github.com/username/shipsync/src/utils"
)

// BuildUpdatePayload projects a full sales order down to the allow-list
// shape the API accepts on update. It appends the consignment number to the
// order's comments, sets the new status, and normalizes the required date.
// Pure: builds a fresh structure every call and never touches the input.
func BuildUpdatePayload(order models.SalesOrder, newStatus, consignmentNumber string) models.UpdatePayload {
	comments := fmt.Sprintf("Consignment Number: %s", consignmentNumber)
	if order.Comments != "" {
		comments = order.Comments + " " + comments
	}

	payload := models.UpdatePayload{
		Comments:              comments,
		CustomerRef:           order.CustomerRef,
		DeliveryCity:          order.DeliveryCity,
		DeliveryCountry:       order.DeliveryCountry,
		DeliveryInstruction:   order.DeliveryInstruction,
		DeliveryMethod:        order.DeliveryMethod,
		DeliveryName:          order.DeliveryName,
		DeliveryPostCode:      order.DeliveryPostCode,
		DeliveryRegion:        order.DeliveryRegion,
		DeliveryStreetAddress: order.DeliveryStreetAddress,
		DeliveryStreet2:       order.DeliveryStreet2,
		DeliverySuburb:        order.DeliverySuburb,
		DiscountRate:          order.DiscountRate,
		ExchangeRate:          order.ExchangeRate,
		OrderStatus:           newStatus,
		RequiredDate:          utils.NormalizeDate(order.RequiredDate),
		SalesOrderGroup:       order.SalesOrderGroup,
		SalesOrderLines:       buildPayloadLines(order.SalesOrderLines),
		SourceID:              order.SourceID,
	}

	if order.Salesperson != nil {
		payload.Salesperson = &models.SalespersonPayload{
			FullName: order.Salesperson.FullName,
			Email:    order.Salesperson.Email,
			Obsolete: order.Salesperson.Obsolete,
			Guid:     order.Salesperson.Guid,
		}
	}
	if order.Tax != nil {
		payload.Tax = &models.TaxPayload{
			TaxCode: order.Tax.TaxCode,
			TaxRate: order.Tax.TaxRate,
		}
	}
	if order.Warehouse != nil {
		payload.Warehouse = &models.WarehousePayload{
			WarehouseCode: order.Warehouse.WarehouseCode,
			Guid:          order.Warehouse.Guid,
		}
	}
	return payload
}

func buildPayloadLines(lines []models.SalesOrderLine) []models.UpdatePayloadLine {
	out := make([]models.UpdatePayloadLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, models.UpdatePayloadLine{
			LineNumber: line.LineNumber,
			Product: models.UpdatePayloadProduct{
				Guid:        line.Product.Guid,
				ProductCode: line.Product.ProductCode,
			},
			OrderQuantity: line.OrderQuantity,
			UnitPrice:     line.UnitPrice,
			LineTotal:     line.LineTotal,
			TaxRate:       line.TaxRate,
			LineTax:       line.LineTax,
			XeroTaxCode:   line.XeroTaxCode,
			Guid:          line.Guid,
			SerialNumbers: line.SerialNumbers,
			BatchNumbers:  line.BatchNumbers,
		})
	}
	return out
}
