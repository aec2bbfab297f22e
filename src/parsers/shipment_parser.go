// src/parsers/shipment_parser.go
package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/username/shipsync/src/models"
)

// ShipmentParser turns a dispatch CSV export into shipment records.
type ShipmentParser interface {
	Parse(file io.Reader) ([]models.ShipmentRecord, error)
}

type csvShipmentParser struct{}

func NewShipmentParser() ShipmentParser {
	return &csvShipmentParser{}
}

// Parse maps columns by header name, so the 3PL can reorder or add columns
// without breaking the import. Only the SalesOrder column is mandatory;
// missing optional columns simply leave their fields empty.
func (p *csvShipmentParser) Parse(file io.Reader) ([]models.ShipmentRecord, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			// Excel exports routinely carry a UTF-8 BOM on the first cell.
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		columns[strings.TrimSpace(name)] = i
	}
	if _, ok := columns["SalesOrder"]; !ok {
		return nil, fmt.Errorf("CSV is missing the required SalesOrder column (found: %s)", strings.Join(header, ", "))
	}

	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var records []models.ShipmentRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		records = append(records, models.ShipmentRecord{
			SalesOrder:          field(row, "SalesOrder"),
			CustomerOrderNumber: field(row, "CustomerOrderNumber"),
			ShipToContact:       field(row, "ShipToContact"),
			ShipToAdd1:          field(row, "ShipToAdd1"),
			ShipToAdd2:          field(row, "ShipToAdd2"),
			ShipToAdd3:          field(row, "ShipToAdd3"),
			ShipToSuburb:        field(row, "ShipToSuburb"),
			ShipToState:         field(row, "ShipToState"),
			ShipToPostCode:      field(row, "ShipToPostCode"),
			ShipToCountry:       field(row, "ShipToCountry"),
			CreatedDate:         field(row, "CreatedDate"),
			PickedDate:          field(row, "PickedDate"),
			DispatchedDate:      field(row, "DispatchedDate"),
			ConsignmentNumber:   field(row, "ConsignmentNumber"),
		})
	}
	return records, nil
}
