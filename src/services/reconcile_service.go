// src/services/reconcile_service.go
package services

import (
	"context"

	"github.com/username/shipsync/src/logger"
	"github.com/username/shipsync/src/models"
	"github.com/username/shipsync/src/utils"
)

type reconcileServiceImpl struct {
	orderService OrderService
}

func NewReconcileService(orderService OrderService) ReconcileService {
	return &reconcileServiceImpl{orderService: orderService}
}

// Reconcile walks the shipment records in input order and pairs each with at
// most one sales order by exact order number equality (first match in the
// order list wins). Matched orders get a signed status update; a failed
// update marks that record and moves on - one broken order must never stop
// the rest of the batch. Returns exactly one outcome per input record, in
// input order.
func (s *reconcileServiceImpl) Reconcile(ctx context.Context, shipments []models.ShipmentRecord, orders []models.SalesOrder, newStatus string) []models.ShipmentOutcome {
	outcomes := make([]models.ShipmentOutcome, 0, len(shipments))

	for _, record := range shipments {
		outcome := models.NewShipmentOutcome(record)

		matched, duplicates := findByOrderNumber(orders, record.SalesOrder)
		if matched == nil {
			logger.L.Info("No matching sales order for shipment record",
				"salesOrder", record.SalesOrder,
				"consignmentNumber", record.ConsignmentNumber)
			outcomes = append(outcomes, outcome)
			continue
		}
		if duplicates > 0 {
			// Upstream should never issue the same order number twice; keep
			// first-match behaviour but make the data problem visible.
			logger.L.Warn("Multiple sales orders share an order number; using the first",
				"orderNumber", record.SalesOrder, "duplicates", duplicates)
		}

		outcome.OrderDate = utils.NormalizeDate(matched.OrderDate)
		outcome.OrderTotal = matched.LineTotalSum()

		if err := s.orderService.UpdateOrderStatus(ctx, *matched, newStatus, record.ConsignmentNumber); err != nil {
			logger.L.Error("Failed to update sales order",
				"salesOrder", record.SalesOrder,
				"orderGuid", matched.Guid,
				"error", err)
			outcome.UploadStatus = models.StatusUpdateFailed
		} else {
			outcome.UploadStatus = models.StatusUpdated
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// findByOrderNumber returns the first order with the given number and how
// many further orders share it.
func findByOrderNumber(orders []models.SalesOrder, orderNumber string) (*models.SalesOrder, int) {
	var matched *models.SalesOrder
	duplicates := 0
	for i := range orders {
		if orders[i].OrderNumber != orderNumber {
			continue
		}
		if matched == nil {
			matched = &orders[i]
		} else {
			duplicates++
		}
	}
	return matched, duplicates
}
