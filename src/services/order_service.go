// src/services/order_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/shipsync/src/config"
	"github.com/username/shipsync/src/logger"
	"github.com/username/shipsync/src/models"
	"github.com/username/shipsync/src/security"
	"golang.org/x/time/rate"
)

const (
	orderPageCacheExpiration = 5 * time.Minute
	orderPageCacheCleanup    = 10 * time.Minute
)

// orderServiceImpl implements OrderService against the order management
// API's signed REST endpoints.
type orderServiceImpl struct {
	cfg        *config.AppConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	pageCache  *cache.Cache
}

// NewOrderService creates the API client. The remote service throttles
// aggressively, so all outbound calls share one client-side rate limiter.
func NewOrderService(cfg *config.AppConfig) OrderService {
	return &orderServiceImpl{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.OrderAPITimeout},
		limiter:    rate.NewLimiter(rate.Every(300*time.Millisecond), 3),
		pageCache:  cache.New(orderPageCacheExpiration, orderPageCacheCleanup),
	}
}

// FetchOrdersByStatus retrieves the first page of sales orders carrying the
// given custom status. The query string is built once and used verbatim for
// both the URL and the signature; re-encoding or reordering it would change
// the signed bytes and the API would reject the request.
func (s *orderServiceImpl) FetchOrdersByStatus(ctx context.Context, status string) ([]models.SalesOrder, error) {
	cacheKey := "orders_status_" + status
	if cached, found := s.pageCache.Get(cacheKey); found {
		logger.L.Debug("Serving sales orders from cache", "status", status)
		return cached.([]models.SalesOrder), nil
	}

	query := "CustomOrderStatus=" + status
	signature := security.GenerateSignature(query, s.cfg.OrderAPIKey)

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, &RemoteServiceError{Op: "fetch sales orders", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.OrderAPIURL+"?"+query, nil)
	if err != nil {
		return nil, &RemoteServiceError{Op: "fetch sales orders", Err: err}
	}
	s.setAuthHeaders(req, signature)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &RemoteServiceError{Op: "fetch sales orders", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RemoteServiceError{Op: "fetch sales orders", StatusCode: resp.StatusCode}
	}

	var page models.SalesOrderPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, &RemoteServiceError{Op: "decode sales order page", Err: err}
	}

	if page.Pagination.NumberOfPages > 1 {
		// Single-page contract: a batch this large loses orders until the
		// next run picks up the remainder.
		logger.L.Warn("Sales order result spans multiple pages; only the first page is processed",
			"status", status,
			"numberOfItems", page.Pagination.NumberOfItems,
			"numberOfPages", page.Pagination.NumberOfPages)
	}
	logger.L.Info("Retrieved sales orders", "status", status, "count", len(page.Items))

	s.pageCache.Set(cacheKey, page.Items, cache.DefaultExpiration)
	return page.Items, nil
}

// UpdateOrderStatus PUTs the allow-list payload to {base_url}/{guid}. The
// API signs PUT requests over the empty query string, not the URL path or
// body; that is the documented contract, not an omission.
func (s *orderServiceImpl) UpdateOrderStatus(ctx context.Context, order models.SalesOrder, newStatus, consignmentNumber string) error {
	payload := BuildUpdatePayload(order, newStatus, consignmentNumber)
	body, err := json.Marshal(payload)
	if err != nil {
		return &RemoteServiceError{Op: "encode order update payload", Err: err}
	}

	signature := security.GenerateSignature("", s.cfg.OrderAPIKey)

	if err := s.limiter.Wait(ctx); err != nil {
		return &RemoteServiceError{Op: "update sales order", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.cfg.OrderAPIURL+"/"+order.Guid, bytes.NewReader(body))
	if err != nil {
		return &RemoteServiceError{Op: "update sales order", Err: err}
	}
	s.setAuthHeaders(req, signature)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &RemoteServiceError{Op: "update sales order", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RemoteServiceError{Op: "update sales order", StatusCode: resp.StatusCode}
	}

	logger.L.Info("Sales order updated", "orderNumber", order.OrderNumber, "newStatus", newStatus)
	return nil
}

func (s *orderServiceImpl) setAuthHeaders(req *http.Request, signature string) {
	req.Header.Set("Content-Type", s.cfg.OrderContentType)
	req.Header.Set("Accept", s.cfg.OrderAccept)
	req.Header.Set("api-auth-id", s.cfg.OrderAPIID)
	req.Header.Set("api-auth-signature", signature)
	req.Header.Set("client-type", s.cfg.OrderClientType)
}
