// Package http provides the inbound HTTP adapter for the fulfillment service.
// It translates JSON requests into commands and queries and maps domain
// errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest carries a postal address in request bodies.
// Latitude and longitude are optional; both must be present to take effect.
type AddressRequest struct {
	Line1      string   `json:"line1"`
	Line2      string   `json:"line2,omitempty"`
	City       string   `json:"city"`
	State      string   `json:"state,omitempty"`
	PostalCode string   `json:"postalCode"`
	Country    string   `json:"country"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// CreateFulfillmentRequest is the body of POST /api/v1/fulfillments.
type CreateFulfillmentRequest struct {
	OrderID             string          `json:"orderId"`
	OrderNumber         string          `json:"orderNumber,omitempty"`
	ShipTo              AddressRequest  `json:"shipTo"`
	WarehouseID         string          `json:"warehouseId,omitempty"`
	WarehouseAddress    *AddressRequest `json:"warehouseAddress,omitempty"`
	ShippingMethodID    string          `json:"shippingMethodId,omitempty"`
	CarrierID           string          `json:"carrierId,omitempty"`
	EstimatedDeliveryAt *time.Time      `json:"estimatedDeliveryAt,omitempty"`
}

// CreateFulfillmentResponse returns the identifier of the created fulfillment.
type CreateFulfillmentResponse struct {
	ID string `json:"id"`
}

// ShipFulfillmentRequest is the body of POST /api/v1/fulfillments/:id/ship.
type ShipFulfillmentRequest struct {
	TrackingNumber string `json:"trackingNumber"`
	TrackingURL    string `json:"trackingUrl,omitempty"`
	ShippedBy      string `json:"shippedBy,omitempty"`
}

// TrackingEventRequest is the body of POST /api/v1/fulfillments/:id/tracking-events.
type TrackingEventRequest struct {
	Status      string `json:"status"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// CancelFulfillmentRequest is the body of POST /api/v1/fulfillments/:id/cancel.
type CancelFulfillmentRequest struct {
	Reason string `json:"reason,omitempty"`
}

// FulfillmentSummary is one element of the active-fulfillments listing.
type FulfillmentSummary struct {
	ID                  string     `json:"id"`
	OrderID             string     `json:"orderId"`
	OrderNumber         string     `json:"orderNumber,omitempty"`
	Status              string     `json:"status"`
	TrackingNumber      string     `json:"trackingNumber,omitempty"`
	EstimatedDeliveryAt *time.Time `json:"estimatedDeliveryAt,omitempty"`
}

// LateFulfillmentSummary is one element of the late-fulfillments listing.
type LateFulfillmentSummary struct {
	ID                  string    `json:"id"`
	OrderNumber         string    `json:"orderNumber,omitempty"`
	Status              string    `json:"status"`
	TrackingNumber      string    `json:"trackingNumber,omitempty"`
	EstimatedDeliveryAt time.Time `json:"estimatedDeliveryAt"`
}

// TrackingEventResponse is one ledger entry in the tracking history.
type TrackingEventResponse struct {
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
}

// TrackingResponse is the body of GET /api/v1/fulfillments/:id/tracking.
type TrackingResponse struct {
	ID             string                  `json:"id"`
	Status         string                  `json:"status"`
	TrackingNumber string                  `json:"trackingNumber,omitempty"`
	TrackingURL    string                  `json:"trackingUrl,omitempty"`
	Events         []TrackingEventResponse `json:"events"`
}

// Server handles HTTP requests for the fulfillment service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createFulfillmentHandler   commands.CreateFulfillmentCommandHandler
	shipFulfillmentHandler     commands.ShipFulfillmentCommandHandler
	recordTrackingEventHandler commands.RecordTrackingEventCommandHandler
	cancelFulfillmentHandler   commands.CancelFulfillmentCommandHandler

	// Query handlers
	getActiveFulfillmentsHandler  queries.GetActiveFulfillmentsQueryHandler
	getFulfillmentTrackingHandler queries.GetFulfillmentTrackingQueryHandler
	getLateFulfillmentsHandler    queries.GetLateFulfillmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createFulfillmentHandler commands.CreateFulfillmentCommandHandler,
	shipFulfillmentHandler commands.ShipFulfillmentCommandHandler,
	recordTrackingEventHandler commands.RecordTrackingEventCommandHandler,
	cancelFulfillmentHandler commands.CancelFulfillmentCommandHandler,
	getActiveFulfillmentsHandler queries.GetActiveFulfillmentsQueryHandler,
	getFulfillmentTrackingHandler queries.GetFulfillmentTrackingQueryHandler,
	getLateFulfillmentsHandler queries.GetLateFulfillmentsQueryHandler,
) *Server {
	return &Server{
		createFulfillmentHandler:      createFulfillmentHandler,
		shipFulfillmentHandler:        shipFulfillmentHandler,
		recordTrackingEventHandler:    recordTrackingEventHandler,
		cancelFulfillmentHandler:      cancelFulfillmentHandler,
		getActiveFulfillmentsHandler:  getActiveFulfillmentsHandler,
		getFulfillmentTrackingHandler: getFulfillmentTrackingHandler,
		getLateFulfillmentsHandler:    getLateFulfillmentsHandler,
	}
}

// RegisterRoutes attaches all fulfillment endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/fulfillments", s.CreateFulfillment)
	api.GET("/fulfillments/active", s.GetActiveFulfillments)
	api.GET("/fulfillments/late", s.GetLateFulfillments)
	api.GET("/fulfillments/:id/tracking", s.GetFulfillmentTracking)
	api.POST("/fulfillments/:id/ship", s.ShipFulfillment)
	api.POST("/fulfillments/:id/tracking-events", s.RecordTrackingEvent)
	api.POST("/fulfillments/:id/cancel", s.CancelFulfillment)
}

// CreateFulfillment handles POST /api/v1/fulfillments.
func (s *Server) CreateFulfillment(ctx echo.Context) error {
	var req CreateFulfillmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	shipTo, err := addressFromRequest(req.ShipTo)
	if err != nil {
		return badRequest(ctx, "Invalid ship-to address: "+err.Error())
	}

	fulfillmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateFulfillmentCommand(fulfillmentID, orderID, req.OrderNumber, shipTo)
	if err != nil {
		return badRequest(ctx, "Invalid fulfillment data: "+err.Error())
	}

	if req.WarehouseID != "" && req.WarehouseAddress != nil {
		warehouseID, idErr := kernel.UUIDFromString(req.WarehouseID)
		if idErr != nil {
			return badRequest(ctx, "Invalid warehouse id: "+idErr.Error())
		}
		warehouseAddr, addrErr := addressFromRequest(*req.WarehouseAddress)
		if addrErr != nil {
			return badRequest(ctx, "Invalid warehouse address: "+addrErr.Error())
		}
		cmd, err = cmd.WithWarehouse(warehouseID, warehouseAddr)
		if err != nil {
			return badRequest(ctx, "Invalid warehouse data: "+err.Error())
		}
	}

	if req.ShippingMethodID != "" {
		shippingMethodID, idErr := kernel.UUIDFromString(req.ShippingMethodID)
		if idErr != nil {
			return badRequest(ctx, "Invalid shipping method id: "+idErr.Error())
		}
		var carrierID *kernel.UUID
		if req.CarrierID != "" {
			parsed, carrierErr := kernel.UUIDFromString(req.CarrierID)
			if carrierErr != nil {
				return badRequest(ctx, "Invalid carrier id: "+carrierErr.Error())
			}
			carrierID = &parsed
		}
		cmd, err = cmd.WithShippingMethod(shippingMethodID, carrierID)
		if err != nil {
			return badRequest(ctx, "Invalid shipping method data: "+err.Error())
		}
	}

	if req.EstimatedDeliveryAt != nil {
		cmd, err = cmd.WithEstimatedDelivery(*req.EstimatedDeliveryAt)
		if err != nil {
			return badRequest(ctx, "Invalid delivery estimate: "+err.Error())
		}
	}

	if err = s.createFulfillmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to create fulfillment")
	}

	return ctx.JSON(http.StatusCreated, CreateFulfillmentResponse{ID: fulfillmentID.String()})
}

// ShipFulfillment handles POST /api/v1/fulfillments/:id/ship.
func (s *Server) ShipFulfillment(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid fulfillment id: "+err.Error())
	}

	var req ShipFulfillmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewShipFulfillmentCommand(id, req.TrackingNumber, req.TrackingURL, req.ShippedBy)
	if err != nil {
		return badRequest(ctx, "Invalid shipping data: "+err.Error())
	}

	if err = s.shipFulfillmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to ship fulfillment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordTrackingEvent handles POST /api/v1/fulfillments/:id/tracking-events.
func (s *Server) RecordTrackingEvent(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid fulfillment id: "+err.Error())
	}

	var req TrackingEventRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordTrackingEventCommand(id, req.Status, req.Location, req.Description)
	if err != nil {
		return badRequest(ctx, "Invalid tracking event: "+err.Error())
	}

	if err = s.recordTrackingEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to record tracking event")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelFulfillment handles POST /api/v1/fulfillments/:id/cancel.
func (s *Server) CancelFulfillment(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid fulfillment id: "+err.Error())
	}

	var req CancelFulfillmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelFulfillmentCommand(id, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err = s.cancelFulfillmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err, "Failed to cancel fulfillment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveFulfillments handles GET /api/v1/fulfillments/active.
func (s *Server) GetActiveFulfillments(ctx echo.Context) error {
	query := queries.NewGetActiveFulfillmentsQuery()

	fulfillments, err := s.getActiveFulfillmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve fulfillments",
		})
	}

	response := make([]FulfillmentSummary, len(fulfillments))
	for i, f := range fulfillments {
		response[i] = FulfillmentSummary{
			ID:                  f.ID.String(),
			OrderID:             f.OrderID.String(),
			OrderNumber:         f.OrderNumber,
			Status:              f.Status,
			TrackingNumber:      f.TrackingNumber,
			EstimatedDeliveryAt: f.EstimatedDeliveryAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLateFulfillments handles GET /api/v1/fulfillments/late.
func (s *Server) GetLateFulfillments(ctx echo.Context) error {
	query := queries.NewGetLateFulfillmentsQuery()

	fulfillments, err := s.getLateFulfillmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve late fulfillments",
		})
	}

	response := make([]LateFulfillmentSummary, len(fulfillments))
	for i, f := range fulfillments {
		response[i] = LateFulfillmentSummary{
			ID:                  f.ID.String(),
			OrderNumber:         f.OrderNumber,
			Status:              f.Status,
			TrackingNumber:      f.TrackingNumber,
			EstimatedDeliveryAt: f.EstimatedDeliveryAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFulfillmentTracking handles GET /api/v1/fulfillments/:id/tracking.
func (s *Server) GetFulfillmentTracking(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid fulfillment id: "+err.Error())
	}

	query, err := queries.NewGetFulfillmentTrackingQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid tracking query: "+err.Error())
	}

	tracking, err := s.getFulfillmentTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve tracking")
	}

	events := make([]TrackingEventResponse, len(tracking.Events))
	for i, event := range tracking.Events {
		events[i] = TrackingEventResponse{
			Timestamp:   event.Timestamp,
			Status:      event.Status,
			Location:    event.Location,
			Description: event.Description,
		}
	}

	return ctx.JSON(http.StatusOK, TrackingResponse{
		ID:             tracking.ID.String(),
		Status:         tracking.Status,
		TrackingNumber: tracking.TrackingNumber,
		TrackingURL:    tracking.TrackingURL,
		Events:         events,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain failures onto HTTP statuses: missing aggregates
// become 404, stale versions and guarded transitions become 409.
func domainError(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: message + ": not found",
		})
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, commands.ErrOrderAlreadyFulfilled):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: message + ": " + err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}

func addressFromRequest(req AddressRequest) (kernel.Address, error) {
	if req.Latitude != nil && req.Longitude != nil {
		return kernel.NewAddressWithCoordinates(
			req.Line1, req.Line2, req.City, req.State, req.PostalCode, req.Country,
			*req.Latitude, *req.Longitude,
		)
	}

	return kernel.NewAddress(req.Line1, req.Line2, req.City, req.State, req.PostalCode, req.Country)
}
