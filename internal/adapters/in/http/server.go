// Package http provides the inbound HTTP adapter.
// It translates HTTP requests into commands and queries and maps domain
// failures to status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the shop API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler  commands.PlaceOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getMemberOrdersHandler queries.GetMemberOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getMemberOrdersHandler queries.GetMemberOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:      placeOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		getOrderHandler:        getOrderHandler,
		getMemberOrdersHandler: getMemberOrdersHandler,
	}
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the JSON body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	MemberID string `json:"member_id"`
	ItemID   string `json:"item_id"`
	Count    int    `json:"count"`
}

// PlaceOrderResponse is the JSON body returned for a placed order.
type PlaceOrderResponse struct {
	ID string `json:"id"`
}

// OrderResponse is the JSON representation of one order with its lines.
type OrderResponse struct {
	ID             string              `json:"id"`
	MemberName     string              `json:"member_name"`
	Status         string              `json:"status"`
	DeliveryStatus string              `json:"delivery_status"`
	OrderDate      time.Time           `json:"order_date"`
	TotalPrice     int                 `json:"total_price"`
	Lines          []OrderLineResponse `json:"lines"`
}

// OrderLineResponse is the JSON representation of one order line.
type OrderLineResponse struct {
	ItemID     string `json:"item_id"`
	ItemName   string `json:"item_name"`
	OrderPrice int    `json:"order_price"`
	Count      int    `json:"count"`
}

// MemberOrderResponse is the JSON representation of one order in a member's history.
type MemberOrderResponse struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	OrderDate  time.Time `json:"order_date"`
	TotalPrice int       `json:"total_price"`
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.PlaceOrder)
	e.POST("/api/v1/orders/:id/cancel", s.CancelOrder)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.GET("/api/v1/members/:id/orders", s.GetMemberOrders)
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	memberID, err := kernel.UUIDFromString(request.MemberID)
	if err != nil {
		return badRequest(ctx, "Invalid member id: "+err.Error())
	}

	itemID, err := kernel.UUIDFromString(request.ItemID)
	if err != nil {
		return badRequest(ctx, "Invalid item id: "+err.Error())
	}

	cmd, err := commands.NewPlaceOrderCommand(memberID, itemID, request.Count)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String()})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels a placed order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	lines := make([]OrderLineResponse, len(result.Lines))
	for i, line := range result.Lines {
		lines[i] = OrderLineResponse{
			ItemID:     line.ItemID.String(),
			ItemName:   line.ItemName,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:             result.ID.String(),
		MemberName:     result.MemberName,
		Status:         result.Status,
		DeliveryStatus: result.DeliveryStatus,
		OrderDate:      result.OrderDate,
		TotalPrice:     result.TotalPrice,
		Lines:          lines,
	})
}

// GetMemberOrders handles GET /api/v1/members/:id/orders - retrieves a member's
// order history, newest first.
func (s *Server) GetMemberOrders(ctx echo.Context) error {
	memberID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid member id: "+err.Error())
	}

	query, err := queries.NewGetMemberOrdersQuery(memberID)
	if err != nil {
		return badRequest(ctx, "Invalid member id: "+err.Error())
	}

	result, err := s.getMemberOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]MemberOrderResponse, len(result))
	for i, o := range result {
		response[i] = MemberOrderResponse{
			ID:         o.ID.String(),
			Status:     o.Status,
			OrderDate:  o.OrderDate,
			TotalPrice: o.TotalPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application failures to HTTP status codes: unresolved ids
// to 404, business conflicts (sold-out stock, illegal or repeated
// cancellation, concurrent stock updates) to 409, anything else to 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, item.ErrNotEnoughStock),
		errors.Is(err, order.ErrOrderAlreadyDelivered),
		errors.Is(err, order.ErrOrderAlreadyCancelled),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
