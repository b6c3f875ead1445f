// Package http exposes the fulfillment use cases over a REST API.
// Identity is resolved upstream; handlers trust the X-Caller-Id and
// X-Caller-Role headers and translate the error taxonomy of the core into
// HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/receipt"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerCallerID   = "X-Caller-Id"
	headerCallerRole = "X-Caller-Role"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateProduct          commands.CreateProductCommandHandler
	RemoveProduct          commands.RemoveProductCommandHandler
	RestockProduct         commands.RestockProductCommandHandler
	LinkProducts           commands.LinkProductsCommandHandler
	MergeStock             commands.MergeStockCommandHandler
	AddAlternateBarcode    commands.AddAlternateBarcodeCommandHandler
	RemoveAlternateBarcode commands.RemoveAlternateBarcodeCommandHandler
	CreateOrder            commands.CreateOrderCommandHandler
	ReplaceOrderLines      commands.ReplaceOrderLinesCommandHandler
	ChangeOrderState       commands.ChangeOrderStateCommandHandler
	CreateShipment         commands.CreateShipmentCommandHandler
	AssignCarrier          commands.AssignCarrierCommandHandler
	UpdateShipmentLocation commands.UpdateShipmentLocationCommandHandler
	ChangeShipmentState    commands.ChangeShipmentStateCommandHandler
	CreateReceipt          commands.CreateReceiptCommandHandler
	ConfirmReceipt         commands.ConfirmReceiptCommandHandler
	CreditStock            commands.CreditStockCommandHandler
	DepleteStock           commands.DepleteStockCommandHandler

	ResolveBarcode       queries.ResolveBarcodeQueryHandler
	ConsolidatedQuantity queries.ConsolidatedQuantityQueryHandler
	GetUndeliveredOrders queries.GetUndeliveredOrdersQueryHandler
	ListPersonalStock    queries.ListPersonalStockQueryHandler
	ListLedgerEntries    queries.ListLedgerEntriesQueryHandler
}

// Server dispatches HTTP requests to the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes binds every endpoint to the echo router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/products", s.CreateProduct)
	api.DELETE("/products/:productId", s.RemoveProduct)
	api.POST("/products/:productId/restock", s.RestockProduct)
	api.POST("/products/:productId/merge", s.MergeStock)
	api.POST("/products/:productId/alternate-barcodes", s.AddAlternateBarcode)
	api.DELETE("/alternate-barcodes/:aliasId", s.RemoveAlternateBarcode)
	api.POST("/product-links", s.LinkProducts)
	api.GET("/depots/:depotId/barcodes/:code", s.ResolveBarcode)
	api.GET("/products/:productId/consolidated-quantity", s.ConsolidatedQuantity)

	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:orderId/lines", s.ReplaceOrderLines)
	api.POST("/orders/:orderId/status", s.ChangeOrderState)
	api.GET("/orders/active", s.GetUndeliveredOrders)
	api.POST("/orders/:orderId/receipt", s.CreateReceipt)

	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/:shipmentId/carrier", s.AssignCarrier)
	api.POST("/shipments/:shipmentId/location", s.UpdateShipmentLocation)
	api.POST("/shipments/:shipmentId/status", s.ChangeShipmentState)

	api.POST("/receipts/confirm", s.ConfirmReceipt)

	api.POST("/stock/credit", s.CreditStock)
	api.POST("/stock/deplete", s.DepleteStock)
	api.GET("/stock", s.ListPersonalStock)
	api.GET("/ledger", s.ListLedgerEntries)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps the core error taxonomy to HTTP statuses. Unrecognised
// errors collapse to 500 without leaking internals to the client.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInsufficientStock):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// callerFromRequest derives the acting party from the identity headers.
func callerFromRequest(ctx echo.Context) (kernel.Caller, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerCallerID))
	if err != nil {
		return kernel.Caller{}, err
	}
	role, err := kernel.RoleFromString(ctx.Request().Header.Get(headerCallerRole))
	if err != nil {
		return kernel.Caller{}, err
	}
	return kernel.NewCaller(id, role)
}

func requireCaller(ctx echo.Context) (kernel.Caller, bool) {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		_ = ctx.JSON(http.StatusUnauthorized, errorResponse{
			Code:    http.StatusUnauthorized,
			Message: "caller identity is missing or invalid",
		})
		return kernel.Caller{}, false
	}
	return caller, true
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func optionalMoney(cents *int64) (*kernel.Money, error) {
	if cents == nil {
		return nil, nil
	}
	money, err := kernel.NewMoney(*cents)
	if err != nil {
		return nil, err
	}
	return &money, nil
}

type createProductRequest struct {
	DepotID        string `json:"depot_id"`
	Barcode        string `json:"barcode"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	UnitCostCents  *int64 `json:"unit_cost_cents,omitempty"`
	Category       string `json:"category,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
}

type createProductResponse struct {
	ID string `json:"id"`
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	var req createProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	depotID, err := kernel.UUIDFromString(req.DepotID)
	if err != nil {
		return badRequest(ctx, "invalid depot_id")
	}
	unitPrice, err := kernel.NewMoney(req.UnitPriceCents)
	if err != nil {
		return respondError(ctx, err)
	}
	unitCost, err := optionalMoney(req.UnitCostCents)
	if err != nil {
		return respondError(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		caller, productID, depotID,
		req.Barcode, req.Name, unitPrice, unitCost,
		req.Category, req.ImageURL,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createProductResponse{ID: productID.String()})
}

// RemoveProduct handles DELETE /api/v1/products/:productId.
func (s *Server) RemoveProduct(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewRemoveProductCommand(caller, productID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type restockProductRequest struct {
	Quantity int `json:"quantity"`
}

// RestockProduct handles POST /api/v1/products/:productId/restock.
func (s *Server) RestockProduct(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	var req restockProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRestockProductCommand(caller, productID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RestockProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type linkProductsRequest struct {
	DepotID string `json:"depot_id"`
	RefA    string `json:"ref_a"`
	RefB    string `json:"ref_b"`
}

// LinkProducts handles POST /api/v1/product-links. The refs accept either a
// product id or a barcode.
func (s *Server) LinkProducts(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	var req linkProductsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	depotID, err := kernel.UUIDFromString(req.DepotID)
	if err != nil {
		return badRequest(ctx, "invalid depot_id")
	}

	cmd, err := commands.NewLinkProductsCommand(caller, depotID, req.RefA, req.RefB)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.LinkProducts.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

type mergeStockRequest struct {
	AbsorbAll bool `json:"absorb_all"`
}

// MergeStock handles POST /api/v1/products/:productId/merge.
func (s *Server) MergeStock(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	var req mergeStockRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewMergeStockCommand(caller, productID, req.AbsorbAll)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.MergeStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type addAlternateBarcodeRequest struct {
	Code           string `json:"code"`
	CreditQuantity int    `json:"credit_quantity"`
}

// AddAlternateBarcode handles POST /api/v1/products/:productId/alternate-barcodes.
func (s *Server) AddAlternateBarcode(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	var req addAlternateBarcodeRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddAlternateBarcodeCommand(caller, productID, req.Code, req.CreditQuantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddAlternateBarcode.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveAlternateBarcode handles DELETE /api/v1/alternate-barcodes/:aliasId.
func (s *Server) RemoveAlternateBarcode(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	aliasID, err := pathUUID(ctx, "aliasId")
	if err != nil {
		return badRequest(ctx, "invalid alias id")
	}

	cmd, err := commands.NewRemoveAlternateBarcodeCommand(caller, aliasID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveAlternateBarcode.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type resolveBarcodeResponse struct {
	ProductID      string `json:"product_id"`
	Barcode        string `json:"barcode"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Category       string `json:"category,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
	QuantityOnHand int    `json:"quantity_on_hand"`
	ViaAlternate   bool   `json:"via_alternate"`
}

// ResolveBarcode handles GET /api/v1/depots/:depotId/barcodes/:code.
func (s *Server) ResolveBarcode(ctx echo.Context) error {
	depotID, err := pathUUID(ctx, "depotId")
	if err != nil {
		return badRequest(ctx, "invalid depot id")
	}

	query, err := queries.NewResolveBarcodeQuery(depotID, ctx.Param("code"))
	if err != nil {
		return respondError(ctx, err)
	}

	resolved, err := s.handlers.ResolveBarcode.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resolveBarcodeResponse{
		ProductID:      resolved.ProductID.String(),
		Barcode:        resolved.Barcode,
		Name:           resolved.Name,
		UnitPriceCents: resolved.UnitPriceCents,
		Category:       resolved.Category,
		ImageURL:       resolved.ImageURL,
		QuantityOnHand: resolved.QuantityOnHand,
		ViaAlternate:   resolved.ViaAlternate,
	})
}

type linkedProductResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

type consolidatedQuantityResponse struct {
	ProductID      string                  `json:"product_id"`
	OwnQuantity    int                     `json:"own_quantity"`
	TotalQuantity  int                     `json:"total_quantity"`
	LinkedProducts []linkedProductResponse `json:"linked_products"`
}

// ConsolidatedQuantity handles GET /api/v1/products/:productId/consolidated-quantity.
func (s *Server) ConsolidatedQuantity(ctx echo.Context) error {
	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	query, err := queries.NewConsolidatedQuantityQuery(productID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.ConsolidatedQuantity.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	linked := make([]linkedProductResponse, len(resp.LinkedProducts))
	for i, neighbour := range resp.LinkedProducts {
		linked[i] = linkedProductResponse{
			ProductID: neighbour.ProductID.String(),
			Name:      neighbour.Name,
			Quantity:  neighbour.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, consolidatedQuantityResponse{
		ProductID:      resp.ProductID.String(),
		OwnQuantity:    resp.OwnQuantity,
		TotalQuantity:  resp.TotalQuantity,
		LinkedProducts: linked,
	})
}

type orderLineRequest struct {
	ProductID      *string `json:"product_id,omitempty"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
}

type createOrderRequest struct {
	DepotID      string             `json:"depot_id"`
	DeliveryMode string             `json:"delivery_mode"`
	Address      string             `json:"address,omitempty"`
	Priority     int                `json:"priority"`
	Notes        string             `json:"notes,omitempty"`
	Lines        []orderLineRequest `json:"lines"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

func orderLinesFromRequest(reqLines []orderLineRequest) ([]commands.OrderLineInput, error) {
	lines := make([]commands.OrderLineInput, 0, len(reqLines))
	for _, reqLine := range reqLines {
		var productID *kernel.UUID
		if reqLine.ProductID != nil {
			id, err := kernel.UUIDFromString(*reqLine.ProductID)
			if err != nil {
				return nil, err
			}
			productID = &id
		}

		unitPrice, err := kernel.NewMoney(reqLine.UnitPriceCents)
		if err != nil {
			return nil, err
		}

		lines = append(lines, commands.OrderLineInput{
			ProductID: productID,
			Name:      reqLine.Name,
			Quantity:  reqLine.Quantity,
			UnitPrice: unitPrice,
		})
	}
	return lines, nil
}

// CreateOrder handles POST /api/v1/orders. The caller becomes the buyer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	depotID, err := kernel.UUIDFromString(req.DepotID)
	if err != nil {
		return badRequest(ctx, "invalid depot_id")
	}
	deliveryMode, err := order.DeliveryModeFromString(req.DeliveryMode)
	if err != nil {
		return respondError(ctx, err)
	}
	lines, err := orderLinesFromRequest(req.Lines)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		caller, orderID, depotID, deliveryMode,
		req.Address, req.Priority, req.Notes, lines,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{ID: orderID.String()})
}

type replaceOrderLinesRequest struct {
	Lines []orderLineRequest `json:"lines"`
}

// ReplaceOrderLines handles PUT /api/v1/orders/:orderId/lines.
func (s *Server) ReplaceOrderLines(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req replaceOrderLinesRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	lines, err := orderLinesFromRequest(req.Lines)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReplaceOrderLinesCommand(caller, orderID, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ReplaceOrderLines.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderState handles POST /api/v1/orders/:orderId/status.
func (s *Server) ChangeOrderState(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req changeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStateCommand(caller, orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ChangeOrderState.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type undeliveredOrderResponse struct {
	ID                  string     `json:"id"`
	SequenceNumber      int64      `json:"sequence_number"`
	BuyerID             string     `json:"buyer_id"`
	Status              string     `json:"status"`
	Priority            int        `json:"priority"`
	Address             string     `json:"address,omitempty"`
	EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at,omitempty"`
	TotalCents          int64      `json:"total_cents"`
}

// GetUndeliveredOrders handles GET /api/v1/orders/active.
func (s *Server) GetUndeliveredOrders(ctx echo.Context) error {
	query := queries.NewGetUndeliveredOrdersQuery()

	orders, err := s.handlers.GetUndeliveredOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]undeliveredOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = undeliveredOrderResponse{
			ID:                  o.ID.String(),
			SequenceNumber:      o.SequenceNumber,
			BuyerID:             o.BuyerID.String(),
			Status:              o.Status,
			Priority:            o.Priority,
			Address:             o.Address,
			EstimatedDeliveryAt: o.EstimatedDeliveryAt,
			TotalCents:          o.TotalCents,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type createShipmentRequest struct {
	OrderID   string  `json:"order_id"`
	CarrierID *string `json:"carrier_id,omitempty"`
	Vehicle   string  `json:"vehicle,omitempty"`
	Driver    string  `json:"driver,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

type createShipmentResponse struct {
	ID string `json:"id"`
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid order_id")
	}

	var carrierID *kernel.UUID
	if req.CarrierID != nil {
		id, idErr := kernel.UUIDFromString(*req.CarrierID)
		if idErr != nil {
			return badRequest(ctx, "invalid carrier_id")
		}
		carrierID = &id
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		caller, shipmentID, orderID, carrierID,
		req.Vehicle, req.Driver, req.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createShipmentResponse{ID: shipmentID.String()})
}

type assignCarrierRequest struct {
	CarrierID string `json:"carrier_id"`
	Vehicle   string `json:"vehicle,omitempty"`
	Driver    string `json:"driver,omitempty"`
}

// AssignCarrier handles POST /api/v1/shipments/:shipmentId/carrier.
func (s *Server) AssignCarrier(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	var req assignCarrierRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	carrierID, err := kernel.UUIDFromString(req.CarrierID)
	if err != nil {
		return badRequest(ctx, "invalid carrier_id")
	}

	cmd, err := commands.NewAssignCarrierCommand(caller, shipmentID, carrierID, req.Vehicle, req.Driver)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AssignCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type updateShipmentLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// UpdateShipmentLocation handles POST /api/v1/shipments/:shipmentId/location.
func (s *Server) UpdateShipmentLocation(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	var req updateShipmentLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	point, err := kernel.NewGeoPoint(req.Latitude, req.Longitude, req.Address, time.Now())
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentLocationCommand(caller, shipmentID, point)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateShipmentLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeShipmentState handles POST /api/v1/shipments/:shipmentId/status.
func (s *Server) ChangeShipmentState(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	var req changeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeShipmentStateCommand(caller, shipmentID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ChangeShipmentState.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type receiptLineResponse struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Barcode        string `json:"barcode,omitempty"`
	Category       string `json:"category,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
}

type receiptResponse struct {
	ID         string                `json:"id"`
	Code       string                `json:"code"`
	OrderID    string                `json:"order_id"`
	BuyerID    string                `json:"buyer_id"`
	TotalCents int64                 `json:"total_cents"`
	Confirmed  bool                  `json:"confirmed"`
	CreatedAt  time.Time             `json:"created_at"`
	Lines      []receiptLineResponse `json:"lines"`
}

func receiptToResponse(r *receipt.Receipt) receiptResponse {
	lines := make([]receiptLineResponse, 0, len(r.Lines()))
	for _, line := range r.Lines() {
		lines = append(lines, receiptLineResponse{
			Name:           line.Name(),
			Quantity:       line.Quantity(),
			UnitPriceCents: line.UnitPrice().Cents(),
			Barcode:        line.Barcode(),
			Category:       line.Category(),
			ImageURL:       line.ImageURL(),
		})
	}

	return receiptResponse{
		ID:         r.ID().String(),
		Code:       r.Code(),
		OrderID:    r.OrderID().String(),
		BuyerID:    r.BuyerID().String(),
		TotalCents: r.Total().Cents(),
		Confirmed:  r.IsConfirmed(),
		CreatedAt:  r.CreatedAt(),
		Lines:      lines,
	}
}

// CreateReceipt handles POST /api/v1/orders/:orderId/receipt. The operation
// is idempotent: repeating it returns the order's existing receipt.
func (s *Server) CreateReceipt(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCreateReceiptCommand(caller, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.handlers.CreateReceipt.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, receiptToResponse(created))
}

type confirmReceiptRequest struct {
	Code string `json:"code"`
}

// ConfirmReceipt handles POST /api/v1/receipts/confirm.
func (s *Server) ConfirmReceipt(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	var req confirmReceiptRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewConfirmReceiptCommand(caller, req.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ConfirmReceipt.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type creditStockRequest struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents *int64 `json:"unit_price_cents,omitempty"`
	Barcode        string `json:"barcode,omitempty"`
	Category       string `json:"category,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
}

// CreditStock handles POST /api/v1/stock/credit. Stock is always credited to
// the caller's own ledger.
func (s *Server) CreditStock(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	var req creditStockRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	unitPrice, err := optionalMoney(req.UnitPriceCents)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreditStockCommand(
		caller.ID(), req.Name, req.Quantity, unitPrice,
		req.Barcode, req.Category, req.ImageURL,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreditStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type depleteStockRequest struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents *int64 `json:"unit_price_cents,omitempty"`
}

// DepleteStock handles POST /api/v1/stock/deplete. Depletion always targets
// the caller's own ledger.
func (s *Server) DepleteStock(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	var req depleteStockRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	unitPriceOverride, err := optionalMoney(req.UnitPriceCents)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDepleteStockCommand(caller.ID(), req.Name, req.Quantity, unitPriceOverride)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DepleteStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type stockEntryResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents *int64    `json:"unit_price_cents,omitempty"`
	Barcode        string    `json:"barcode,omitempty"`
	Category       string    `json:"category,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListPersonalStock handles GET /api/v1/stock.
func (s *Server) ListPersonalStock(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewListPersonalStockQuery(caller.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.handlers.ListPersonalStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]stockEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = stockEntryResponse{
			ID:             entry.ID.String(),
			Name:           entry.Name,
			Quantity:       entry.Quantity,
			UnitPriceCents: entry.UnitPriceCents,
			Barcode:        entry.Barcode,
			Category:       entry.Category,
			ImageURL:       entry.ImageURL,
			CreatedAt:      entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type ledgerEntryResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	Description    string    `json:"description"`
	AmountCents    int64     `json:"amount_cents"`
	Category       string    `json:"category,omitempty"`
	RelatedOrderID *string   `json:"related_order_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ListLedgerEntries handles GET /api/v1/ledger.
func (s *Server) ListLedgerEntries(ctx echo.Context) error {
	caller, ok := requireCaller(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewListLedgerEntriesQuery(caller.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.handlers.ListLedgerEntries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ledgerEntryResponse, len(entries))
	for i, entry := range entries {
		resp := ledgerEntryResponse{
			ID:          entry.ID.String(),
			Kind:        entry.Kind,
			Description: entry.Description,
			AmountCents: entry.AmountCents,
			Category:    entry.Category,
			CreatedAt:   entry.CreatedAt,
		}
		if entry.RelatedOrderID != nil {
			orderID := entry.RelatedOrderID.String()
			resp.RelatedOrderID = &orderID
		}
		response[i] = resp
	}

	return ctx.JSON(http.StatusOK, response)
}
