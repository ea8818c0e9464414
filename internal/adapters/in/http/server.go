// Package http is the inbound HTTP adapter: an echo server translating the
// REST surface into command and query handler calls.
package http

import (
	"errors"
	"net/http"

	"teashop/internal/core/application/usecases/commands"
	"teashop/internal/core/application/usecases/queries"
	"teashop/internal/core/domain/model/kernel"
	"teashop/internal/core/domain/model/order"
	"teashop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const sessionCookieName = "session"

// Headers carrying the externally verified identity. A real deployment puts
// an authenticating proxy in front that strips and re-asserts these.
const (
	headerAuthUsername = "X-Auth-Username"
	headerAuthName     = "X-Auth-Name"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	sessions *SessionStore

	// Command handlers
	updateCartHandler   commands.UpdateCartCommandHandler
	checkoutCartHandler commands.CheckoutCartCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler
	signInHandler       commands.SignInCommandHandler

	// Query handlers
	listInventoryHandler  queries.ListInventoryQueryHandler
	listOpenOrdersHandler queries.ListOpenOrdersQueryHandler
	getCustomerHandler    queries.GetCustomerQueryHandler
	getOperatorHandler    queries.GetOperatorQueryHandler
	getCartHandler        queries.GetCartQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	sessions *SessionStore,
	updateCartHandler commands.UpdateCartCommandHandler,
	checkoutCartHandler commands.CheckoutCartCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	signInHandler commands.SignInCommandHandler,
	listInventoryHandler queries.ListInventoryQueryHandler,
	listOpenOrdersHandler queries.ListOpenOrdersQueryHandler,
	getCustomerHandler queries.GetCustomerQueryHandler,
	getOperatorHandler queries.GetOperatorQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
) *Server {
	return &Server{
		sessions:              sessions,
		updateCartHandler:     updateCartHandler,
		checkoutCartHandler:   checkoutCartHandler,
		advanceOrderHandler:   advanceOrderHandler,
		signInHandler:         signInHandler,
		listInventoryHandler:  listInventoryHandler,
		listOpenOrdersHandler: listOpenOrdersHandler,
		getCustomerHandler:    getCustomerHandler,
		getOperatorHandler:    getOperatorHandler,
		getCartHandler:        getCartHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/inventory", s.GetInventory)
	api.GET("/orders", s.GetOrders)
	api.GET("/customer/:customerId", s.GetCustomer)
	api.GET("/operator/:operatorId", s.GetOperator)
	api.GET("/customer/:customerId/cart", s.GetCart)
	api.PUT("/customer/:customerId/update-cart", s.UpdateCart)
	api.POST("/customer/:customerId/checkout-cart", s.CheckoutCart)
	api.PUT("/order/:orderId", s.UpdateOrder)

	api.POST("/login", s.Login)
	api.POST("/logout", s.Logout)
	api.GET("/whoami", s.WhoAmI)
}

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Rating      float64 `json:"rating"`
}

type orderResponse struct {
	ID         string   `json:"id"`
	CustomerID string   `json:"customerId"`
	OperatorID *string  `json:"operatorId,omitempty"`
	ProductIDs []string `json:"productIds"`
	State      string   `json:"state"`
}

type customerResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Orders []orderResponse `json:"orders"`
}

type operatorResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Orders []orderResponse `json:"orders"`
}

type cartResponse struct {
	OrderID    string   `json:"orderId,omitempty"`
	CustomerID string   `json:"customerId"`
	ProductIDs []string `json:"productIds"`
}

type updateCartRequest struct {
	ProductIDs []string `json:"productIds"`
}

type updateOrderRequest struct {
	State      string `json:"state"`
	OperatorID string `json:"operatorId"`
}

type identityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// GetInventory handles GET /api/inventory - retrieves the product catalog.
func (s *Server) GetInventory(ctx echo.Context) error {
	products, err := s.listInventoryHandler.Handle(ctx.Request().Context(), queries.NewListInventoryQuery())
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]productResponse, len(products))
	for i, p := range products {
		response[i] = productResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			Rating:      p.Rating,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrders handles GET /api/orders - retrieves every order outside the cart state.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.listOpenOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOpenOrdersQuery())
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetCustomer handles GET /api/customer/:customerId - customer profile plus history.
func (s *Server) GetCustomer(ctx echo.Context) error {
	query, err := queries.NewGetCustomerQuery(ctx.Param("customerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerResponse{
		ID:     result.ID,
		Name:   result.Name,
		Orders: toOrderResponses(result.Orders),
	})
}

// GetOperator handles GET /api/operator/:operatorId - operator profile plus claimed orders.
func (s *Server) GetOperator(ctx echo.Context) error {
	query, err := queries.NewGetOperatorQuery(ctx.Param("operatorId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := s.getOperatorHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, operatorResponse{
		ID:     result.ID,
		Name:   result.Name,
		Orders: toOrderResponses(result.Orders),
	})
}

// GetCart handles GET /api/customer/:customerId/cart - the open cart or an empty stub.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(ctx.Param("customerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := cartResponse{
		CustomerID: result.CustomerID,
		ProductIDs: result.ProductIDs,
	}
	if result.OrderID != nil {
		response.OrderID = result.OrderID.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateCart handles PUT /api/customer/:customerId/update-cart - replaces cart contents.
func (s *Server) UpdateCart(ctx echo.Context) error {
	var request updateCartRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewUpdateCartCommand(ctx.Param("customerId"), request.ProductIDs)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := s.updateCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// CheckoutCart handles POST /api/customer/:customerId/checkout-cart - submits the cart.
func (s *Server) CheckoutCart(ctx echo.Context) error {
	cmd, err := commands.NewCheckoutCartCommand(ctx.Param("customerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := s.checkoutCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// UpdateOrder handles PUT /api/order/:orderId - operator claim and completion.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	var request updateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid order id"})
	}

	target, err := order.ParseState(request.State)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid state"})
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, target, request.OperatorID)
	if err != nil {
		if errors.Is(err, order.ErrInvalidTargetState) {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid state"})
		}
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// Login handles POST /api/login - resolves the asserted identity and opens a session.
func (s *Server) Login(ctx echo.Context) error {
	username := ctx.Request().Header.Get(headerAuthUsername)
	if username == "" {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthenticated"})
	}

	cmd, err := commands.NewSignInCommand(username, ctx.Request().Header.Get(headerAuthName))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := s.signInHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	identity := Identity{ID: result.ID, Name: result.Name, Role: result.Role}
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    s.sessions.Create(identity),
		Path:     "/",
		HttpOnly: true,
	})

	return ctx.JSON(http.StatusOK, identityResponse{
		ID:   identity.ID,
		Name: identity.Name,
		Role: string(identity.Role),
	})
}

// Logout handles POST /api/logout - drops the session if one exists.
func (s *Server) Logout(ctx echo.Context) error {
	if cookie, err := ctx.Cookie(sessionCookieName); err == nil {
		s.sessions.Delete(cookie.Value)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return ctx.JSON(http.StatusOK, statusResponse{Status: "ok"})
}

// WhoAmI handles GET /api/whoami - returns the session identity.
func (s *Server) WhoAmI(ctx echo.Context) error {
	cookie, err := ctx.Cookie(sessionCookieName)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthenticated"})
	}

	identity, ok := s.sessions.Get(cookie.Value)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthenticated"})
	}

	return ctx.JSON(http.StatusOK, identityResponse{
		ID:   identity.ID,
		Name: identity.Name,
		Role: string(identity.Role),
	})
}

// mapError translates application errors into HTTP responses. Rejections of
// the conditional updates deliberately reuse the source server's messages.
func (s *Server) mapError(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, commands.ErrNoActiveCart):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "no cart found"})
	case errors.Is(err, commands.ErrTransitionRejected):
		return ctx.JSON(http.StatusBadRequest,
			errorResponse{Error: "orderId does not exist or state change not allowed"})
	case errors.Is(err, order.ErrInvalidTargetState):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid state"})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func toOrderResponses(orders []queries.OrderResponse) []orderResponse {
	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse{
			ID:         o.ID.String(),
			CustomerID: o.CustomerID,
			OperatorID: o.OperatorID,
			ProductIDs: o.ProductIDs,
			State:      o.State,
		}
	}
	return response
}
