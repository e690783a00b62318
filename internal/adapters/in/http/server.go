package http

import (
	"net/http"
	"strings"

	"kayakoyan/internal/core/application/usecases/commands"
	"kayakoyan/internal/core/application/usecases/queries"
	"kayakoyan/internal/core/domain/model/chat"
	"kayakoyan/internal/core/domain/model/kernel"
	"kayakoyan/internal/core/domain/model/listing"
	"kayakoyan/internal/core/domain/model/payment"
	"kayakoyan/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	RegisterUser    commands.RegisterUserCommandHandler
	CreateListing   commands.CreateListingCommandHandler
	PlaceOrder      commands.PlaceOrderCommandHandler
	SubmitPayment   commands.SubmitPaymentCommandHandler
	VerifyPayment   commands.VerifyPaymentCommandHandler
	OrderStatus     commands.OrderStatusCommandHandler
	SubmitDelivery  commands.SubmitDeliveryCommandHandler
	SendChatMessage commands.SendChatMessageCommandHandler

	// Query handlers
	AuthenticateUser       queries.AuthenticateUserQueryHandler
	GetOrder               queries.GetOrderQueryHandler
	ListOrderMessages      queries.ListOrderMessagesQueryHandler
	DownloadDigitalProduct queries.DownloadDigitalProductQueryHandler
	GetWorkerStats         queries.GetWorkerStatsQueryHandler
}

// Server adapts HTTP requests onto the application use cases.
type Server struct {
	handlers Handlers
	tokens   *TokenIssuer
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, tokens *TokenIssuer) *Server {
	return &Server{handlers: handlers, tokens: tokens}
}

// Register mounts the routes on e. Everything under /api/v1 needs a session
// token; role gates sit on the routes that only one side may call.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/login", s.Login)
	e.POST("/register", s.RegisterUser)

	api := e.Group("/api/v1", Authenticate(s.tokens))
	workers := RequireRoles(user.Worker.String())
	customers := RequireRoles(user.Customer.String())

	api.POST("/listings", s.CreateListing, workers)

	api.POST("/orders", s.PlaceOrder, customers)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/payments", s.SubmitPayment, customers)
	api.POST("/orders/:id/payment/verify", s.VerifyPayment, workers)
	api.POST("/orders/:id/start", s.StartWork, workers)
	api.POST("/orders/:id/deliveries", s.SubmitDelivery, workers)
	api.POST("/orders/:id/accept", s.AcceptOrder, customers)
	api.POST("/orders/:id/complete", s.CompleteOrder, workers)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/:id/messages", s.ListMessages)
	api.POST("/orders/:id/messages", s.SendMessage)
	api.GET("/orders/:id/download", s.Download, customers)

	api.GET("/workers/:id/stats", s.GetWorkerStats, RequireRoles(user.Worker.String(), user.Admin.String()))
}

func pathID(c echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(c.Param("id"))
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /login - exchanges credentials for a session token,
// also set as a cookie for browser clients.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	query := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	actor, err := s.handlers.AuthenticateUser.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.tokens.Issue(actor)
	if err != nil {
		return respondError(c, err)
	}
	c.SetCookie(&http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, LoginResponse{Token: token, Role: actor.Role().String()})
}

// RegisterUser handles POST /register - creates a worker or customer account.
func (s *Server) RegisterUser(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	role, ok := user.ParseRole(req.Role)
	if !ok {
		return badRequest(c, "Invalid role: "+req.Role)
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, req.Name, req.Email, req.Password, role)
	if err != nil {
		return respondError(c, err)
	}
	if err = s.handlers.RegisterUser.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: userID.String()})
}

// CreateListing handles POST /api/v1/listings.
func (s *Server) CreateListing(c echo.Context) error {
	actor, _ := actorFrom(c)

	var req NewListing
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	listingType, err := listing.ParseType(req.Type)
	if err != nil {
		return respondError(c, err)
	}
	price, err := kernel.MoneyFromString(strings.TrimSpace(req.Price))
	if err != nil {
		return respondError(c, err)
	}

	listingID := kernel.NewUUID()
	cmd, err := commands.NewCreateListingCommand(
		listingID, actor, listingType, req.Title, req.Description, price, req.Images, req.FilePath,
	)
	if err != nil {
		return respondError(c, err)
	}
	if err = s.handlers.CreateListing.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: listingID.String()})
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	actor, _ := actorFrom(c)

	var req NewOrder
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	listingID, err := kernel.UUIDFromString(req.ListingID)
	if err != nil {
		return respondError(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, actor, listingID)
	if err != nil {
		return respondError(c, err)
	}
	if err = s.handlers.PlaceOrder.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	actor, _ := actorFrom(c)
	orderID, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return respondError(c, err)
	}
	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := Order{
		ID:           o.ID.String(),
		CustomerID:   o.CustomerID.String(),
		WorkerID:     o.WorkerID.String(),
		ListingID:    o.ListingID.String(),
		ListingType:  o.ListingType,
		Status:       o.Status,
		NextStatuses: o.NextStatuses,
		TotalPrice:   o.TotalPrice,
		CreatedAt:    o.CreatedAt,
		CompletedAt:  o.CompletedAt,
	}
	if p := o.Payment; p != nil {
		response.Payment = &Payment{
			ID:              p.ID.String(),
			Method:          p.Method,
			Amount:          p.Amount,
			ReferenceNumber: p.ReferenceNumber,
			Status:          p.Status,
			CreatedAt:       p.CreatedAt,
		}
	}
	if d := o.Delivery; d != nil {
		response.Delivery = &Delivery{
			ID:        d.ID.String(),
			Notes:     d.Notes,
			Files:     d.Files,
			CreatedAt: d.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// SubmitPayment handles POST /api/v1/orders/:id/payments.
func (s *Server) SubmitPayment(c echo.Context) error {
	actor, _ := actorFrom(c)
	orderID, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req NewPayment
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	method, err := payment.ParseMethod(req.Method)
	if err != nil {
		return respondError(c, err)
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewSubmitPaymentCommand(paymentID, actor, orderID, method, req.ProofPath, req.ReferenceNumber)
	if err != nil {
		return respondError(c, err)
	}
	if err = s.handlers.SubmitPayment.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: paymentID.String()})
}

// VerifyPayment handles POST /api/v1/orders/:id/payment/verify.
func (s *Server) VerifyPayment(c echo.Context) error {
	actor, _ := actorFrom(c)
	orderID, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req PaymentReview
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewVerifyPaymentCommand(actor, orderID, req.Approve)
	if err != nil {
		return respondError(c, err)
	}
	if err = s.handlers.VerifyPayment.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type orderStatusCommandFactory func(user.Actor, kernel.UUID) (commands.OrderStatusCommand, error)

func (s *Server) changeStatus(c echo.Context, newCommand orderStatusCommandFactory) error {
	actor, _ := actorFrom(c)
	orderID, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := newCommand(actor, orderID)
	if err != nil {
		return respondError(c, err)
	}
	if err = s.handlers.OrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// StartWork handles POST /api/v1/orders/:id/start.
func (s *Server) StartWork(c echo.Context) error {
	return s.changeStatus(c, commands.NewStartWorkCommand)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(c echo.Context) error {
	return s.changeStatus(c, commands.NewAcceptOrderCommand)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	return s.changeStatus(c, commands.NewCompleteOrderCommand)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel. Both parties may call
// it; the cancel policy decides.
func (s *Server) CancelOrder(c echo.Context) error {
	return s.changeStatus(c, commands.NewCancelOrderCommand)
}

// SubmitDelivery handles POST /api/v1/orders/:id/deliveries.
func (s *Server) SubmitDelivery(c echo.Context) error {
	actor, _ := actorFrom(c)
	orderID, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req NewDelivery
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewSubmitDeliveryCommand(deliveryID, actor, orderID, req.Notes, req.Files)
	if err != nil {
		return respondError(c, err)
	}
	if err = s.handlers.SubmitDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// ListMessages handles GET /api/v1/orders/:id/messages.
func (s *Server) ListMessages(c echo.Context) error {
	actor, _ := actorFrom(c)
	orderID, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewListOrderMessagesQuery(actor, orderID)
	if err != nil {
		return respondError(c, err)
	}
	messages, err := s.handlers.ListOrderMessages.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	response := make([]Message, len(messages))
	for i, m := range messages {
		response[i] = Message{
			ID:         m.ID.String(),
			SenderID:   m.SenderID.String(),
			Type:       m.Type,
			Body:       m.Body,
			Attachment: m.Attachment,
			CreatedAt:  m.CreatedAt,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// SendMessage handles POST /api/v1/orders/:id/messages.
func (s *Server) SendMessage(c echo.Context) error {
	actor, _ := actorFrom(c)
	orderID, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req NewMessage
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Type == "" {
		req.Type = chat.Text.String()
	}
	messageType, err := chat.ParseMessageType(req.Type)
	if err != nil {
		return respondError(c, err)
	}

	messageID := kernel.NewUUID()
	cmd, err := commands.NewSendChatMessageCommand(messageID, actor, orderID, messageType, req.Body, req.Attachment)
	if err != nil {
		return respondError(c, err)
	}
	if err = s.handlers.SendChatMessage.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: messageID.String()})
}

// Download handles GET /api/v1/orders/:id/download.
func (s *Server) Download(c echo.Context) error {
	actor, _ := actorFrom(c)
	orderID, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewDownloadDigitalProductQuery(actor, orderID)
	if err != nil {
		return respondError(c, err)
	}
	product, err := s.handlers.DownloadDigitalProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Download{
		ListingID: product.ListingID.String(),
		Title:     product.Title,
		FilePath:  product.FilePath,
	})
}

// GetWorkerStats handles GET /api/v1/workers/:id/stats.
func (s *Server) GetWorkerStats(c echo.Context) error {
	actor, _ := actorFrom(c)
	workerID, err := pathID(c)
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetWorkerStatsQuery(actor, workerID)
	if err != nil {
		return respondError(c, err)
	}
	stats, err := s.handlers.GetWorkerStats.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, WorkerStats{
		WorkerID:       stats.WorkerID.String(),
		OrdersByStatus: stats.OrdersByStatus,
		ActiveOrders:   stats.ActiveOrders,
		Revenue:        stats.Revenue.StringFixed(2),
	})
}
