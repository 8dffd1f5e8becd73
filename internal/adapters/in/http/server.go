// Package http exposes the ordering flow over a JSON REST API.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pratofit/internal/core/application/usecases/commands"
	"pratofit/internal/core/application/usecases/queries"
	"pratofit/internal/core/domain/model/checkout"
	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/core/ports"
	"pratofit/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	startSessionHandler       commands.StartSessionCommandHandler
	selectKitHandler          commands.SelectKitCommandHandler
	changeKitHandler          commands.ChangeKitCommandHandler
	addItemHandler            commands.AddItemCommandHandler
	adjustQuantityHandler     commands.AdjustQuantityCommandHandler
	clearCartHandler          commands.ClearCartCommandHandler
	lookupPostalCodeHandler   commands.LookupPostalCodeCommandHandler
	selectNeighborhoodHandler commands.SelectNeighborhoodCommandHandler
	setFulfillmentModeHandler commands.SetFulfillmentModeCommandHandler
	submitOrderHandler        commands.SubmitOrderCommandHandler
	askAssistantHandler       commands.AskAssistantCommandHandler

	// Query handlers
	getSessionHandler queries.GetSessionQueryHandler
	getCatalogHandler queries.GetCatalogQueryHandler
	getZonesHandler   queries.GetZonesQueryHandler
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(
	startSessionHandler commands.StartSessionCommandHandler,
	selectKitHandler commands.SelectKitCommandHandler,
	changeKitHandler commands.ChangeKitCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	adjustQuantityHandler commands.AdjustQuantityCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	lookupPostalCodeHandler commands.LookupPostalCodeCommandHandler,
	selectNeighborhoodHandler commands.SelectNeighborhoodCommandHandler,
	setFulfillmentModeHandler commands.SetFulfillmentModeCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	askAssistantHandler commands.AskAssistantCommandHandler,
	getSessionHandler queries.GetSessionQueryHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
	getZonesHandler queries.GetZonesQueryHandler,
) *Server {
	return &Server{
		startSessionHandler:       startSessionHandler,
		selectKitHandler:          selectKitHandler,
		changeKitHandler:          changeKitHandler,
		addItemHandler:            addItemHandler,
		adjustQuantityHandler:     adjustQuantityHandler,
		clearCartHandler:          clearCartHandler,
		lookupPostalCodeHandler:   lookupPostalCodeHandler,
		selectNeighborhoodHandler: selectNeighborhoodHandler,
		setFulfillmentModeHandler: setFulfillmentModeHandler,
		submitOrderHandler:        submitOrderHandler,
		askAssistantHandler:       askAssistantHandler,
		getSessionHandler:         getSessionHandler,
		getCatalogHandler:         getCatalogHandler,
		getZonesHandler:           getZonesHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/sessions", s.StartSession)
	api.GET("/sessions/:id", s.GetSession)
	api.GET("/catalog", s.GetCatalog)
	api.GET("/zones", s.GetZones)

	api.PUT("/sessions/:id/kit", s.SelectKit)
	api.POST("/sessions/:id/kit/change", s.ChangeKit)
	api.POST("/sessions/:id/cart/items", s.AddItem)
	api.PATCH("/sessions/:id/cart/items/:itemId", s.AdjustQuantity)
	api.POST("/sessions/:id/cart/clear", s.ClearCart)

	api.POST("/sessions/:id/checkout/postal-code", s.LookupPostalCode)
	api.PUT("/sessions/:id/checkout/neighborhood", s.SelectNeighborhood)
	api.PUT("/sessions/:id/checkout/mode", s.SetFulfillmentMode)
	api.POST("/sessions/:id/checkout/submit", s.SubmitOrder)

	api.POST("/chat", s.AskAssistant)
}

// StartSession handles POST /api/v1/sessions.
func (s *Server) StartSession(ctx echo.Context) error {
	id, err := s.startSessionHandler.Handle(ctx.Request().Context(), commands.NewStartSessionCommand())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SessionCreatedResponse{SessionID: id.String()})
}

// GetSession handles GET /api/v1/sessions/:id.
func (s *Server) GetSession(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetSessionQuery(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := SessionResponse{
		SessionID:     view.ID.String(),
		Lines:         make([]SessionLineResponse, 0, len(view.Lines)),
		TotalSelected: view.TotalSelected,
		Complete:      view.Complete,
		Mode:          view.Mode,
		Resolution:    view.Resolution,
		Neighborhood:  view.Neighborhood,
		Fee:           view.Fee.StringFixed(),
		Total:         view.Total.StringFixed(),
	}
	if view.Kit != nil {
		response.Kit = &SessionKitResponse{
			ID:           view.Kit.ID,
			Name:         view.Kit.Name,
			TotalMeals:   view.Kit.TotalMeals,
			Price:        view.Kit.Price.StringFixed(),
			PricePerMeal: view.Kit.PricePerMeal.StringFixed(),
		}
	}
	for _, line := range view.Lines {
		response.Lines = append(response.Lines, SessionLineResponse{
			ItemID:   line.ItemID,
			Title:    line.Title,
			Quantity: line.Quantity,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCatalog handles GET /api/v1/catalog. The optional "search" query
// parameter filters menu items by title or tag.
func (s *Server) GetCatalog(ctx echo.Context) error {
	query := queries.NewGetCatalogQuery(ctx.QueryParam("search"))

	catalog, err := s.getCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := CatalogResponse{
		Kits:       make([]KitResponse, 0, len(catalog.Kits)),
		Categories: make([]CategoryResponse, 0, len(catalog.Categories)),
	}
	for _, kit := range catalog.Kits {
		response.Kits = append(response.Kits, KitResponse{
			ID:           kit.ID(),
			Name:         kit.Name(),
			TotalMeals:   kit.TotalMeals(),
			Price:        kit.Price().StringFixed(),
			PricePerMeal: kit.PricePerMeal().StringFixed(),
			Description:  kit.Description(),
			Highlight:    kit.Highlight(),
		})
	}
	for _, category := range catalog.Categories {
		items := make([]MenuItemResponse, 0, len(category.Items))
		for _, item := range category.Items {
			items = append(items, MenuItemResponse{
				ID:          item.ID(),
				Title:       item.Title(),
				Description: item.Description(),
				Serving:     item.Serving(),
				ImageURL:    item.ImageURL(),
				Tags:        item.Tags(),
			})
		}
		response.Categories = append(response.Categories, CategoryResponse{
			Name:  category.Name,
			Items: items,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetZones handles GET /api/v1/zones.
func (s *Server) GetZones(ctx echo.Context) error {
	zones, err := s.getZonesHandler.Handle(ctx.Request().Context(), queries.NewGetZonesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := ZonesResponse{
		Zones: make([]ZoneResponse, 0, len(zones.Zones)),
		Pickup: PickupResponse{
			Address:  zones.Pickup.Address,
			City:     zones.Pickup.City,
			Hours:    zones.Pickup.Hours,
			MapsLink: zones.Pickup.MapsLink,
		},
	}
	for _, z := range zones.Zones {
		response.Zones = append(response.Zones, ZoneResponse{
			Label:         z.Label(),
			Fee:           z.Fee().StringFixed(),
			Neighborhoods: z.Neighborhoods(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// SelectKit handles PUT /api/v1/sessions/:id/kit.
func (s *Server) SelectKit(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request SelectKitRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSelectKitCommand(sessionID, request.KitID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.selectKitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeKit handles POST /api/v1/sessions/:id/kit/change. A non-empty cart
// without confirmation comes back as 409 with the prompt to show.
func (s *Server) ChangeKit(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request ConfirmRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeKitCommand(sessionID, request.Confirmed)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	confirmation, err := s.changeKitHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	if confirmation.Required {
		return ctx.JSON(http.StatusConflict, ConfirmationResponse{
			ConfirmationRequired: true,
			Prompt:               confirmation.Prompt,
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddItem handles POST /api/v1/sessions/:id/cart/items. A cart already at
// capacity answers 409 with the rejection signal.
func (s *Server) AddItem(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request AddItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddItemCommand(sessionID, request.ItemID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	signal, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.cartChanged(ctx, sessionID, signal.String(), signal.Rejected())
}

// AdjustQuantity handles PATCH /api/v1/sessions/:id/cart/items/:itemId.
func (s *Server) AdjustQuantity(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request AdjustQuantityRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdjustQuantityCommand(sessionID, ctx.Param("itemId"), request.Delta)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	signal, err := s.adjustQuantityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.cartChanged(ctx, sessionID, signal.String(), signal.Rejected())
}

// ClearCart handles POST /api/v1/sessions/:id/cart/clear.
func (s *Server) ClearCart(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request ConfirmRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewClearCartCommand(sessionID, request.Confirmed)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	confirmation, err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	if confirmation.Required {
		return ctx.JSON(http.StatusConflict, ConfirmationResponse{
			ConfirmationRequired: true,
			Prompt:               confirmation.Prompt,
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LookupPostalCode handles POST /api/v1/sessions/:id/checkout/postal-code.
func (s *Server) LookupPostalCode(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request PostalCodeRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLookupPostalCodeCommand(sessionID, request.PostalCode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.lookupPostalCodeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := LookupResponse{Performed: result.Performed}
	if result.Performed {
		response.Result = lookupResultName(result.Outcome.Result)
		response.Neighborhood = result.Outcome.Neighborhood
		response.ExternalNeighborhood = result.Outcome.ExternalNeighborhood
		response.Street = result.Outcome.Street
		response.Fee = result.Outcome.Fee.StringFixed()
	}

	return ctx.JSON(http.StatusOK, response)
}

// SelectNeighborhood handles PUT /api/v1/sessions/:id/checkout/neighborhood.
func (s *Server) SelectNeighborhood(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request NeighborhoodRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSelectNeighborhoodCommand(sessionID, request.Neighborhood)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.selectNeighborhoodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetFulfillmentMode handles PUT /api/v1/sessions/:id/checkout/mode.
func (s *Server) SetFulfillmentMode(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request ModeRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	mode, err := checkout.ParseMode(request.Mode)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetFulfillmentModeCommand(sessionID, mode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.setFulfillmentModeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitOrder handles POST /api/v1/sessions/:id/checkout/submit. Form
// violations answer 422 with the offending field names.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	sessionID, err := sessionID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request SubmitOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	payment, err := checkout.ParsePaymentMethod(request.Payment)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(sessionID, checkout.Draft{
		Name:        request.Name,
		Street:      request.Street,
		Number:      request.Number,
		PostalCode:  request.PostalCode,
		PickupTime:  request.PickupTime,
		Observation: request.Observation,
		Payment:     payment,
	})
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	if len(result.Violations) > 0 {
		violations := make([]string, 0, len(result.Violations))
		for _, field := range result.Violations {
			violations = append(violations, string(field))
		}
		return ctx.JSON(http.StatusUnprocessableEntity, ViolationsResponse{Violations: violations})
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		Message: result.Message,
		Link:    result.Link,
		Total:   result.Total.StringFixed(),
	})
}

// AskAssistant handles POST /api/v1/chat.
func (s *Server) AskAssistant(ctx echo.Context) error {
	var request ChatRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	transcript := make([]ports.ChatMessage, 0, len(request.History))
	for _, entry := range request.History {
		transcript = append(transcript, ports.ChatMessage{
			Role: ports.ChatRole(entry.Role),
			Text: entry.Text,
		})
	}

	cmd, err := commands.NewAskAssistantCommand(transcript, request.Message)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	reply, err := s.askAssistantHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

// cartChanged reads the session back and answers with the post-mutation
// cart counters. Rejections keep the same body but answer 409.
func (s *Server) cartChanged(ctx echo.Context, id kernel.UUID, signal string, rejected bool) error {
	query, err := queries.NewGetSessionQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	status := http.StatusOK
	if rejected {
		status = http.StatusConflict
	}

	return ctx.JSON(status, CartChangeResponse{
		Signal:        signal,
		TotalSelected: view.TotalSelected,
		Complete:      view.Complete,
	})
}

func sessionID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("session ID", err)
	}
	return id, nil
}

func lookupResultName(result checkout.LookupResult) string {
	switch result {
	case checkout.LookupMatched:
		return "matched"
	case checkout.LookupUnmatched:
		return "unmatched"
	default:
		return "notFound"
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors to transport status codes: unknown objects
// are 404, lookup races and incomplete orders are 409, invalid input is
// 400, everything else is 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, checkout.ErrLookupInFlight),
		errors.Is(err, checkout.ErrOrderIsIncomplete):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}
