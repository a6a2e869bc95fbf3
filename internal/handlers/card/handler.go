package card

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"innkeep/infras/otel"
	"innkeep/internal/domains/card/model"
	"innkeep/internal/domains/card/model/dto"
	"innkeep/internal/domains/card/service"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"
)

type Handler struct {
	service service.CreditCard
	otel    otel.Otel
}

func New(service service.CreditCard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cards", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCreditCard)
		routerGroup.Get("/", handler.GetCreditCards)
		routerGroup.Get("/{id}", handler.GetCreditCardByID)
		routerGroup.Patch("/{id}", handler.UpdateCreditCard)
		routerGroup.Delete("/{id}", handler.DeleteCreditCard)
	})
}

// CreateCreditCard handles the creation of a new credit card record.
// @Summary Create a new credit card
// @Description Store a credit card with its number masked down to the last four digits.
// @Tags CreditCard
// @Accept json
// @Produce json
// @Param request body dto.CreateCreditCardRequest true "Create Credit Card Request"
// @Success 201 {object} response.Data[dto.CreditCardResponse] "Credit card created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cards [post]
// @Security BearerAuth
func (handler *Handler) CreateCreditCard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCreditCard")
	defer scope.End()

	req := dto.CreateCreditCardRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create credit card")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Credit card created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetCreditCards retrieves all credit cards based on query parameters.
// @Summary Get all credit cards
// @Description Retrieve all credit cards with optional filtering and pagination.
// @Tags CreditCard
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param card_owner query string false "Filter by card owner"
// @Success 200 {object} dto.GetCreditCardsResponse "List of credit cards"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cards [get]
// @Security BearerAuth
func (handler *Handler) GetCreditCards(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCreditCards")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	cardOwner := r.URL.Query().Get(model.FieldCardOwner)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if cardOwner != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCardOwner,
			Operator: gDto.FilterOperatorLike,
			Value:    cardOwner,
			Table:    model.TableName,
		})
	}

	cards, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get credit cards")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Credit cards retrieved successfully")

	response.WithJSON(w, http.StatusOK, cards)
}

// GetCreditCardByID retrieves a credit card by its ID.
// @Summary Get a credit card by ID
// @Description Retrieve a credit card by its unique identifier.
// @Tags CreditCard
// @Accept json
// @Produce json
// @Param id path string true "Credit Card ID"
// @Success 200 {object} response.Data[dto.CreditCardResponse] "Credit card details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cards/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCreditCardByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCreditCardByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	card, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get credit card by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Credit card retrieved successfully")

	response.WithJSON(w, http.StatusOK, card)
}

// UpdateCreditCard updates an existing credit card by its ID.
// @Summary Update a credit card by ID
// @Description Update the owner of an existing credit card. Card numbers are immutable.
// @Tags CreditCard
// @Accept json
// @Produce json
// @Param id path string true "Credit Card ID"
// @Param request body dto.UpdateCreditCardRequest true "Update Credit Card Request"
// @Success 200 {object} response.Message "Credit card updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cards/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCreditCard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCreditCard")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCreditCardRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update credit card")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Credit card updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Credit card updated successfully")
}

// DeleteCreditCard deletes a credit card by its ID.
// @Summary Delete a credit card by ID
// @Description Delete a credit card using its unique identifier.
// @Tags CreditCard
// @Accept json
// @Produce json
// @Param id path string true "Credit Card ID"
// @Success 200 {object} response.Message "Credit card deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cards/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCreditCard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCreditCard")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete credit card")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Credit card deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Credit card deleted successfully")
}
