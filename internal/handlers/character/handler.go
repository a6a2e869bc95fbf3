package character

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"innkeep/infras/otel"
	"innkeep/internal/domains/character/model"
	"innkeep/internal/domains/character/model/dto"
	"innkeep/internal/domains/character/service"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"
)

type Handler struct {
	service service.Character
	otel    otel.Otel
}

func New(service service.Character, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/characters", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCharacter)
		routerGroup.Get("/", handler.GetCharacters)
		routerGroup.Get("/class/{class}", handler.GetCharactersByClass)
		routerGroup.Get("/{id}", handler.GetCharacterByID)
		routerGroup.Patch("/{id}", handler.UpdateCharacter)
		routerGroup.Delete("/{id}", handler.DeleteCharacter)
	})
}

// CreateCharacter handles the creation of a new character.
// @Summary Create a new character
// @Description Create a new character of a given class with its required attributes.
// @Tags Character
// @Accept json
// @Produce json
// @Param request body dto.CreateCharacterRequest true "Create Character Request"
// @Success 201 {object} response.Data[dto.CharacterResponse] "Character created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/characters [post]
// @Security BearerAuth
func (handler *Handler) CreateCharacter(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCharacter")
	defer scope.End()

	req := dto.CreateCharacterRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create character")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Character created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetCharacters retrieves all characters based on query parameters.
// @Summary Get all characters
// @Description Retrieve all characters with optional filtering and pagination.
// @Tags Character
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetCharactersResponse "List of characters"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/characters [get]
func (handler *Handler) GetCharacters(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCharacters")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	characters, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get characters")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Characters retrieved successfully")

	response.WithJSON(w, http.StatusOK, characters)
}

// GetCharactersByClass retrieves all characters of a given class.
// @Summary Get characters by class
// @Description Retrieve all characters belonging to the given class.
// @Tags Character
// @Accept json
// @Produce json
// @Param class path string true "Character class"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetCharactersResponse "List of characters"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/characters/class/{class} [get]
func (handler *Handler) GetCharactersByClass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCharactersByClass")
	defer scope.End()

	class := chi.URLParam(r, "class")

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	characters, err := handler.service.GetByClass(ctx, queryParams, class)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get characters by class")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Characters retrieved successfully for class " + class)

	response.WithJSON(w, http.StatusOK, characters)
}

// GetCharacterByID retrieves a character by its ID.
// @Summary Get a character by ID
// @Description Retrieve a character by its unique identifier.
// @Tags Character
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Success 200 {object} response.Data[dto.CharacterResponse] "Character details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/characters/{id} [get]
func (handler *Handler) GetCharacterByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCharacterByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	character, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get character by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Character retrieved successfully")

	response.WithJSON(w, http.StatusOK, character)
}

// UpdateCharacter updates an existing character by its ID.
// @Summary Update a character by ID
// @Description Update the details of an existing character, re-checking class attributes.
// @Tags Character
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Param request body dto.UpdateCharacterRequest true "Update Character Request"
// @Success 200 {object} response.Message "Character updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/characters/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCharacter(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCharacter")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCharacterRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update character")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Character updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Character updated successfully")
}

// DeleteCharacter deletes a character by its ID.
// @Summary Delete a character by ID
// @Description Delete a character using its unique identifier.
// @Tags Character
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Success 200 {object} response.Message "Character deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/characters/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCharacter")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete character")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Character deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Character deleted successfully")
}
