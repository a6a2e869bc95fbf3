package message

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"innkeep/infras/otel"
	"innkeep/internal/domains/message/model/dto"
	"innkeep/internal/domains/message/service"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/validator"
	"innkeep/transport/http/response"
)

type Handler struct {
	service service.Message
	otel    otel.Otel
}

func New(service service.Message, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/messages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.SendMessage)
		routerGroup.Get("/inbox", handler.GetInbox)
		routerGroup.Get("/sent", handler.GetSent)
		routerGroup.Get("/{id}", handler.GetMessageByID)
		routerGroup.Patch("/{id}/read", handler.MarkRead)
		routerGroup.Patch("/{id}/unread", handler.MarkUnread)
		routerGroup.Post("/{id}/reply", handler.ReplyMessage)
		routerGroup.Post("/{id}/forward", handler.ForwardMessage)
		routerGroup.Delete("/{id}", handler.DeleteMessage)
	})
}

func userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		return constant.Empty, failure.Unauthorized("unauthorized") // nolint:wrapcheck
	}

	return userID, nil
}

// SendMessage handles sending a new message.
// @Summary Send a message
// @Description Send a message from the authenticated user to another user.
// @Tags Message
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Send Message Request"
// @Success 201 {object} response.Data[dto.MessageResponse] "Message sent successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages [post]
// @Security BearerAuth
func (handler *Handler) SendMessage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMessage")
	defer scope.End()

	req := dto.SendMessageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Send(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send message")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Message sent successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetInbox retrieves messages received by the authenticated user.
// @Summary Get inbox
// @Description Retrieve messages received by the authenticated user.
// @Tags Message
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetMessagesResponse "List of received messages"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/inbox [get]
// @Security BearerAuth
func (handler *Handler) GetInbox(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInbox")
	defer scope.End()

	userID, err := userIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	messages, err := handler.service.Inbox(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inbox")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inbox retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, messages)
}

// GetSent retrieves messages sent by the authenticated user.
// @Summary Get sent messages
// @Description Retrieve messages sent by the authenticated user.
// @Tags Message
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetMessagesResponse "List of sent messages"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/sent [get]
// @Security BearerAuth
func (handler *Handler) GetSent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSent")
	defer scope.End()

	userID, err := userIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	messages, err := handler.service.Sent(ctx, queryParams, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sent messages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sent messages retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, messages)
}

// GetMessageByID retrieves a message by its ID.
// @Summary Get a message by ID
// @Description Retrieve a message by its unique identifier.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Data[dto.MessageResponse] "Message details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetMessageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	message, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get message by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Message retrieved successfully")

	response.WithJSON(w, http.StatusOK, message)
}

// MarkRead marks a message as read.
// @Summary Mark a message as read
// @Description Mark a message as read by its unique identifier.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Message "Message marked as read"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/{id}/read [patch]
// @Security BearerAuth
func (handler *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRead")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkRead(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark message as read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Message marked as read")

	response.WithMessage(w, http.StatusOK, "Message marked as read")
}

// MarkUnread marks a message as unread.
// @Summary Mark a message as unread
// @Description Mark a message as unread by its unique identifier.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Message "Message marked as unread"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/{id}/unread [patch]
// @Security BearerAuth
func (handler *Handler) MarkUnread(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkUnread")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkUnread(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark message as unread")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Message marked as unread")

	response.WithMessage(w, http.StatusOK, "Message marked as unread")
}

// ReplyMessage replies to an existing message.
// @Summary Reply to a message
// @Description Send a reply to an existing message, addressed to the given receiver.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body dto.ReplyMessageRequest true "Reply Message Request"
// @Success 201 {object} response.Data[dto.MessageResponse] "Reply sent successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/{id}/reply [post]
// @Security BearerAuth
func (handler *Handler) ReplyMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplyMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ReplyMessageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Reply(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reply to message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reply sent successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// ForwardMessage forwards an existing message to another user.
// @Summary Forward a message
// @Description Forward the content of an existing message to another user.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body dto.ForwardMessageRequest true "Forward Message Request"
// @Success 201 {object} response.Data[dto.MessageResponse] "Message forwarded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/{id}/forward [post]
// @Security BearerAuth
func (handler *Handler) ForwardMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ForwardMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ForwardMessageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Forward(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to forward message")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Message forwarded successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteMessage deletes a message by its ID.
// @Summary Delete a message by ID
// @Description Delete a message using its unique identifier.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} response.Message "Message deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/messages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMessage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete message")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Message deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Message deleted successfully")
}
