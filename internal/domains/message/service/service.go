package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/internal/domains/message/model"
	"innkeep/internal/domains/message/model/dto"
	"innkeep/internal/domains/message/repository"
	userModel "innkeep/internal/domains/user/model"
	userRepo "innkeep/internal/domains/user/repository"
	"innkeep/shared"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"
)

type Message interface {
	Send(ctx context.Context, req dto.SendMessageRequest) (dto.MessageResponse, error)
	Inbox(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetMessagesResponse, error)
	Sent(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetMessagesResponse, error)
	Get(ctx context.Context, id string) (dto.MessageResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkUnread(ctx context.Context, id string) error
	Reply(ctx context.Context, id string, req dto.ReplyMessageRequest) (dto.MessageResponse, error)
	Forward(ctx context.Context, id string, req dto.ForwardMessageRequest) (dto.MessageResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Message
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Message, userRepo userRepo.User, cfg *config.Config, otel otel.Otel) Message {
	return &serviceImpl{
		repo:     repo,
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func participantFilter(field, userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) checkReceiver(ctx context.Context, receiverID string) error {
	exists, err := s.userRepo.Exist(ctx, shared.FilterByID(receiverID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if receiver exists")

		return fmt.Errorf("failed to check if receiver exists: %w", err)
	}

	if !exists {
		return failure.BadRequestFromString("receiver does not exist") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) getMessage(ctx context.Context, id string) (model.Message, error) {
	message, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get message")

		return message, fmt.Errorf("failed to get message: %w", err)
	}

	if message.ID == constant.Empty {
		return message, failure.NotFound("message not found") // nolint:wrapcheck
	}

	return message, nil
}

func (s *serviceImpl) Send(ctx context.Context, req dto.SendMessageRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	senderID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.checkReceiver(ctx, req.ReceiverID); err != nil {
		return res, err
	}

	message := req.ToModel(senderID)

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to send message")

		return res, fmt.Errorf("failed to send message: %w", err)
	}

	res.FromModel(message)

	return res, nil
}

func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMessagesResponse, err error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count messages")

		return res, fmt.Errorf("failed to count messages: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get messages")

		return res, fmt.Errorf("failed to get messages: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Inbox(ctx context.Context, req gDto.QueryParams, userID string) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Inbox")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, req, participantFilter(model.FieldReceiverID, userID))
}

func (s *serviceImpl) Sent(ctx context.Context, req gDto.QueryParams, userID string) (res dto.GetMessagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Sent")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, req, participantFilter(model.FieldSenderID, userID))
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	message, err := s.getMessage(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(message)

	return res, nil
}

func (s *serviceImpl) setRead(ctx context.Context, id string, isRead bool) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if message exists")

		return fmt.Errorf("failed to check if message exists: %w", err)
	}

	if !exist {
		return failure.NotFound("message not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldIsRead:        isRead,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update message read state")

		return fmt.Errorf("failed to update message read state: %w", err)
	}

	return nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.setRead(ctx, id, true)
}

func (s *serviceImpl) MarkUnread(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkUnread")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.setRead(ctx, id, false)
}

// Reply creates a new message addressed to the requested receiver, usually
// the original sender. The replier is the original receiver.
func (s *serviceImpl) Reply(ctx context.Context, id string, req dto.ReplyMessageRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reply")
	defer scope.End()
	defer scope.TraceIfError(err)

	original, err := s.getMessage(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.checkReceiver(ctx, req.ReceiverID); err != nil {
		return res, err
	}

	reply := dto.SendMessageRequest{
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}

	message := reply.ToModel(original.ReceiverID)

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to send reply")

		return res, fmt.Errorf("failed to send reply: %w", err)
	}

	res.FromModel(message)

	return res, nil
}

// Forward creates a new message carrying the original content to a new
// receiver, sent by the caller.
func (s *serviceImpl) Forward(ctx context.Context, id string, req dto.ForwardMessageRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Forward")
	defer scope.End()
	defer scope.TraceIfError(err)

	senderID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	original, err := s.getMessage(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.checkReceiver(ctx, req.ReceiverID); err != nil {
		return res, err
	}

	forward := dto.SendMessageRequest{
		ReceiverID: req.ReceiverID,
		Content:    original.Content,
	}

	message := forward.ToModel(senderID)

	if err = s.repo.Insert(ctx, message); err != nil {
		log.Error().Err(err).Msg("failed to forward message")

		return res, fmt.Errorf("failed to forward message: %w", err)
	}

	res.FromModel(message)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if message exists")

		return fmt.Errorf("failed to check if message exists: %w", err)
	}

	if !exist {
		return failure.NotFound("message not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete message")

		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
