package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	messageMocks "innkeep/internal/domains/message/mocks"
	"innkeep/internal/domains/message/model"
	"innkeep/internal/domains/message/model/dto"
	"innkeep/internal/domains/message/service"
	userMocks "innkeep/internal/domains/user/mocks"
	"innkeep/shared/constant"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"
)

func TestMessageService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := messageMocks.NewMockMessage(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockUserRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.SendMessageRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful send",
			req: dto.SendMessageRequest{
				ReceiverID: "receiver-id",
				Content:    "hello",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "receiver does not exist",
			req: dto.SendMessageRequest{
				ReceiverID: "missing-receiver",
				Content:    "hello",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.SendMessageRequest{
				ReceiverID: "receiver-id",
				Content:    "hello",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "sender-id")
			result, err := svc.Send(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "sender-id", result.SenderID)
				assert.Equal(t, tt.req.ReceiverID, result.ReceiverID)
				assert.False(t, result.IsRead)
			}
		})
	}
}

func TestMessageService_Reply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := messageMocks.NewMockMessage(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockUserRepo, cfg, mockOtel)

	original := model.Message{
		ID:         "message-id",
		SenderID:   "alice",
		ReceiverID: "bob",
		Content:    "hello bob",
		SentAt:     timezone.Now(),
	}

	tests := []struct {
		name         string
		req          dto.ReplyMessageRequest
		setupMock    func()
		wantErr      bool
		wantReceiver string
	}{
		{
			name: "reply goes back to the original sender",
			req:  dto.ReplyMessageRequest{ReceiverID: "alice", Content: "hello alice"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(original, nil)

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:      false,
			wantReceiver: "alice",
		},
		{
			name: "reply redirected to a third party",
			req:  dto.ReplyMessageRequest{ReceiverID: "carol", Content: "hello carol"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(original, nil)

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:      false,
			wantReceiver: "carol",
		},
		{
			name: "receiver does not exist",
			req:  dto.ReplyMessageRequest{ReceiverID: "ghost", Content: "hello"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(original, nil)

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "message not found",
			req:  dto.ReplyMessageRequest{ReceiverID: "alice", Content: "hello alice"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Message{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Reply(ctx, "message-id", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "bob", result.SenderID)
				assert.Equal(t, tt.wantReceiver, result.ReceiverID)
				assert.Equal(t, tt.req.Content, result.Content)
			}
		})
	}
}

func TestMessageService_Forward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := messageMocks.NewMockMessage(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockUserRepo, cfg, mockOtel)

	original := model.Message{
		ID:         "message-id",
		SenderID:   "alice",
		ReceiverID: "bob",
		Content:    "hello bob",
		SentAt:     timezone.Now(),
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "forward carries the original content",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(original, nil)

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "receiver does not exist",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(original, nil)

				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "bob")
			result, err := svc.Forward(ctx, "message-id", dto.ForwardMessageRequest{ReceiverID: "carol"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "bob", result.SenderID)
				assert.Equal(t, "carol", result.ReceiverID)
				assert.Equal(t, "hello bob", result.Content)
			}
		})
	}
}

func TestMessageService_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := messageMocks.NewMockMessage(ctrl)
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockUserRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful mark read",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "message not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "bob")
			err := svc.MarkRead(ctx, "message-id")

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
