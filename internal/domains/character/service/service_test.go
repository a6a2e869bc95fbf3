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
	characterMocks "innkeep/internal/domains/character/mocks"
	"innkeep/internal/domains/character/model"
	"innkeep/internal/domains/character/model/dto"
	"innkeep/internal/domains/character/service"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
)

func strPtr(s string) *string {
	return &s
}

func TestCharacterService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := characterMocks.NewMockCharacter(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateCharacterRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "mage with required attributes",
			req: dto.CreateCharacterRequest{
				Name:           "Jaina",
				Class:          model.ClassMage,
				ElementalPower: strPtr("frost"),
				SpellbookType:  strPtr("grimoire"),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "time mage inherits mage requirements",
			req: dto.CreateCharacterRequest{
				Name:           "Chronos",
				Class:          model.ClassTimeMage,
				ElementalPower: strPtr("arcane"),
				SpellbookType:  strPtr("codex"),
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "mage missing spellbook",
			req: dto.CreateCharacterRequest{
				Name:           "Jaina",
				Class:          model.ClassMage,
				ElementalPower: strPtr("frost"),
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown class",
			req: dto.CreateCharacterRequest{
				Name:  "Nameless",
				Class: "bard",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "necromancer with full kit",
			req: dto.CreateCharacterRequest{
				Name:             "Kel",
				Class:            model.ClassNecromancer,
				ElementalPower:   strPtr("shadow"),
				SpellbookType:    strPtr("tome"),
				RaiseDeadAbility: strPtr("mass raise"),
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateCharacterRequest{
				Name:           "Jaina",
				Class:          model.ClassMage,
				ElementalPower: strPtr("frost"),
				SpellbookType:  strPtr("grimoire"),
			},
			setupMock: func() {
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

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.req.Class, result.Class)
			}
		})
	}
}

func TestCharacterService_GetByClass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := characterMocks.NewMockCharacter(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		class     string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name:  "known class",
			class: model.ClassAssassin,
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Character{
						{ID: "a", Name: "Garona", Class: model.ClassAssassin},
						{ID: "b", Name: "Valeera", Class: model.ClassAssassin},
					}, nil)
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name:      "unknown class",
			class:     "bard",
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetByClass(ctx, gDto.QueryParams{Limit: 10, Page: 1}, tt.class)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestCharacterService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := characterMocks.NewMockCharacter(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	mage := model.Character{
		ID:             "character-id",
		Name:           "Jaina",
		Class:          model.ClassMage,
		ElementalPower: strPtr("frost"),
		SpellbookType:  strPtr("grimoire"),
	}

	tests := []struct {
		name      string
		req       dto.UpdateCharacterRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateCharacterRequest{Name: "Jaina Proudmoore"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(mage, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "blanking a required attribute",
			req:  dto.UpdateCharacterRequest{SpellbookType: strPtr("")},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(mage, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "empty update",
			req:  dto.UpdateCharacterRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(mage, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "character not found",
			req:  dto.UpdateCharacterRequest{Name: "Jaina Proudmoore"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Character{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "character-id")

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
