package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"innkeep/config"
	"innkeep/infras/otel/mocks"
	reservationMocks "innkeep/internal/domains/reservation/mocks"
	"innkeep/internal/domains/reservation/model"
	"innkeep/internal/domains/reservation/model/dto"
	"innkeep/internal/domains/reservation/service"
	roomMocks "innkeep/internal/domains/room/mocks"
	roomModel "innkeep/internal/domains/room/model"
	cacheMocks "innkeep/shared/cache/mocks"
	"innkeep/shared/failure"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"
)

func TestReservationService_Validate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, nil)

	room := roomModel.Room{
		ID:            "room-id",
		Number:        "201",
		PricePerNight: decimal.NewFromInt(100),
	}

	tests := []struct {
		name       string
		req        dto.CreateReservationRequest
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantResult dto.ValidateReservationResponse
	}{
		{
			name: "successful validation",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartDate: "2026-03-01",
				EndDate:   "2026-03-06",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: false,
			wantResult: dto.ValidateReservationResponse{
				RoomID:    "room-id",
				StartDate: "2026-03-01",
				EndDate:   "2026-03-06",
				Status:    model.StatusValidated,
				Nights:    5,
				TotalCost: "500.0",
			},
		},
		{
			name: "overlapping reservation",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartDate: "2026-03-01",
				EndDate:   "2026-03-06",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "start date after end date",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartDate: "2026-03-06",
				EndDate:   "2026-03-01",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "start date equals end date",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartDate: "2026-03-01",
				EndDate:   "2026-03-01",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "invalid date format",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartDate: "01-03-2026",
				EndDate:   "2026-03-06",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room does not exist",
			req: dto.CreateReservationRequest{
				RoomID:    "missing-room",
				StartDate: "2026-03-01",
				EndDate:   "2026-03-06",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "availability check error",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartDate: "2026-03-01",
				EndDate:   "2026-03-06",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Validate(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult, result)
			}
		})
	}
}

func TestReservationService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, nil)

	tests := []struct {
		name       string
		startDate  string
		endDate    string
		setupMock  func()
		wantErr    bool
		wantResult dto.QuoteResponse
	}{
		{
			name:      "whole number rate",
			startDate: "2026-03-01",
			endDate:   "2026-03-04",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{
						ID:            "room-id",
						Number:        "201",
						PricePerNight: decimal.NewFromInt(100),
					}, nil)
			},
			wantErr: false,
			wantResult: dto.QuoteResponse{
				RoomID:        "room-id",
				Nights:        3,
				PricePerNight: "100.00",
				TotalCost:     "300.0",
			},
		},
		{
			name:      "fractional rate rounds to one decimal",
			startDate: "2026-03-01",
			endDate:   "2026-03-04",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{
						ID:            "room-id",
						Number:        "201",
						PricePerNight: decimal.RequireFromString("120.55"),
					}, nil)
			},
			wantErr: false,
			wantResult: dto.QuoteResponse{
				RoomID:        "room-id",
				Nights:        3,
				PricePerNight: "120.55",
				TotalCost:     "361.7",
			},
		},
		{
			name:      "room does not exist",
			startDate: "2026-03-01",
			endDate:   "2026-03-04",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name:      "invalid range",
			startDate: "2026-03-04",
			endDate:   "2026-03-01",
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Quote(ctx, "room-id", tt.startDate, tt.endDate)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult, result)
			}
		})
	}
}

func TestReservationService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, nil)

	room := roomModel.Room{
		ID:            "room-id",
		Number:        "201",
		PricePerNight: decimal.NewFromInt(100),
	}

	tests := []struct {
		name          string
		setupMock     func()
		wantErr       bool
		wantAvailable bool
	}{
		{
			name: "room is free",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:       false,
			wantAvailable: true,
		},
		{
			name: "room is taken",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:       false,
			wantAvailable: false,
		},
		{
			name: "availability check error",
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.CheckAvailability(ctx, "room-id", "2026-03-01", "2026-03-06")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantAvailable, result.Available)
			}
		})
	}
}

// newTx hands out a live transaction over a stub driver so the commit and
// rollback calls inside the service land on something real.
func newTx(t *testing.T) (*sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectBegin()

	tx, err := sqlx.NewDb(db, "sqlmock").Beginx()
	assert.NoError(t, err)

	return tx, mock
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, nil)

	room := roomModel.Room{
		ID:            "room-id",
		Number:        "201",
		PricePerNight: decimal.NewFromInt(100),
	}

	tests := []struct {
		name        string
		req         dto.CreateReservationRequest
		setupMock   func(t *testing.T)
		wantErr     bool
		wantCode    int
		wantMessage string
		wantCost    string
	}{
		{
			name: "successful creation",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartDate: "2026-03-01",
				EndDate:   "2026-03-06",
			},
			setupMock: func(t *testing.T) {
				tx, dbMock := newTx(t)
				dbMock.ExpectCommit()

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRepo.EXPECT().
					ExistTx(gomock.Any(), tx, gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:     false,
			wantMessage: "Regular reservation for room 201",
			wantCost:    "500.0",
		},
		{
			name: "overlapping reservation",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartDate: "2026-03-01",
				EndDate:   "2026-03-06",
			},
			setupMock: func(t *testing.T) {
				tx, dbMock := newTx(t)
				dbMock.ExpectRollback()

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRepo.EXPECT().
					ExistTx(gomock.Any(), tx, gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "exclusion constraint trips on insert",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartDate: "2026-03-01",
				EndDate:   "2026-03-06",
			},
			setupMock: func(t *testing.T) {
				tx, dbMock := newTx(t)
				dbMock.ExpectRollback()

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRepo.EXPECT().
					ExistTx(gomock.Any(), tx, gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(&pq.Error{Code: "23P01"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "start date after end date",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartDate: "2026-03-06",
				EndDate:   "2026-03-01",
			},
			setupMock: func(t *testing.T) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "invalid date format",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartDate: "March 1st",
				EndDate:   "2026-03-06",
			},
			setupMock: func(t *testing.T) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room does not exist",
			req: dto.CreateReservationRequest{
				RoomID:    "missing-room",
				StartDate: "2026-03-01",
				EndDate:   "2026-03-06",
			},
			setupMock: func(t *testing.T) {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock(t)

			ctx := context.Background()
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMessage, result.Message)
				assert.Equal(t, tt.wantCost, result.TotalCost)
			}
		})
	}
}

func TestReservationService_Extend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, nil)

	room := roomModel.Room{
		ID:            "room-id",
		Number:        "201",
		PricePerNight: decimal.NewFromInt(100),
	}

	startDate, _ := timezone.ParseDate("2026-03-01")
	endDate, _ := timezone.ParseDate("2026-03-06")

	reservation := model.Reservation{
		ID:        "reservation-id",
		RoomID:    "room-id",
		Kind:      model.KindRegular,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    model.StatusConfirmed,
	}

	tests := []struct {
		name        string
		setupMock   func(t *testing.T)
		wantErr     bool
		wantCode    int
		wantMessage string
	}{
		{
			name: "successful extension",
			setupMock: func(t *testing.T) {
				tx, dbMock := newTx(t)
				dbMock.ExpectCommit()

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRepo.EXPECT().
					ExistTx(gomock.Any(), tx, gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:     false,
			wantMessage: "Extended reservation for room 201 with 2 days",
		},
		{
			name: "conflicting extended window",
			setupMock: func(t *testing.T) {
				tx, dbMock := newTx(t)
				dbMock.ExpectRollback()

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRepo.EXPECT().
					ExistTx(gomock.Any(), tx, gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "exclusion constraint trips on update",
			setupMock: func(t *testing.T) {
				tx, dbMock := newTx(t)
				dbMock.ExpectRollback()

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(tx, nil)

				mockRepo.EXPECT().
					ExistTx(gomock.Any(), tx, gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23P01"})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "reservation not found",
			setupMock: func(t *testing.T) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(t *testing.T) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock(t)

			ctx := context.Background()
			result, err := svc.Extend(ctx, "reservation-id", dto.ExtendReservationRequest{Days: 2})

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMessage, result.Message)
			}
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, nil)

	startDate, _ := timezone.ParseDate("2026-03-01")
	endDate, _ := timezone.ParseDate("2026-03-06")

	reservation := model.Reservation{
		ID:        "reservation-id",
		RoomID:    "room-id",
		Kind:      model.KindRegular,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	tests := []struct {
		name       string
		id         string
		setupMock  func()
		wantErr    bool
		wantNights int
	}{
		{
			name: "cache hit",
			id:   "reservation-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "reservation-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservation, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantNights: 5,
		},
		{
			name: "reservation not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Get(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantNights != 0 {
					assert.Equal(t, tt.wantNights, result.Nights)
				}
			}
		})
	}
}

func TestReservationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, nil)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.Delete(ctx, "reservation-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
