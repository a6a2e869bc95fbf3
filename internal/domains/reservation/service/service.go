package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"innkeep/config"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/internal/domains/reservation/model"
	"innkeep/internal/domains/reservation/model/dto"
	"innkeep/internal/domains/reservation/repository"
	roomModel "innkeep/internal/domains/room/model"
	roomRepo "innkeep/internal/domains/room/repository"
	"innkeep/shared"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	gDto "innkeep/shared/dto"
	"innkeep/shared/failure"
	"innkeep/shared/timezone"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.CreateReservationResponse, error)
	Validate(ctx context.Context, req dto.CreateReservationRequest) (dto.ValidateReservationResponse, error)
	Confirm(ctx context.Context, req dto.CreateReservationRequest) (dto.CreateReservationResponse, error)
	Extend(ctx context.Context, id string, req dto.ExtendReservationRequest) (dto.ExtendReservationResponse, error)
	CheckAvailability(ctx context.Context, roomID, startDate, endDate string) (dto.AvailabilityResponse, error)
	Quote(ctx context.Context, roomID, startDate, endDate string) (dto.QuoteResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Reservation
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
}

func New(repo repository.Reservation, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Reservation {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafka,
	}
}

// overlapFilter matches every reservation on the room whose range touches
// [start, end], bounds inclusive. excludeID drops the reservation itself
// when rechecking an extension.
func overlapFilter(roomID string, start, end time.Time, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldRoomID, Table: model.TableName, Operator: gDto.FilterOperatorEq, Value: roomID},
		gDto.Filter{Field: model.FieldEndDate, Table: model.TableName, Operator: gDto.FilterOperatorGreaterEq, Value: start},
		gDto.Filter{Field: model.FieldStartDate, Table: model.TableName, Operator: gDto.FilterOperatorLessEq, Value: end},
	}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldID,
			Table:    model.TableName,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
		})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

func checkDateOrder(start, end time.Time) error {
	if !start.Before(end) {
		return failure.BadRequestFromString("start date must be before end date") // nolint:wrapcheck
	}

	return nil
}

// totalCost prices the stay: nights by calendar day subtraction times the
// nightly rate, rounded to one decimal place.
func totalCost(price decimal.Decimal, start, end time.Time) (int, decimal.Decimal) {
	nights := timezone.DaysBetween(start, end)

	return nights, price.Mul(decimal.NewFromInt(int64(nights))).Round(1)
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeExclusionViolation
	}

	return false
}

func (s *serviceImpl) getRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, reservation model.Reservation) {
	if !s.cfg.Event.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.ReservationEvent{
			Type:          eventType,
			ReservationID: reservation.ID,
			RoomID:        reservation.RoomID,
			StartDate:     reservation.StartDate.Format(constant.DateOnlyFormat),
			EndDate:       reservation.EndDate.Format(constant.DateOnlyFormat),
			OccurredAt:    timezone.Now(),
		}

		if err := s.kafka.SendMessages(c, constant.TopicReservationEvents, kafka.Message{Key: reservation.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish reservation event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete reservation from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}

// reserve runs the availability check and the insert on one transaction so
// two requests for the same room and range cannot both pass the check. The
// daterange exclusion constraint in the store backs this up.
func (s *serviceImpl) reserve(ctx context.Context, room roomModel.Room, reservation model.Reservation) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reservation transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	conflict, err := s.repo.ExistTx(ctx, tx, overlapFilter(reservation.RoomID, reservation.StartDate, reservation.EndDate, constant.Empty))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return fmt.Errorf("failed to check room availability: %w", err)
	}

	if conflict {
		return failure.Conflict(fmt.Sprintf("room %s cannot be reserved for the requested dates", room.Number)) // nolint:wrapcheck
	}

	if err = s.repo.InsertTx(ctx, tx, reservation); err != nil {
		if isExclusionViolation(err) {
			return failure.Conflict(fmt.Sprintf("room %s cannot be reserved for the requested dates", room.Number)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to insert reservation")

		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		if isExclusionViolation(err) {
			return failure.Conflict(fmt.Sprintf("room %s cannot be reserved for the requested dates", room.Number)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to commit reservation")

		return fmt.Errorf("failed to commit reservation: %w", err)
	}

	return nil
}

func (s *serviceImpl) create(ctx context.Context, req dto.CreateReservationRequest, kind string) (res dto.CreateReservationResponse, roomNumber string, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := req.ToModel(user, kind, model.StatusConfirmed)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation dates")

		return res, roomNumber, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = checkDateOrder(reservation.StartDate, reservation.EndDate); err != nil {
		return res, roomNumber, err
	}

	room, err := s.getRoom(ctx, reservation.RoomID)
	if err != nil {
		return res, roomNumber, err
	}

	if err = s.reserve(ctx, room, reservation); err != nil {
		return res, roomNumber, err
	}

	_, cost := totalCost(room.PricePerNight, reservation.StartDate, reservation.EndDate)

	s.invalidate(ctx, constant.Empty)
	s.publishEvent(ctx, constant.EventReservationCreated, reservation)

	res.Reservation.FromModel(reservation)
	res.TotalCost = cost.StringFixed(1)

	return res, room.Number, nil
}

// Create books a regular reservation: validation and persistence in one step.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.CreateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, roomNumber, err := s.create(ctx, req, model.KindRegular)
	if err != nil {
		return res, err
	}

	res.Message = fmt.Sprintf("Regular reservation for room %s", roomNumber)

	return res, nil
}

// Validate runs the checks for a special reservation without persisting
// anything. Callers confirm explicitly.
func (s *serviceImpl) Validate(ctx context.Context, req dto.CreateReservationRequest) (res dto.ValidateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Validate")
	defer scope.End()
	defer scope.TraceIfError(err)

	startDate, err := timezone.ParseDate(req.StartDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	endDate, err := timezone.ParseDate(req.EndDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = checkDateOrder(startDate, endDate); err != nil {
		return res, err
	}

	room, err := s.getRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	conflict, err := s.repo.Exist(ctx, overlapFilter(req.RoomID, startDate, endDate, constant.Empty))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	if conflict {
		return res, failure.Conflict(fmt.Sprintf("room %s cannot be reserved for the requested dates", room.Number)) // nolint:wrapcheck
	}

	nights, cost := totalCost(room.PricePerNight, startDate, endDate)

	res = dto.ValidateReservationResponse{
		RoomID:    req.RoomID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    model.StatusValidated,
		Nights:    nights,
		TotalCost: cost.StringFixed(1),
	}

	return res, nil
}

// Confirm persists a special reservation that was previously validated.
func (s *serviceImpl) Confirm(ctx context.Context, req dto.CreateReservationRequest) (res dto.CreateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, roomNumber, err := s.create(ctx, req, model.KindSpecial)
	if err != nil {
		return res, err
	}

	res.Message = fmt.Sprintf("Special reservation for room %s", roomNumber)

	return res, nil
}

// Extend pushes the end date of a persisted reservation by the given number
// of days after rechecking the overlap rule against the extended window.
func (s *serviceImpl) Extend(ctx context.Context, id string, req dto.ExtendReservationRequest) (res dto.ExtendReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Extend")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	room, err := s.getRoom(ctx, reservation.RoomID)
	if err != nil {
		return res, err
	}

	newEndDate := reservation.EndDate.AddDate(0, 0, req.Days)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to begin extension transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	conflict, err := s.repo.ExistTx(ctx, tx, overlapFilter(reservation.RoomID, reservation.StartDate, newEndDate, reservation.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability for extension")

		return res, fmt.Errorf("failed to check room availability for extension: %w", err)
	}

	if conflict {
		return res, failure.Conflict(fmt.Sprintf("room %s cannot be reserved for the requested dates", room.Number)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldEndDate:       newEndDate,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if isExclusionViolation(err) {
			return res, failure.Conflict(fmt.Sprintf("room %s cannot be reserved for the requested dates", room.Number)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to extend reservation")

		return res, fmt.Errorf("failed to extend reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		if isExclusionViolation(err) {
			return res, failure.Conflict(fmt.Sprintf("room %s cannot be reserved for the requested dates", room.Number)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to commit extension")

		return res, fmt.Errorf("failed to commit extension: %w", err)
	}

	reservation.EndDate = newEndDate

	s.invalidate(ctx, id)
	s.publishEvent(ctx, constant.EventReservationExtended, reservation)

	res.Reservation.FromModel(reservation)
	res.Message = fmt.Sprintf("Extended reservation for room %s with %d days", room.Number, req.Days)

	return res, nil
}

// CheckAvailability reports whether the room is free over [start, end].
func (s *serviceImpl) CheckAvailability(ctx context.Context, roomID, startDate, endDate string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, err := timezone.ParseDate(startDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	end, err := timezone.ParseDate(endDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = checkDateOrder(start, end); err != nil {
		return res, err
	}

	if _, err = s.getRoom(ctx, roomID); err != nil {
		return res, err
	}

	conflict, err := s.repo.Exist(ctx, overlapFilter(roomID, start, end, constant.Empty))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	return dto.AvailabilityResponse{
		RoomID:    roomID,
		StartDate: startDate,
		EndDate:   endDate,
		Available: !conflict,
	}, nil
}

// Quote prices a stay without reserving anything.
func (s *serviceImpl) Quote(ctx context.Context, roomID, startDate, endDate string) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, err := timezone.ParseDate(startDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	end, err := timezone.ParseDate(endDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = checkDateOrder(start, end); err != nil {
		return res, err
	}

	room, err := s.getRoom(ctx, roomID)
	if err != nil {
		return res, err
	}

	nights, cost := totalCost(room.PricePerNight, start, end)

	return dto.QuoteResponse{
		RoomID:        roomID,
		Nights:        nights,
		PricePerNight: room.PricePerNight.StringFixed(2),
		TotalCost:     cost.StringFixed(1),
	}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		log.Error().Msg("reservation not found")

		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}
