package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"go.uber.org/zap"
)

type RoomService struct {
	engine   Availability
	rooms    RoomStore
	tx       Transactor
	recorder Recorder
	logger   *zap.Logger
}

func NewRoomService(engine Availability, rooms RoomStore, tx Transactor, recorder Recorder, logger *zap.Logger) *RoomService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &RoomService{
		engine:   engine,
		rooms:    rooms,
		tx:       tx,
		recorder: recorder,
		logger:   logger,
	}
}

func (s *RoomService) Rooms(ctx context.Context) ([]*model.Room, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, apperror.Storage("list rooms", err)
	}
	return rooms, nil
}

// Bookings брони зала на дату
func (s *RoomService) Bookings(ctx context.Context, roomNumber int64, date time.Time) ([]*model.RoomBooking, error) {
	room, err := s.rooms.GetByNumber(ctx, roomNumber)
	if err != nil {
		return nil, apperror.Storage("get room", err)
	}
	if room == nil {
		return nil, apperror.NotFound("room", roomNumber)
	}

	bookings, err := s.rooms.Bookings(ctx, roomNumber, date)
	if err != nil {
		return nil, apperror.Storage("list room bookings", err)
	}
	return bookings, nil
}

// BookRoom бронирует зал, если он свободен в этот интервал
func (s *RoomService) BookRoom(ctx context.Context, staffID, roomNumber int64, date time.Time, iv model.TimeInterval) (*model.RoomBooking, error) {
	booking := &model.RoomBooking{
		RoomNumber: roomNumber,
		Date:       date,
		Interval:   iv,
		StaffID:    staffID,
	}

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		room, err := s.rooms.GetByNumber(ctx, roomNumber)
		if err != nil {
			return apperror.Storage("get room", err)
		}
		if room == nil {
			return apperror.NotFound("room", roomNumber)
		}

		if err := s.engine.CheckRoom(ctx, roomNumber, date, iv); err != nil {
			return err
		}

		if err := s.rooms.CreateBooking(ctx, booking); err != nil {
			return apperror.Storage("create room booking", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to book room",
			zap.Int64("room", roomNumber),
			zap.Stringer("interval", iv),
			zap.Error(err))
		return nil, err
	}

	s.recorder.Booking(model.CommitmentRoomBooking)
	s.logger.Info("Room booked",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("room", roomNumber),
		zap.Int64("staff_id", staffID))
	return booking, nil
}

func (s *RoomService) RemoveBooking(ctx context.Context, bookingID int64) error {
	ok, err := s.rooms.DeleteBooking(ctx, bookingID)
	if err != nil {
		return apperror.Storage("delete room booking", err)
	}
	if !ok {
		return apperror.NotFound("room booking", bookingID)
	}

	s.logger.Info("Room booking removed", zap.Int64("booking_id", bookingID))
	return nil
}
