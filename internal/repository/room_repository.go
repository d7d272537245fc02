package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository/base"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	*base.Repository
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{Repository: base.NewRepository(pool)}
}

// List все залы
func (r *RoomRepository) List(ctx context.Context) ([]*model.Room, error) {
	rows, err := r.Query(ctx, `SELECT room_number, room_name FROM rooms ORDER BY room_number`)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.Number, &room.Name); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, rows.Err()
}

// GetByNumber получает зал по номеру
func (r *RoomRepository) GetByNumber(ctx context.Context, number int64) (*model.Room, error) {
	var room model.Room
	err := r.QueryRow(ctx,
		`SELECT room_number, room_name FROM rooms WHERE room_number = $1`, number,
	).Scan(&room.Number, &room.Name)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return &room, nil
}

// Bookings брони зала на дату по времени начала
func (r *RoomRepository) Bookings(ctx context.Context, number int64, date time.Time) ([]*model.RoomBooking, error) {
	query := `
		SELECT id, room_number, booking_date, start_time, end_time, staff_id
		FROM room_bookings
		WHERE room_number = $1 AND booking_date = $2
		ORDER BY start_time
	`

	rows, err := r.Query(ctx, query, number, date)
	if err != nil {
		return nil, fmt.Errorf("get room bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.RoomBooking
	for rows.Next() {
		var b model.RoomBooking
		var start, end pgtype.Time
		if err := rows.Scan(&b.ID, &b.RoomNumber, &b.Date, &start, &end, &b.StaffID); err != nil {
			return nil, fmt.Errorf("scan room booking: %w", err)
		}
		b.Interval = model.NewTimeInterval(base.ClockFromPg(start), base.ClockFromPg(end))
		bookings = append(bookings, &b)
	}

	return bookings, rows.Err()
}

// CreateBooking бронирует зал
func (r *RoomRepository) CreateBooking(ctx context.Context, b *model.RoomBooking) error {
	query := `
		INSERT INTO room_bookings (room_number, booking_date, start_time, end_time, staff_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.QueryRow(ctx, query,
		b.RoomNumber,
		b.Date,
		base.ClockParam(b.Interval.Start),
		base.ClockParam(b.Interval.End),
		b.StaffID,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("create room booking: %w", err)
	}
	return nil
}

// DeleteBooking снимает бронь. Возвращает false, если брони нет
func (r *RoomRepository) DeleteBooking(ctx context.Context, id int64) (bool, error) {
	affected, err := r.ExecAffected(ctx, `DELETE FROM room_bookings WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete room booking: %w", err)
	}
	return affected > 0, nil
}
