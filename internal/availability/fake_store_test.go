package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/model"
)

type key struct {
	kind string
	id   int64
	date string
}

type fakeStore struct {
	rows    map[key][]model.TimeInterval
	failOn  string
	nextID  int64
	inserts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[key][]model.TimeInterval)}
}

func (f *fakeStore) add(kind string, id int64, date time.Time, iv model.TimeInterval) {
	k := key{kind, id, date.Format(model.DateFormat)}
	f.rows[k] = append(f.rows[k], iv)
}

func (f *fakeStore) get(kind string, id int64, date time.Time) ([]model.TimeInterval, error) {
	if f.failOn == kind {
		return nil, fmt.Errorf("query %s: connection reset", kind)
	}
	return f.rows[key{kind, id, date.Format(model.DateFormat)}], nil
}

func (f *fakeStore) TrainerWindows(_ context.Context, id int64, date time.Time) ([]model.TimeInterval, error) {
	return f.get("window", id, date)
}

func (f *fakeStore) TrainerClasses(_ context.Context, id int64, date time.Time) ([]model.TimeInterval, error) {
	return f.get("trainer_class", id, date)
}

func (f *fakeStore) TrainerSessions(_ context.Context, id int64, date time.Time) ([]model.TimeInterval, error) {
	return f.get("trainer_session", id, date)
}

func (f *fakeStore) MemberClasses(_ context.Context, id int64, date time.Time) ([]model.TimeInterval, error) {
	return f.get("member_class", id, date)
}

func (f *fakeStore) MemberSessions(_ context.Context, id int64, date time.Time) ([]model.TimeInterval, error) {
	return f.get("member_session", id, date)
}

func (f *fakeStore) RoomBookings(_ context.Context, id int64, date time.Time) ([]model.TimeInterval, error) {
	return f.get("room", id, date)
}

func (f *fakeStore) InsertWindow(_ context.Context, w *model.AvailabilityWindow) error {
	if f.failOn == "insert" {
		return fmt.Errorf("insert window: connection reset")
	}
	f.nextID++
	f.inserts++
	w.ID = f.nextID
	f.add("window", w.TrainerID, w.Date, w.Interval)
	return nil
}

// bookSession имитирует запись персональной тренировки
func (f *fakeStore) bookSession(trainerID, memberID int64, date time.Time, iv model.TimeInterval) {
	f.add("trainer_session", trainerID, date, iv)
	f.add("member_session", memberID, date, iv)
}

type countingRecorder struct {
	counts map[string]int
}

func (r *countingRecorder) AvailabilityCheck(entity, result string) {
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	r.counts[entity+"/"+result]++
}
