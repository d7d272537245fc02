package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var testDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func iv(startH, startM, endH, endM int) model.TimeInterval {
	return model.NewTimeInterval(model.NewClock(startH, startM), model.NewClock(endH, endM))
}

// inlineTx выполняет fn без транзакции и считает вызовы
type inlineTx struct {
	calls int
}

func (t *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type recorderSpy struct {
	bookings    []model.CommitmentKind
	transitions []model.BillStatus
}

func (r *recorderSpy) Booking(kind model.CommitmentKind)  { r.bookings = append(r.bookings, kind) }
func (r *recorderSpy) BillTransition(to model.BillStatus) { r.transitions = append(r.transitions, to) }

// fakeAvailability отвечает заранее заданными ошибками
type fakeAvailability struct {
	trainerErr  map[int64]error
	memberErr   error
	roomErr     error
	windowErr   error
	nextWindow  int64
	checkedRoom []int64
}

func newFakeAvailability() *fakeAvailability {
	return &fakeAvailability{trainerErr: map[int64]error{}}
}

func (f *fakeAvailability) CheckTrainer(_ context.Context, trainerID int64, _ time.Time, _ model.TimeInterval) error {
	return f.trainerErr[trainerID]
}

func (f *fakeAvailability) CheckMember(context.Context, int64, time.Time, model.TimeInterval) error {
	return f.memberErr
}

func (f *fakeAvailability) CheckRoom(_ context.Context, roomNumber int64, _ time.Time, _ model.TimeInterval) error {
	f.checkedRoom = append(f.checkedRoom, roomNumber)
	return f.roomErr
}

func (f *fakeAvailability) IsTrainerAvailable(ctx context.Context, trainerID int64, date time.Time, i model.TimeInterval) (bool, error) {
	err := f.CheckTrainer(ctx, trainerID, date, i)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperror.ErrConflict) {
		return false, nil
	}
	return false, err
}

func (f *fakeAvailability) RegisterAvailabilityWindow(_ context.Context, trainerID int64, date time.Time, i model.TimeInterval) (*model.AvailabilityWindow, error) {
	if f.windowErr != nil {
		return nil, f.windowErr
	}
	f.nextWindow++
	return &model.AvailabilityWindow{ID: f.nextWindow, TrainerID: trainerID, Date: date, Interval: i}, nil
}

type fakeMembers struct {
	byID    map[int64]*model.Member
	nextID  int64
	failErr error
}

func newFakeMembers(members ...*model.Member) *fakeMembers {
	f := &fakeMembers{byID: map[int64]*model.Member{}}
	for _, m := range members {
		f.byID[m.ID] = m
		if m.ID > f.nextID {
			f.nextID = m.ID
		}
	}
	return f
}

func (f *fakeMembers) Create(_ context.Context, m *model.Member) error {
	if f.failErr != nil {
		return f.failErr
	}
	for _, existing := range f.byID {
		if strings.EqualFold(existing.Email, m.Email) {
			return repository.ErrEmailTaken
		}
	}
	f.nextID++
	m.ID = f.nextID
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMembers) GetByID(_ context.Context, id int64) (*model.Member, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return f.byID[id], nil
}

func (f *fakeMembers) GetByCredentials(_ context.Context, email, password string) (*model.Member, error) {
	for _, m := range f.byID {
		if strings.EqualFold(m.Email, email) && m.Password == password {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMembers) FindByName(_ context.Context, firstName, lastName string) ([]*model.Member, error) {
	var out []*model.Member
	for _, m := range f.byID {
		if strings.EqualFold(m.FirstName, firstName) && strings.EqualFold(m.LastName, lastName) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMembers) UpdateField(_ context.Context, id int64, field model.PersonalField, value string) error {
	m, ok := f.byID[id]
	if !ok {
		return repository.ErrMemberNotFound
	}
	switch field {
	case model.FieldFirstName:
		m.FirstName = value
	case model.FieldLastName:
		m.LastName = value
	case model.FieldEmail:
		m.Email = value
	case model.FieldPassword:
		m.Password = value
	case model.FieldPhone:
		m.PhoneNumber = value
	}
	return nil
}

func (f *fakeMembers) UpdateHealthMetrics(_ context.Context, id int64, weight, bodyFat *float64) error {
	m, ok := f.byID[id]
	if !ok {
		return repository.ErrMemberNotFound
	}
	if weight != nil {
		m.WeightLbs = weight
	}
	if bodyFat != nil {
		m.BodyFatPercentage = bodyFat
	}
	return nil
}

type fakeAccounts struct {
	accounts []*model.Account
}

func (f *fakeAccounts) GetByCredentials(_ context.Context, t model.AccountType, email, password string) (*model.Account, error) {
	for _, a := range f.accounts {
		if a.Type == t && strings.EqualFold(a.Email, email) && a.Password == password {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccounts) GetTrainer(_ context.Context, id int64) (*model.Account, error) {
	for _, a := range f.accounts {
		if a.Type == model.AccountTrainer && a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccounts) Trainers(context.Context) ([]*model.Account, error) {
	var out []*model.Account
	for _, a := range f.accounts {
		if a.Type == model.AccountTrainer {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeGoals struct {
	goals  []*model.Goal
	nextID int64
}

func (f *fakeGoals) Create(_ context.Context, g *model.Goal) error {
	f.nextID++
	g.ID = f.nextID
	f.goals = append(f.goals, g)
	return nil
}

func (f *fakeGoals) GetByID(_ context.Context, memberID, goalID int64) (*model.Goal, error) {
	for _, g := range f.goals {
		if g.ID == goalID && g.MemberID == memberID {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGoals) ByMember(_ context.Context, memberID int64, achievedOnly bool) ([]*model.Goal, error) {
	var out []*model.Goal
	for _, g := range f.goals {
		if g.MemberID == memberID && (!achievedOnly || g.Achieved()) {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoals) MarkAchieved(_ context.Context, memberID, goalID int64, at time.Time) error {
	g, _ := f.GetByID(context.Background(), memberID, goalID)
	g.AchievedAt = &at
	return nil
}

type fakeRoutines struct {
	exercises []*model.Exercise
	routines  []*model.Routine
}

func (f *fakeRoutines) Exercises(context.Context) ([]*model.Exercise, error) {
	return f.exercises, nil
}

func (f *fakeRoutines) Create(_ context.Context, r *model.Routine) error {
	r.ID = int64(len(f.routines) + 1)
	f.routines = append(f.routines, r)
	return nil
}

func (f *fakeRoutines) ByMember(_ context.Context, memberID int64) ([]*model.Routine, error) {
	var out []*model.Routine
	for _, r := range f.routines {
		if r.MemberID == memberID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeClasses struct {
	classes  map[int64]*model.Class
	enrolled map[[2]int64]bool
	nextID   int64
}

func newFakeClasses(classes ...*model.Class) *fakeClasses {
	f := &fakeClasses{classes: map[int64]*model.Class{}, enrolled: map[[2]int64]bool{}}
	for _, c := range classes {
		f.classes[c.ID] = c
		if c.ID > f.nextID {
			f.nextID = c.ID
		}
	}
	return f
}

func (f *fakeClasses) Create(_ context.Context, c *model.Class) error {
	f.nextID++
	c.ID = f.nextID
	f.classes[c.ID] = c
	return nil
}

func (f *fakeClasses) GetByID(_ context.Context, id int64) (*model.Class, error) {
	return f.classes[id], nil
}

func (f *fakeClasses) List(_ context.Context, filter repository.ClassFilter) ([]*model.Class, error) {
	var out []*model.Class
	for id := int64(1); id <= f.nextID; id++ {
		c, ok := f.classes[id]
		if !ok {
			continue
		}
		if filter.MemberID != nil && !f.enrolled[[2]int64{*filter.MemberID, id}] {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClasses) Enroll(_ context.Context, memberID, classID int64) (bool, error) {
	key := [2]int64{memberID, classID}
	if f.enrolled[key] {
		return false, nil
	}
	f.enrolled[key] = true
	return true, nil
}

func (f *fakeClasses) Unenroll(_ context.Context, memberID, classID int64) (bool, error) {
	key := [2]int64{memberID, classID}
	if !f.enrolled[key] {
		return false, nil
	}
	delete(f.enrolled, key)
	return true, nil
}

func (f *fakeClasses) Delete(_ context.Context, classID int64) (bool, error) {
	if _, ok := f.classes[classID]; !ok {
		return false, nil
	}
	delete(f.classes, classID)
	for key := range f.enrolled {
		if key[1] == classID {
			delete(f.enrolled, key)
		}
	}
	return true, nil
}

type fakeSessions struct {
	sessions []*model.PersonalTrainingSession
}

func (f *fakeSessions) Create(_ context.Context, s *model.PersonalTrainingSession) error {
	s.ID = int64(len(f.sessions) + 1)
	f.sessions = append(f.sessions, s)
	return nil
}

func (f *fakeSessions) ByMember(_ context.Context, memberID int64) ([]*model.PersonalTrainingSession, error) {
	var out []*model.PersonalTrainingSession
	for _, s := range f.sessions {
		if s.MemberID == memberID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessions) Delete(_ context.Context, memberID, sessionID int64) (bool, error) {
	for i, s := range f.sessions {
		if s.ID == sessionID && s.MemberID == memberID {
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeWindows struct {
	windows []*model.AvailabilityWindow
}

func (f *fakeWindows) ListWindows(_ context.Context, trainerID *int64, date *time.Time) ([]*model.AvailabilityWindow, error) {
	var out []*model.AvailabilityWindow
	for _, w := range f.windows {
		if trainerID != nil && w.TrainerID != *trainerID {
			continue
		}
		if date != nil && !w.Date.Equal(*date) {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (f *fakeWindows) DeleteWindow(_ context.Context, trainerID, windowID int64) (bool, error) {
	for i, w := range f.windows {
		if w.ID == windowID && w.TrainerID == trainerID {
			f.windows = append(f.windows[:i], f.windows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeRooms struct {
	rooms    []*model.Room
	bookings []*model.RoomBooking
}

func (f *fakeRooms) List(context.Context) ([]*model.Room, error) { return f.rooms, nil }

func (f *fakeRooms) GetByNumber(_ context.Context, number int64) (*model.Room, error) {
	for _, r := range f.rooms {
		if r.Number == number {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRooms) Bookings(_ context.Context, number int64, date time.Time) ([]*model.RoomBooking, error) {
	var out []*model.RoomBooking
	for _, b := range f.bookings {
		if b.RoomNumber == number && b.Date.Equal(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRooms) CreateBooking(_ context.Context, b *model.RoomBooking) error {
	b.ID = int64(len(f.bookings) + 1)
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeRooms) DeleteBooking(_ context.Context, id int64) (bool, error) {
	for i, b := range f.bookings {
		if b.ID == id {
			f.bookings = append(f.bookings[:i], f.bookings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeEquipment struct {
	items   map[int64]*model.Equipment
	records []*model.MaintenanceRecord
}

func (f *fakeEquipment) List(context.Context) ([]*model.Equipment, error) {
	var out []*model.Equipment
	for _, e := range f.items {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEquipment) GetByID(_ context.Context, id int64) (*model.Equipment, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEquipment) StartMaintenance(_ context.Context, id int64) (*model.MaintenanceRecord, error) {
	f.items[id].UnderMaintenance = true
	rec := &model.MaintenanceRecord{ID: int64(len(f.records) + 1), EquipmentID: id, StartedAt: time.Now()}
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeEquipment) CompleteMaintenance(_ context.Context, id int64) error {
	f.items[id].UnderMaintenance = false
	now := time.Now()
	for _, rec := range f.records {
		if rec.EquipmentID == id && rec.CompletedAt == nil {
			rec.CompletedAt = &now
		}
	}
	return nil
}

func (f *fakeEquipment) History(_ context.Context, id int64) ([]*model.MaintenanceRecord, error) {
	var out []*model.MaintenanceRecord
	for _, rec := range f.records {
		if rec.EquipmentID == id {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeBills struct {
	bills map[int64]*model.Bill
	next  int64
}

func newFakeBills() *fakeBills {
	return &fakeBills{bills: map[int64]*model.Bill{}}
}

func (f *fakeBills) Create(_ context.Context, b *model.Bill) error {
	f.next++
	b.Number = f.next
	cp := *b
	f.bills[b.Number] = &cp
	return nil
}

func (f *fakeBills) GetByNumber(_ context.Context, number int64) (*model.Bill, error) {
	b, ok := f.bills[number]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBills) List(_ context.Context, status *model.BillStatus) ([]*model.Bill, error) {
	var out []*model.Bill
	for n := int64(1); n <= f.next; n++ {
		b := f.bills[n]
		if status == nil || b.Status == *status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBills) UpdateStatus(_ context.Context, number int64, from, to model.BillStatus, ref *uuid.UUID, at time.Time) (bool, error) {
	b, ok := f.bills[number]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	b.StatusUpdatedAt = at
	if ref != nil {
		b.Reference = ref
	}
	return true, nil
}

var nopLogger = zap.NewNop()
