package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ScheduleServiceSuite struct {
	suite.Suite

	engine   *fakeAvailability
	classes  *fakeClasses
	sessions *fakeSessions
	recorder *recorderSpy
	svc      *ScheduleService
}

func (s *ScheduleServiceSuite) SetupTest() {
	s.engine = newFakeAvailability()
	s.classes = newFakeClasses(&model.Class{ID: 1, Name: "Yoga", TrainerID: 7, Date: testDate, Interval: iv(9, 0, 10, 0)})
	s.sessions = &fakeSessions{}
	s.recorder = &recorderSpy{}
	accounts := &fakeAccounts{accounts: []*model.Account{
		{ID: 7, Type: model.AccountTrainer, FirstName: "Tom", LastName: "Hardy"},
		{ID: 8, Type: model.AccountTrainer, FirstName: "Ann", LastName: "Lee"},
	}}
	s.svc = NewScheduleService(s.engine, s.classes, s.sessions, newFakeMembers(alice()), accounts, &inlineTx{}, s.recorder, nopLogger)
}

func (s *ScheduleServiceSuite) TestJoinClass() {
	ctx := context.Background()

	class, err := s.svc.JoinClass(ctx, 1, 1)
	s.Require().NoError(err)
	s.Equal("Yoga", class.Name)
	s.Equal([]model.CommitmentKind{model.CommitmentClass}, s.recorder.bookings)

	registered, err := s.svc.RegisteredClasses(ctx, 1)
	s.Require().NoError(err)
	s.Len(registered, 1)

	_, err = s.svc.JoinClass(ctx, 1, 1)
	s.ErrorIs(err, apperror.ErrConflict)
}

func (s *ScheduleServiceSuite) TestJoinClassMemberBusy() {
	s.engine.memberErr = apperror.Conflict(string(model.CommitmentSession), 1, "busy")

	_, err := s.svc.JoinClass(context.Background(), 1, 1)
	s.ErrorIs(err, apperror.ErrConflict)
	s.Empty(s.classes.enrolled)
}

func (s *ScheduleServiceSuite) TestJoinUnknownClass() {
	_, err := s.svc.JoinClass(context.Background(), 1, 42)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ScheduleServiceSuite) TestLeaveClass() {
	ctx := context.Background()

	s.ErrorIs(s.svc.LeaveClass(ctx, 1, 1), apperror.ErrNotFound)

	_, err := s.svc.JoinClass(ctx, 1, 1)
	s.Require().NoError(err)
	s.NoError(s.svc.LeaveClass(ctx, 1, 1))
}

func (s *ScheduleServiceSuite) TestAvailableTrainers() {
	s.engine.trainerErr[7] = apperror.Conflict(string(model.CommitmentClass), 1, "busy")

	trainers, err := s.svc.AvailableTrainers(context.Background(), 1, testDate, iv(10, 0, 11, 0))
	s.Require().NoError(err)
	s.Require().Len(trainers, 1)
	s.Equal(int64(8), trainers[0].ID)
}

func (s *ScheduleServiceSuite) TestAvailableTrainersNoneIsNotAnError() {
	s.engine.trainerErr[7] = apperror.Conflict(string(model.CommitmentClass), 1, "busy")
	s.engine.trainerErr[8] = apperror.Conflict(string(model.CommitmentClass), 1, "busy")

	trainers, err := s.svc.AvailableTrainers(context.Background(), 1, testDate, iv(10, 0, 11, 0))
	s.NoError(err)
	s.Empty(trainers)
}

func (s *ScheduleServiceSuite) TestAvailableTrainersStorageFailure() {
	s.engine.trainerErr[7] = apperror.Storage("get trainer windows", errors.New("connection refused"))

	_, err := s.svc.AvailableTrainers(context.Background(), 1, testDate, iv(10, 0, 11, 0))
	s.ErrorIs(err, apperror.ErrStorage)
}

func (s *ScheduleServiceSuite) TestBookSession() {
	ctx := context.Background()

	session, err := s.svc.BookSession(ctx, 1, 7, testDate, iv(10, 0, 11, 0))
	s.Require().NoError(err)
	s.Equal("Tom Hardy", session.TrainerName)
	s.Equal([]model.CommitmentKind{model.CommitmentSession}, s.recorder.bookings)

	sessions, err := s.svc.Sessions(ctx, 1)
	s.Require().NoError(err)
	s.Len(sessions, 1)
}

func (s *ScheduleServiceSuite) TestBookSessionTrainerUnavailable() {
	s.engine.trainerErr[7] = apperror.Conflict(string(model.CommitmentSession), 2, "busy")

	_, err := s.svc.BookSession(context.Background(), 1, 7, testDate, iv(10, 0, 11, 0))
	var conflict *apperror.ConflictError
	s.Require().ErrorAs(err, &conflict)
	s.Equal(2, conflict.Count)
	s.Empty(s.sessions.sessions)
	s.Empty(s.recorder.bookings)
}

func (s *ScheduleServiceSuite) TestBookSessionUnknownTrainer() {
	_, err := s.svc.BookSession(context.Background(), 1, 99, testDate, iv(10, 0, 11, 0))
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ScheduleServiceSuite) TestUnknownMemberIsNotFound() {
	ctx := context.Background()

	_, err := s.svc.BookSession(ctx, 42, 7, testDate, iv(10, 0, 11, 0))
	s.ErrorIs(err, apperror.ErrNotFound)
	s.Empty(s.sessions.sessions)

	_, err = s.svc.AvailableTrainers(ctx, 42, testDate, iv(10, 0, 11, 0))
	s.ErrorIs(err, apperror.ErrNotFound)

	_, err = s.svc.JoinClass(ctx, 42, 1)
	s.ErrorIs(err, apperror.ErrNotFound)
	s.Empty(s.classes.enrolled)
}

func (s *ScheduleServiceSuite) TestCancelSessionOnlyOwn() {
	ctx := context.Background()
	session, err := s.svc.BookSession(ctx, 1, 7, testDate, iv(10, 0, 11, 0))
	s.Require().NoError(err)

	s.ErrorIs(s.svc.CancelSession(ctx, 2, session.ID), apperror.ErrNotFound)
	s.NoError(s.svc.CancelSession(ctx, 1, session.ID))
}

func TestScheduleService(t *testing.T) {
	suite.Run(t, new(ScheduleServiceSuite))
}

func TestTrainerService(t *testing.T) {
	ctx := context.Background()
	engine := newFakeAvailability()
	windows := &fakeWindows{windows: []*model.AvailabilityWindow{
		{ID: 1, TrainerID: 7, Date: testDate, Interval: iv(9, 0, 12, 0)},
		{ID: 2, TrainerID: 8, Date: testDate, Interval: iv(9, 0, 12, 0)},
	}}
	members := newFakeMembers(alice())
	goals := &fakeGoals{goals: []*model.Goal{{ID: 1, MemberID: 1, Name: "Run 5k"}}}
	accounts := &fakeAccounts{accounts: []*model.Account{{ID: 7, Type: model.AccountTrainer}}}
	svc := NewTrainerService(engine, windows, members, accounts, goals, &inlineTx{}, nopLogger)

	list, err := svc.Windows(ctx, 7, testDate)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	w, err := svc.SetAvailability(ctx, 7, testDate, iv(13, 0, 14, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(7), w.TrainerID)

	_, err = svc.SetAvailability(ctx, 99, testDate, iv(13, 0, 14, 0))
	assert.ErrorIs(t, err, apperror.ErrNotFound, "unknown trainer")

	engine.windowErr = apperror.Conflict(string(model.CommitmentWindow), 1, "overlap")
	_, err = svc.SetAvailability(ctx, 7, testDate, iv(9, 30, 10, 0))
	assert.ErrorIs(t, err, apperror.ErrConflict)

	assert.ErrorIs(t, svc.RemoveWindow(ctx, 7, 2), apperror.ErrNotFound, "window of another trainer")
	assert.NoError(t, svc.RemoveWindow(ctx, 7, 1))

	profiles, err := svc.SearchMembers(ctx, "alice", "SMITH")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Len(t, profiles[0].Goals, 1)
}

func TestClassService(t *testing.T) {
	ctx := context.Background()
	engine := newFakeAvailability()
	classes := newFakeClasses()
	accounts := &fakeAccounts{accounts: []*model.Account{{ID: 7, Type: model.AccountTrainer}}}
	recorder := &recorderSpy{}
	svc := NewClassService(engine, classes, &fakeWindows{}, accounts, &inlineTx{}, recorder, nopLogger)

	_, err := svc.CreateClass(ctx, "Spin", 99, testDate, iv(9, 0, 10, 0))
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.CreateClass(ctx, "  ", 7, testDate, iv(9, 0, 10, 0))
	assert.ErrorIs(t, err, apperror.ErrValidation)

	engine.trainerErr[7] = apperror.Conflict(string(model.CommitmentClass), 1, "busy")
	_, err = svc.CreateClass(ctx, "Spin", 7, testDate, iv(9, 0, 10, 0))
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Empty(t, classes.classes)

	delete(engine.trainerErr, 7)
	class, err := svc.CreateClass(ctx, "Spin", 7, testDate, iv(9, 0, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, []model.CommitmentKind{model.CommitmentClass}, recorder.bookings)

	classes.enrolled[[2]int64{1, class.ID}] = true
	require.NoError(t, svc.DeleteClass(ctx, class.ID))
	assert.Empty(t, classes.enrolled)
	assert.ErrorIs(t, svc.DeleteClass(ctx, class.ID), apperror.ErrNotFound)
}
