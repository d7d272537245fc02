package service

import (
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemberService(members *fakeMembers, accounts *fakeAccounts, goals *fakeGoals, routines *fakeRoutines) (*MemberService, *inlineTx) {
	tx := &inlineTx{}
	return NewMemberService(members, accounts, goals, routines, tx, nopLogger), tx
}

func alice() *model.Member {
	return &model.Member{
		ID:        1,
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "secret123",
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newMemberService(newFakeMembers(alice()), &fakeAccounts{}, &fakeGoals{}, &fakeRoutines{})

	err := svc.Register(context.Background(), &model.Member{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "ALICE@example.com",
		Password:  "password1",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestRegisterValidatesPassword(t *testing.T) {
	svc, _ := newMemberService(newFakeMembers(), &fakeAccounts{}, &fakeGoals{}, &fakeRoutines{})

	err := svc.Register(context.Background(), &model.Member{Email: "bob@example.com", Password: "short"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestRegisterAssignsID(t *testing.T) {
	members := newFakeMembers()
	svc, _ := newMemberService(members, &fakeAccounts{}, &fakeGoals{}, &fakeRoutines{})

	m := &model.Member{FirstName: "Bob", LastName: "Stone", Email: " bob@example.com ", Password: "password1"}
	require.NoError(t, svc.Register(context.Background(), m))
	assert.Equal(t, int64(1), m.ID)
	assert.Equal(t, "bob@example.com", m.Email)
}

func TestLogin(t *testing.T) {
	accounts := &fakeAccounts{accounts: []*model.Account{
		{ID: 7, Type: model.AccountTrainer, FirstName: "Tom", Email: "tom@club.com", Password: "trainer1"},
		{ID: 3, Type: model.AccountStaff, FirstName: "Sam", Email: "sam@club.com", Password: "staff123"},
	}}
	svc, _ := newMemberService(newFakeMembers(alice()), accounts, &fakeGoals{}, &fakeRoutines{})
	ctx := context.Background()

	acc, err := svc.Login(ctx, model.AccountMember, "Alice@Example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), acc.ID)
	assert.Equal(t, model.AccountMember, acc.Type)

	acc, err = svc.Login(ctx, model.AccountTrainer, "tom@club.com", "trainer1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), acc.ID)

	_, err = svc.Login(ctx, model.AccountStaff, "tom@club.com", "trainer1")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.Login(ctx, model.AccountMember, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdatePersonalInfo(t *testing.T) {
	members := newFakeMembers(alice())
	svc, _ := newMemberService(members, &fakeAccounts{}, &fakeGoals{}, &fakeRoutines{})
	ctx := context.Background()

	require.NoError(t, svc.UpdatePersonalInfo(ctx, 1, model.FieldPhone, "(555) 123-4567"))
	assert.Equal(t, "(555) 123-4567", members.byID[1].PhoneNumber)

	err := svc.UpdatePersonalInfo(ctx, 1, model.FieldEmail, "not-an-email")
	assert.ErrorIs(t, err, apperror.ErrValidation)

	err = svc.UpdatePersonalInfo(ctx, 99, model.FieldFirstName, "Zed")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateHealthMetricsKeepsMissingValues(t *testing.T) {
	m := alice()
	fat := 20.0
	m.BodyFatPercentage = &fat
	members := newFakeMembers(m)
	svc, _ := newMemberService(members, &fakeAccounts{}, &fakeGoals{}, &fakeRoutines{})

	weight := 150.0
	require.NoError(t, svc.UpdateHealthMetrics(context.Background(), 1, &weight, nil))
	assert.Equal(t, 150.0, *members.byID[1].WeightLbs)
	assert.Equal(t, 20.0, *members.byID[1].BodyFatPercentage)
}

func TestGoals(t *testing.T) {
	goals := &fakeGoals{}
	svc, _ := newMemberService(newFakeMembers(alice()), &fakeAccounts{}, goals, &fakeRoutines{})
	svc.now = func() time.Time { return testDate }
	ctx := context.Background()

	goal, err := svc.AddGoal(ctx, 1, "Run 5k", "under 30 minutes")
	require.NoError(t, err)

	err = svc.MarkGoalAchieved(ctx, 2, goal.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound, "goal belongs to another member")

	require.NoError(t, svc.MarkGoalAchieved(ctx, 1, goal.ID))
	assert.Equal(t, testDate, *goal.AchievedAt)

	err = svc.MarkGoalAchieved(ctx, 1, goal.ID)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	dash, err := svc.Dashboard(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, dash.Achievements, 1)
}

func TestCreateRoutine(t *testing.T) {
	routines := &fakeRoutines{exercises: []*model.Exercise{{ID: 1, Name: "Squat"}, {ID: 2, Name: "Bench press"}}}
	svc, tx := newMemberService(newFakeMembers(alice()), &fakeAccounts{}, &fakeGoals{}, routines)
	ctx := context.Background()

	_, err := svc.CreateRoutine(ctx, 1, "Legs", "", []model.RoutineExercise{{ExerciseID: 9, Sets: 3}})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Zero(t, tx.calls)

	routine, err := svc.CreateRoutine(ctx, 1, "Legs", "monday", []model.RoutineExercise{{ExerciseID: 1, Sets: 5}})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, "Squat", routine.Exercises[0].Name)

	dash, err := svc.Dashboard(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, dash.Routines, 1)
}
