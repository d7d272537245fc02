package console

import (
	"context"
	"errors"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/validate"
	"go.uber.org/zap"
)

func (s *Session) register(ctx context.Context) error {
	s.println("\nPlease enter your details.")

	firstName, err := s.askText("First name: ", "first name")
	if err != nil {
		return err
	}
	lastName, err := s.askText("Last name: ", "last name")
	if err != nil {
		return err
	}
	email, err := ask(s, "Email: ", validate.Email)
	if err != nil {
		return err
	}
	password, err := ask(s, "Password: ", validate.Password)
	if err != nil {
		return err
	}
	dob, err := ask(s, "Date of birth (YYYY-MM-DD): ", s.validator.BirthDate)
	if err != nil {
		return err
	}
	phone, err := ask(s, "Phone number ((###) ###-####): ", validate.Phone)
	if err != nil {
		return err
	}
	weight, err := ask(s, "Weight in lbs (optional, press Enter to skip): ", s.validator.Weight)
	if err != nil {
		return err
	}
	bodyFat, err := ask(s, "Body fat percentage (optional, press Enter to skip): ", s.validator.BodyFat)
	if err != nil {
		return err
	}

	m := &model.Member{
		FirstName:         firstName,
		LastName:          lastName,
		Email:             email,
		Password:          password,
		DateOfBirth:       dob,
		PhoneNumber:       phone,
		WeightLbs:         weight,
		BodyFatPercentage: bodyFat,
	}
	if err := s.svc.Members.Register(ctx, m); err != nil {
		return err
	}

	s.printf("Registration successful! Your member id is %d. You can now log in.\n", m.ID)
	return nil
}

func (s *Session) login(ctx context.Context) error {
	kind, err := s.menu("Account type", "Member", "Trainer", "Administrative staff")
	if err != nil {
		return err
	}
	t := model.AccountType(kind)

	email, err := s.readLine("Email: ")
	if err != nil {
		return err
	}
	password, err := s.readLine("Password: ")
	if err != nil {
		return err
	}

	acc, err := s.svc.Members.Login(ctx, t, email, password)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			s.println("Invalid email or password.")
			return nil
		}
		return err
	}

	s.account = acc
	s.logger.Info("Logged in",
		zap.Stringer("type", acc.Type),
		zap.Int64("account_id", acc.ID))
	s.printf("Welcome, %s!\n", acc.FullName())

	defer func() { s.account = nil }()

	switch acc.Type {
	case model.AccountMember:
		return s.memberMenu(ctx)
	case model.AccountTrainer:
		return s.trainerMenu(ctx)
	default:
		return s.staffMenu(ctx)
	}
}

func printList[T any](s *Session, empty string, items []T, format func(T) string) {
	if len(items) == 0 {
		s.println(empty)
		return
	}
	for _, item := range items {
		s.println(format(item))
	}
}
