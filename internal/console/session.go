package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/Freeeeeet/fitness_club/internal/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// errQuit ввод закончился
var errQuit = errors.New("input closed")

// maxLineLength строки длиннее отбрасываются целиком
const maxLineLength = 4096

// Session один интерактивный сеанс работы с клубом
type Session struct {
	id        uuid.UUID
	in        *bufio.Reader
	out       io.Writer
	svc       Services
	validator *validate.Validator
	logger    *zap.Logger

	account *model.Account
}

func NewSession(in io.Reader, out io.Writer, svc Services, validator *validate.Validator, logger *zap.Logger) *Session {
	id := uuid.New()
	return &Session{
		id:        id,
		in:        bufio.NewReader(in),
		out:       out,
		svc:       svc,
		validator: validator,
		logger:    logger.With(zap.Stringer("session_id", id)),
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Run главное меню. Возвращает nil при выходе или конце ввода
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("Console session started")
	s.println("Welcome to the Health and Fitness Club!")

	err := s.loop(ctx, "Main menu", []action{
		{"Register as a new member", s.register},
		{"Login", s.login},
	}, "Exit")

	s.logger.Info("Console session finished")
	if err == nil || errors.Is(err, errQuit) {
		s.println("Goodbye!")
		return nil
	}
	return err
}

type action struct {
	label string
	run   func(ctx context.Context) error
}

// loop показывает меню, пока пользователь не выберет последний пункт.
// Ошибки действий выводятся пользователю, наверх уходят только конец ввода
// и отмена контекста.
func (s *Session) loop(ctx context.Context, title string, actions []action, exitLabel string) error {
	labels := make([]string, 0, len(actions)+1)
	for _, a := range actions {
		labels = append(labels, a.label)
	}
	labels = append(labels, exitLabel)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.menu(title, labels...)
		if err != nil {
			return err
		}
		if choice == len(labels) {
			return nil
		}

		if err := actions[choice-1].run(ctx); err != nil {
			if errors.Is(err, errQuit) || ctx.Err() != nil {
				return err
			}
			s.report(err)
		}
	}
}

func (s *Session) menu(title string, options ...string) (int, error) {
	s.printf("\n--- %s ---\n", title)
	for i, o := range options {
		s.printf("%d. %s\n", i+1, o)
	}

	return ask(s, "Enter your choice: ", func(line string) (int, error) {
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			return 0, apperror.Validation("choice", fmt.Sprintf("Please enter a number from 1 to %d.", len(options)))
		}
		return n, nil
	})
}

func (s *Session) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)

	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", errQuit
		}
		if err != nil {
			return "", err
		}

		if len(line)+len(chunk) > maxLineLength {
			tooLong = true
			line = nil
		}
		if !tooLong {
			line = append(line, chunk...)
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", apperror.Validation("input",
			fmt.Sprintf("Please keep your input under %d characters.", maxLineLength))
	}
	return strings.TrimSpace(string(line)), nil
}

// ask переспрашивает, пока parse возвращает ошибку валидации
func ask[T any](s *Session, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		var zero T

		line, err := s.readLine(prompt)
		if err != nil {
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, apperror.ErrValidation) {
			return zero, err
		}
		s.println(apperror.UserMessage(err))
	}
}

func (s *Session) askID(prompt, field string) (int64, error) {
	return ask(s, prompt, func(line string) (int64, error) {
		return validate.ID(field, line)
	})
}

func (s *Session) askText(prompt, field string) (string, error) {
	return ask(s, prompt, func(line string) (string, error) {
		return validate.Name(field, line)
	})
}

func (s *Session) askDate(prompt string) (time.Time, error) {
	return ask(s, prompt, s.validator.ScheduleDate)
}

// askInterval спрашивает начало и конец; конец переспрашивается, пока он не позже начала
func (s *Session) askInterval() (model.TimeInterval, error) {
	start, err := ask(s, "Start time (HH:MM): ", validate.Clock)
	if err != nil {
		return model.TimeInterval{}, err
	}

	end, err := ask(s, "End time (HH:MM): ", func(line string) (model.Clock, error) {
		c, err := validate.Clock(line)
		if err != nil {
			return 0, err
		}
		if c <= start {
			return 0, apperror.Validation("end time", "Please make sure the end time is after the start time.")
		}
		return c, nil
	})
	if err != nil {
		return model.TimeInterval{}, err
	}

	return model.NewTimeInterval(start, end), nil
}

func (s *Session) confirm(prompt string) (bool, error) {
	return ask(s, prompt+" (y/n): ", func(line string) (bool, error) {
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		return false, apperror.Validation("answer", "Please answer y or n.")
	})
}

// report выводит ошибку операции. Детали ошибок хранилища уходят только в лог
func (s *Session) report(err error) {
	if errors.Is(err, apperror.ErrStorage) {
		s.logger.Error("Operation aborted", zap.Error(err))
	}
	s.println(apperror.UserMessage(err))
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(args ...interface{}) {
	fmt.Fprintln(s.out, args...)
}
