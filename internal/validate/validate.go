package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/config"
	"github.com/Freeeeeet/fitness_club/internal/model"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^(?:[0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
	emailRe = regexp.MustCompile(`^[\w\.-]+@([\w-]+\.)+[\w-]{2,4}$`)
	phoneRe = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
)

const minPasswordLength = 8

// Validator проверяет пользовательский ввод по правилам клуба
type Validator struct {
	rules config.Rules
}

func New(rules config.Rules) *Validator {
	return &Validator{rules: rules}
}

// BirthDate дата рождения не раньше BirthYearMin
func (v *Validator) BirthDate(s string) (time.Time, error) {
	date, err := Date(s, v.rules.BirthYearMin)
	if err != nil {
		return time.Time{}, apperror.Validation("date of birth",
			fmt.Sprintf("Please enter a valid date of birth after January 1, %d, in the format YYYY-MM-DD (ex. 2003-04-15).", v.rules.BirthYearMin))
	}
	return date, nil
}

// ScheduleDate дата занятия, окна или брони не раньше открытия клуба
func (v *Validator) ScheduleDate(s string) (time.Time, error) {
	date, err := Date(s, v.rules.ScheduleYearMin)
	if err != nil {
		return time.Time{}, apperror.Validation("date",
			fmt.Sprintf("Please enter a valid date after January 1, %d, in the format YYYY-MM-DD (ex. 2023-04-15).", v.rules.ScheduleYearMin))
	}
	return date, nil
}

// Weight необязательный вес в фунтах. Пустая строка - nil
func (v *Validator) Weight(s string) (*float64, error) {
	return optionalRange(s, "weight", v.rules.WeightMinLbs, v.rules.WeightMaxLbs,
		fmt.Sprintf("The weight must be a number between %g and %g lbs.", v.rules.WeightMinLbs, v.rules.WeightMaxLbs))
}

// BodyFat необязательный процент жира. Пустая строка - nil
func (v *Validator) BodyFat(s string) (*float64, error) {
	return optionalRange(s, "body fat percentage", v.rules.BodyFatMin, v.rules.BodyFatMax,
		fmt.Sprintf("The body fat percentage must be a number between %g and %g.", v.rules.BodyFatMin, v.rules.BodyFatMax))
}

// Date разбирает дату YYYY-MM-DD с годом не меньше earliestYear
func Date(s string, earliestYear int) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !dateRe.MatchString(s) {
		return time.Time{}, apperror.Validation("date", "Please use the format YYYY-MM-DD (ex. 2023-04-15).")
	}

	date, err := time.Parse(model.DateFormat, s)
	if err != nil {
		return time.Time{}, apperror.Validation("date", "This day does not exist in the calendar.")
	}
	if date.Year() < earliestYear {
		return time.Time{}, apperror.Validation("date", fmt.Sprintf("The date must be after January 1, %d.", earliestYear))
	}

	return date, nil
}

// Clock разбирает время в 24-часовом формате H:MM или HH:MM
func Clock(s string) (model.Clock, error) {
	s = strings.TrimSpace(s)
	if !clockRe.MatchString(s) {
		return 0, apperror.Validation("time", "Please use the HH:MM format (ex. 9:30 or 17:30).")
	}

	parts := strings.SplitN(s, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])

	return model.NewClock(hour, minute), nil
}

// Interval разбирает начало и конец; конец должен быть строго позже начала
func Interval(start, end string) (model.TimeInterval, error) {
	startClock, err := Clock(start)
	if err != nil {
		return model.TimeInterval{}, err
	}
	endClock, err := Clock(end)
	if err != nil {
		return model.TimeInterval{}, err
	}

	iv := model.NewTimeInterval(startClock, endClock)
	if !iv.Valid() {
		return model.TimeInterval{}, apperror.Validation("end time", "Please make sure the end time is after the start time.")
	}
	return iv, nil
}

func Email(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !emailRe.MatchString(s) {
		return "", apperror.Validation("email", "You have entered an invalid email.")
	}
	return s, nil
}

// Password минимум 8 символов, хотя бы одна буква и одна цифра
func Password(s string) (string, error) {
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if len([]rune(s)) < minPasswordLength || !hasLetter || !hasDigit {
		return "", apperror.Validation("password", "The password must have at least 8 characters, including 1 letter and 1 number.")
	}
	return s, nil
}

func Phone(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !phoneRe.MatchString(s) {
		return "", apperror.Validation("phone number", "Please use the format (###) ###-#### where # is a digit.")
	}
	return s, nil
}

// Name непустое имя
func Name(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", apperror.Validation(field, fmt.Sprintf("The %s must not be empty.", field))
	}
	return s, nil
}

// Amount положительная сумма в долларах
func Amount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || amount <= 0 {
		return 0, apperror.Validation("amount", "The payment amount must be a positive number.")
	}
	return amount, nil
}

// ID положительный числовой идентификатор
func ID(field, s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation(field, fmt.Sprintf("The %s must be a positive whole number.", field))
	}
	return id, nil
}

// Sets количество подходов
func Sets(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, apperror.Validation("number of sets", "The number of sets must be a positive whole number.")
	}
	return n, nil
}

func optionalRange(s, field string, min, max float64, msg string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < min || value > max {
		return nil, apperror.Validation(field, msg)
	}
	return &value, nil
}
