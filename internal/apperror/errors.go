package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrConflict интервал пересекается с уже занятым временем
	ErrConflict = errors.New("conflict")

	// ErrNotFound сущность с указанным идентификатором не существует
	ErrNotFound = errors.New("not found")

	// ErrValidation некорректный пользовательский ввод
	ErrValidation = errors.New("validation failed")

	// ErrStorage хранилище недоступно или запрос завершился ошибкой
	ErrStorage = errors.New("storage error")
)

// ConflictError конфликт с существующими записями.
// Count - количество конфликтующих строк, Kind - их вид.
type ConflictError struct {
	Kind  string
	Count int
	Msg   string
}

func Conflict(kind string, count int, format string, args ...interface{}) *ConflictError {
	return &ConflictError{Kind: kind, Count: count, Msg: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string {
	if e.Count > 0 {
		return fmt.Sprintf("%s (%d conflicting %s)", e.Msg, e.Count, e.Kind)
	}
	return e.Msg
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

type NotFoundError struct {
	Entity string
	ID     interface{}
}

func NotFound(entity string, id interface{}) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s #%v not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError ошибка ввода. UserMsg показывается пользователю как есть
type ValidationError struct {
	Field   string
	UserMsg string
}

func Validation(field, userMsg string) *ValidationError {
	return &ValidationError{Field: field, UserMsg: userMsg}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.UserMsg)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type StorageError struct {
	Op  string
	Err error
}

func Storage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// UserMessage текст ошибки, который можно показать пользователю.
// Для ошибок хранилища детали не раскрываются.
func UserMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.UserMsg
	}
	if errors.Is(err, ErrStorage) {
		return "Something went wrong while talking to the database. Please try again later."
	}
	return err.Error()
}
