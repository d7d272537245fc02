package availability

import (
	"errors"
	"fmt"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
)

// ErrNoWindow ни одно окно тренера не покрывает запрошенный интервал
var ErrNoWindow = errors.New("no availability window covers the interval")

type NoWindowError struct {
	TrainerID int64
	Interval  model.TimeInterval
}

func (e *NoWindowError) Error() string {
	return fmt.Sprintf("trainer #%d does not have availability at %s", e.TrainerID, e.Interval)
}

// Is отсутствие окна тоже конфликт: время не может быть забронировано
func (e *NoWindowError) Is(target error) bool {
	return target == ErrNoWindow || target == apperror.ErrConflict
}

func invalidInterval() error {
	return apperror.Validation("interval", "The end time must be after the start time.")
}
