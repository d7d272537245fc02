package model

import "fmt"

const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	ClockFormat = "15:04"      // HH:MM
)

// Clock время суток в минутах от полуночи
type Clock int

// NewClock создаёт время суток из часов и минут
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// TimeInterval промежуток времени внутри одного календарного дня
type TimeInterval struct {
	Start Clock `json:"start_time"`
	End   Clock `json:"end_time"`
}

// NewTimeInterval создаёт интервал, не проверяя Start < End
func NewTimeInterval(start, end Clock) TimeInterval {
	return TimeInterval{Start: start, End: end}
}

// Valid проверяет инвариант Start < End
func (ti TimeInterval) Valid() bool {
	return ti.Start < ti.End
}

// Minutes длительность интервала
func (ti TimeInterval) Minutes() int {
	return int(ti.End - ti.Start)
}

func (ti TimeInterval) String() string {
	return fmt.Sprintf("%s-%s", ti.Start, ti.End)
}
