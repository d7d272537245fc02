package model

import "time"

// Goal фитнес-цель участника. Цель достигнута, если AchievedAt != nil
type Goal struct {
	ID          int64      `json:"id"`
	MemberID    int64      `json:"member_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	AchievedAt  *time.Time `json:"achieved_at"`
}

func (g *Goal) Achieved() bool {
	return g.AchievedAt != nil
}

type Exercise struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RoutineExercise упражнение в программе тренировок с количеством подходов
type RoutineExercise struct {
	ExerciseID int64  `json:"exercise_id"`
	Name       string `json:"name,omitempty"`
	Sets       int    `json:"sets"`
}

type Routine struct {
	ID          int64             `json:"id"`
	MemberID    int64             `json:"member_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Exercises   []RoutineExercise `json:"exercises"`
}

// Dashboard сводка для участника
type Dashboard struct {
	Member       *Member    `json:"member"`
	Achievements []*Goal    `json:"achievements"`
	Routines     []*Routine `json:"routines"`
}

// MemberProfile профиль участника для поиска тренером
type MemberProfile struct {
	Member *Member `json:"member"`
	Goals  []*Goal `json:"goals"`
}
