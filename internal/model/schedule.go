package model

import "time"

// CommitmentKind вид уже занятого времени
type CommitmentKind string

const (
	CommitmentClass       CommitmentKind = "class"
	CommitmentSession     CommitmentKind = "personal training session"
	CommitmentRoomBooking CommitmentKind = "room booking"
	CommitmentWindow      CommitmentKind = "availability window"
)

// Commitment занятый интервал сущности (тренера, участника, зала) на дату
type Commitment struct {
	ID       int64          `json:"id"`
	Kind     CommitmentKind `json:"kind"`
	EntityID int64          `json:"entity_id"`
	Date     time.Time      `json:"date"`
	Interval TimeInterval   `json:"interval"`
}

// AvailabilityWindow окно, в которое тренер готов проводить занятия
type AvailabilityWindow struct {
	ID        int64        `json:"id"`
	TrainerID int64        `json:"trainer_id"`
	Date      time.Time    `json:"date"`
	Interval  TimeInterval `json:"interval"`
}

type Class struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	TrainerID int64        `json:"trainer_id"`
	Date      time.Time    `json:"date"`
	Interval  TimeInterval `json:"interval"`
}

type PersonalTrainingSession struct {
	ID        int64        `json:"id"`
	MemberID  int64        `json:"member_id"`
	TrainerID int64        `json:"trainer_id"`
	Date      time.Time    `json:"date"`
	Interval  TimeInterval `json:"interval"`

	// Заполняется при выборке для отображения
	TrainerName string `json:"trainer_name,omitempty"`
}
