package model

import "time"

type AccountType int

const (
	AccountMember  AccountType = 1
	AccountTrainer AccountType = 2
	AccountStaff   AccountType = 3
)

func (t AccountType) String() string {
	switch t {
	case AccountMember:
		return "member"
	case AccountTrainer:
		return "trainer"
	case AccountStaff:
		return "staff"
	}
	return "unknown"
}

type Member struct {
	ID                int64     `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Password          string    `json:"-"`
	DateOfBirth       time.Time `json:"date_of_birth"`
	PhoneNumber       string    `json:"phone_number"`
	WeightLbs         *float64  `json:"weight_lbs"`          // может быть nil
	BodyFatPercentage *float64  `json:"body_fat_percentage"` // может быть nil
	CreatedAt         time.Time `json:"created_at"`
}

func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// Account тренер или сотрудник администрации (у них одинаковый набор полей)
type Account struct {
	ID        int64       `json:"id"`
	Type      AccountType `json:"type"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Password  string      `json:"-"`
}

func (a *Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

// PersonalField поле профиля, которое участник может изменить
type PersonalField string

const (
	FieldFirstName PersonalField = "first_name"
	FieldLastName  PersonalField = "last_name"
	FieldEmail     PersonalField = "email"
	FieldPassword  PersonalField = "password"
	FieldPhone     PersonalField = "phone_number"
)
