package model

import (
	"time"

	"github.com/google/uuid"
)

type BillStatus string

const (
	BillAwaitingPayment BillStatus = "Awaiting Payment"
	BillPaid            BillStatus = "Paid"
	BillCancelled       BillStatus = "Cancelled"
	BillReturned        BillStatus = "Returned"
)

// CanTransitionTo проверяет допустимость перехода между статусами счёта
func (s BillStatus) CanTransitionTo(next BillStatus) bool {
	switch s {
	case BillAwaitingPayment:
		return next == BillPaid || next == BillCancelled
	case BillPaid:
		return next == BillReturned
	}
	return false
}

type Bill struct {
	Number          int64      `json:"number"`
	MemberID        int64      `json:"member_id"`
	Amount          float64    `json:"amount"`
	Status          BillStatus `json:"status"`
	Reference       *uuid.UUID `json:"reference"` // присваивается при оплате
	StatusUpdatedAt time.Time  `json:"status_updated_at"`
}
