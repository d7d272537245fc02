package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/fitness_club/internal/apperror"
	"github.com/Freeeeeet/fitness_club/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StubProcessor всегда успешно проводит оплату
type StubProcessor struct{}

func (StubProcessor) Charge(context.Context, *model.Bill) (uuid.UUID, error) {
	return uuid.New(), nil
}

type BillingService struct {
	bills     BillStore
	members   MemberStore
	processor PaymentProcessor
	recorder  Recorder
	logger    *zap.Logger
	now       func() time.Time
}

func NewBillingService(bills BillStore, members MemberStore, processor PaymentProcessor, recorder Recorder, logger *zap.Logger) *BillingService {
	if processor == nil {
		processor = StubProcessor{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &BillingService{
		bills:     bills,
		members:   members,
		processor: processor,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// Bills счета клуба. status == nil - все счета
func (s *BillingService) Bills(ctx context.Context, status *model.BillStatus) ([]*model.Bill, error) {
	bills, err := s.bills.List(ctx, status)
	if err != nil {
		return nil, apperror.Storage("list bills", err)
	}
	return bills, nil
}

// CreateBill выставляет участнику счёт в статусе Awaiting Payment
func (s *BillingService) CreateBill(ctx context.Context, memberID int64, amount float64) (*model.Bill, error) {
	if amount <= 0 {
		return nil, apperror.Validation("amount", "The amount must be a positive number.")
	}

	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return nil, apperror.Storage("get member", err)
	}
	if m == nil {
		return nil, apperror.NotFound("member", memberID)
	}

	bill := &model.Bill{
		MemberID:        memberID,
		Amount:          amount,
		Status:          model.BillAwaitingPayment,
		StatusUpdatedAt: s.now(),
	}
	if err := s.bills.Create(ctx, bill); err != nil {
		s.logger.Error("Failed to create bill",
			zap.Int64("member_id", memberID),
			zap.Error(err))
		return nil, apperror.Storage("create bill", err)
	}

	s.recorder.BillTransition(model.BillAwaitingPayment)
	s.logger.Info("Bill created",
		zap.Int64("bill_number", bill.Number),
		zap.Int64("member_id", memberID),
		zap.Float64("amount", amount))
	return bill, nil
}

func (s *BillingService) CancelBill(ctx context.Context, number int64) (*model.Bill, error) {
	return s.transition(ctx, number, model.BillCancelled)
}

// PayBill проводит оплату через процессор и сохраняет идентификатор платежа
func (s *BillingService) PayBill(ctx context.Context, number int64) (*model.Bill, error) {
	return s.transition(ctx, number, model.BillPaid)
}

func (s *BillingService) RefundBill(ctx context.Context, number int64) (*model.Bill, error) {
	return s.transition(ctx, number, model.BillReturned)
}

func (s *BillingService) transition(ctx context.Context, number int64, to model.BillStatus) (*model.Bill, error) {
	bill, err := s.bills.GetByNumber(ctx, number)
	if err != nil {
		return nil, apperror.Storage("get bill", err)
	}
	if bill == nil {
		return nil, apperror.NotFound("bill", number)
	}

	from := bill.Status
	if !from.CanTransitionTo(to) {
		s.logger.Warn("Invalid bill transition",
			zap.Int64("bill_number", number),
			zap.String("from", string(from)),
			zap.String("to", string(to)))
		return nil, apperror.Conflict("bill", 0, "bill #%d is %q and cannot become %q", number, from, to)
	}

	var ref *uuid.UUID
	if to == model.BillPaid {
		id, err := s.processor.Charge(ctx, bill)
		if err != nil {
			s.logger.Error("Payment failed",
				zap.Int64("bill_number", number),
				zap.Error(err))
			return nil, apperror.Conflict("bill", 0, "payment for bill #%d failed: %v", number, err)
		}
		ref = &id
	}

	at := s.now()
	ok, err := s.bills.UpdateStatus(ctx, number, from, to, ref, at)
	if err != nil {
		return nil, apperror.Storage("update bill status", err)
	}
	if !ok {
		return nil, apperror.Conflict("bill", 0, "bill #%d was changed concurrently", number)
	}

	bill.Status = to
	bill.StatusUpdatedAt = at
	if ref != nil {
		bill.Reference = ref
	}

	s.recorder.BillTransition(to)
	s.logger.Info("Bill status changed",
		zap.Int64("bill_number", number),
		zap.String("from", string(from)),
		zap.String("to", string(to)))
	return bill, nil
}
