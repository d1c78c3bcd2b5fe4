package usecase

import (
	"context"
	"fmt"

	"github.com/amsolucionesw-art/financiera-ledger/application/dto"
	"github.com/amsolucionesw-art/financiera-ledger/domain/model"
	"github.com/amsolucionesw-art/financiera-ledger/domain/port"
	"github.com/amsolucionesw-art/financiera-ledger/domain/service"
	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
	"github.com/amsolucionesw-art/financiera-ledger/money"
)

// RefinanceCreditUseCase closes a credit into a new fixed plan. The quote must
// have been produced against the credit's current balance; a stale quote is
// rejected rather than silently repriced.
type RefinanceCreditUseCase struct {
	credits   port.CreditRepository
	accrual   *service.AccrualEngine
	publisher port.EventPublisher
}

// NewRefinanceCreditUseCase wires dependencies.
func NewRefinanceCreditUseCase(
	credits port.CreditRepository,
	accrual *service.AccrualEngine,
	publisher port.EventPublisher,
) *RefinanceCreditUseCase {
	return &RefinanceCreditUseCase{credits: credits, accrual: accrual, publisher: publisher}
}

// Execute refinances a credit with the given quote.
func (uc *RefinanceCreditUseCase) Execute(
	ctx context.Context,
	req dto.RefinanceCreditRequest,
) (dto.RefinanceResponse, error) {
	asOf := resolveAsOf(req.AsOf)

	periodicity, err := valueobject.NewPeriodicity(req.Quote.Periodicity)
	if err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("parse periodicity: %w", err)
	}
	if req.Quote.InstallmentCount < 1 {
		return dto.RefinanceResponse{}, fmt.Errorf(
			"installment count %d: %w", req.Quote.InstallmentCount, valueobject.ErrInvalidRefinancingInput)
	}

	// 1. Retrieve the origin credit.
	origin, err := uc.credits.FindByID(ctx, req.CreditID)
	if err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("find credit: %w", err)
	}

	// 2. Verify the quote against the live balance.
	balance, err := uc.accrual.OutstandingBalance(origin, asOf)
	if err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("compute balance: %w", err)
	}
	if !money.Round2(req.Quote.Balance).Equal(money.Round2(balance)) {
		return dto.RefinanceResponse{}, fmt.Errorf(
			"quote balance %s does not match outstanding balance %s: %w",
			req.Quote.Balance, balance, valueobject.ErrInconsistentBalance)
	}

	// 3. Open the new credit draft from the transferred balance.
	newCredit, err := model.NewCredit(
		valueobject.ModalityFixed, periodicity,
		balance, req.Quote.TotalInterestPct, req.Quote.InstallmentCount,
		origin.ID(), asOf, asOf,
	)
	if err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("create refinanced credit: %w", err)
	}

	// 4. Close the origin credit.
	closed, err := origin.MarkRefinanced(newCredit.ID(), balance, asOf)
	if err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("close origin credit: %w", err)
	}

	// 5. Persist both sides.
	if err := uc.credits.Save(ctx, closed); err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("save origin credit: %w", err)
	}
	if err := uc.credits.Save(ctx, newCredit); err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("save refinanced credit: %w", err)
	}

	// 6. Publish domain events.
	events := append(closed.DomainEvents(), newCredit.DomainEvents()...)
	if err := uc.publisher.Publish(ctx, events...); err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.RefinanceResponse{
		OriginCreditID: closed.ID(),
		OriginStatus:   closed.Status().String(),
		NewCredit:      creditResponse(newCredit, asOf),
		Transferred:    balance,
	}, nil
}
