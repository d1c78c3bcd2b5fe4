package usecase

import (
	"context"
	"fmt"

	"github.com/amsolucionesw-art/financiera-ledger/application/dto"
	"github.com/amsolucionesw-art/financiera-ledger/domain/port"
	"github.com/amsolucionesw-art/financiera-ledger/domain/service"
)

// GetOutstandingUseCase computes the outstanding view of a credit as of a
// reference date. Read-only: safe to run with unlimited concurrency.
type GetOutstandingUseCase struct {
	credits port.CreditRepository
	accrual *service.AccrualEngine
}

// NewGetOutstandingUseCase wires dependencies.
func NewGetOutstandingUseCase(credits port.CreditRepository, accrual *service.AccrualEngine) *GetOutstandingUseCase {
	return &GetOutstandingUseCase{credits: credits, accrual: accrual}
}

// Execute returns the per-installment or open-ended cycle view.
func (uc *GetOutstandingUseCase) Execute(
	ctx context.Context,
	req dto.GetOutstandingRequest,
) (dto.OutstandingResponse, error) {
	asOf := resolveAsOf(req.AsOf)

	credit, err := uc.credits.FindByID(ctx, req.CreditID)
	if err != nil {
		return dto.OutstandingResponse{}, fmt.Errorf("find credit: %w", err)
	}

	resp := dto.OutstandingResponse{
		CreditID: credit.ID(),
		Modality: credit.Modality().String(),
		Status:   credit.Status().String(),
	}

	if credit.Modality().IsOpenEnded() {
		out, err := uc.accrual.OutstandingOpenEnded(credit, asOf)
		if err != nil {
			return dto.OutstandingResponse{}, fmt.Errorf("compute outstanding: %w", err)
		}
		view := &dto.OpenEndedView{
			CycleIndex:    out.Cycle.Index,
			Capital:       out.Capital,
			InterestCycle: out.InterestCycle,
			InterestTotal: out.InterestTotal,
			MoraCycle:     out.MoraCycle,
			MoraTotal:     out.MoraTotal,
			TotalDueToday: out.TotalDueToday,
		}
		if !out.Cycle.Start.IsZero() {
			start := out.Cycle.Start
			view.CycleStart = &start
		}
		if !out.Cycle.End.IsZero() {
			end := out.Cycle.End
			view.CycleEnd = &end
		}
		resp.OpenEnded = view
		resp.TotalOutstanding = out.TotalDueToday
		return resp, nil
	}

	for _, inst := range credit.Installments() {
		resp.Installments = append(resp.Installments, installmentView(inst, asOf))
		resp.TotalOutstanding = resp.TotalOutstanding.Add(uc.accrual.Outstanding(inst).Total)
	}
	return resp, nil
}
