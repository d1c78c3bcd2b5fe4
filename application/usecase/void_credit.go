package usecase

import (
	"context"
	"fmt"

	"github.com/amsolucionesw-art/financiera-ledger/application/dto"
	"github.com/amsolucionesw-art/financiera-ledger/domain/port"
)

// VoidCreditUseCase voids a credit terminally.
type VoidCreditUseCase struct {
	credits   port.CreditRepository
	publisher port.EventPublisher
}

// NewVoidCreditUseCase wires dependencies.
func NewVoidCreditUseCase(credits port.CreditRepository, publisher port.EventPublisher) *VoidCreditUseCase {
	return &VoidCreditUseCase{credits: credits, publisher: publisher}
}

// Execute voids the credit.
func (uc *VoidCreditUseCase) Execute(
	ctx context.Context,
	req dto.VoidCreditRequest,
) (dto.VoidResponse, error) {
	asOf := resolveAsOf(req.AsOf)

	credit, err := uc.credits.FindByID(ctx, req.CreditID)
	if err != nil {
		return dto.VoidResponse{}, fmt.Errorf("find credit: %w", err)
	}

	voided, err := credit.Void(asOf)
	if err != nil {
		return dto.VoidResponse{}, fmt.Errorf("void credit: %w", err)
	}

	if err := uc.credits.Save(ctx, voided); err != nil {
		return dto.VoidResponse{}, fmt.Errorf("save credit: %w", err)
	}
	if err := uc.publisher.Publish(ctx, voided.DomainEvents()...); err != nil {
		return dto.VoidResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.VoidResponse{
		CreditID: voided.ID(),
		Status:   voided.Status().String(),
	}, nil
}
