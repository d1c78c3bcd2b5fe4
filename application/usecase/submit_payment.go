package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amsolucionesw-art/financiera-ledger/application/dto"
	"github.com/amsolucionesw-art/financiera-ledger/domain/model"
	"github.com/amsolucionesw-art/financiera-ledger/domain/port"
	"github.com/amsolucionesw-art/financiera-ledger/domain/service"
	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
	"github.com/amsolucionesw-art/financiera-ledger/money"
)

// SubmitPaymentUseCase registers a payment and allocates it against a credit.
type SubmitPaymentUseCase struct {
	credits   port.CreditRepository
	allocator *service.PaymentAllocator
	publisher port.EventPublisher
}

// NewSubmitPaymentUseCase wires dependencies.
func NewSubmitPaymentUseCase(
	credits port.CreditRepository,
	allocator *service.PaymentAllocator,
	publisher port.EventPublisher,
) *SubmitPaymentUseCase {
	return &SubmitPaymentUseCase{credits: credits, allocator: allocator, publisher: publisher}
}

// Execute processes a payment submission.
func (uc *SubmitPaymentUseCase) Execute(
	ctx context.Context,
	req dto.SubmitPaymentRequest,
) (dto.PaymentResponse, error) {
	asOf := resolveAsOf(req.AsOf)

	// 1. Normalize the raw amounts. Payment amounts arrive as
	//    locale-ambiguous strings from upstream channels.
	amount := money.ParseAmount(req.RawAmount)
	discountValue := decimal.Zero
	if req.RawDiscountValue != "" {
		discountValue = money.ParseAmount(req.RawDiscountValue)
	}

	mode, err := valueobject.NewPaymentMode(req.Mode)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("parse payment mode: %w", err)
	}
	scope := valueobject.DiscountScopeNone
	if req.DiscountScope != "" {
		scope, err = valueobject.NewDiscountScope(req.DiscountScope)
		if err != nil {
			return dto.PaymentResponse{}, fmt.Errorf("parse discount scope: %w", err)
		}
	}

	// 2. Retrieve the credit.
	credit, err := uc.credits.FindByID(ctx, req.CreditID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("find credit: %w", err)
	}

	// 3. Build the payment record and run the allocation.
	payment, err := model.NewPayment(
		req.CreditID, req.InstallmentNumber, amount,
		req.MethodID, req.Note, mode, scope, discountValue, asOf,
	)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("create payment: %w", err)
	}

	result, err := uc.allocator.Allocate(credit, payment, asOf)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("allocate payment: %w", err)
	}

	// 4. Persist the updated credit and the payment record.
	if err := uc.credits.Save(ctx, result.Credit); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save credit: %w", err)
	}
	if err := uc.credits.SavePayment(ctx, payment); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save payment: %w", err)
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, result.Credit.DomainEvents()...); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.PaymentResponse{
		PaymentID:             payment.ID,
		CreditID:              result.Credit.ID(),
		InstallmentNumber:     result.Installment.Number,
		AppliedMora:           result.AppliedMora,
		AppliedInterest:       result.AppliedInterest,
		AppliedPrincipal:      result.AppliedPrincipal,
		AppliedCapital:        result.AppliedCapital,
		Surplus:               result.Surplus,
		SuggestedAmount:       result.SuggestedAmount,
		ExceedsRecommendation: result.ExceedsRecommendation,
		Settled:               result.Settled,
		CreditStatus:          result.Credit.Status().String(),
		InstallmentStatus:     result.Installment.Status.String(),
	}, nil
}
