package usecase

import (
	"context"
	"fmt"

	"github.com/amsolucionesw-art/financiera-ledger/application/dto"
	"github.com/amsolucionesw-art/financiera-ledger/domain/service"
	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
)

// PreviewDiscountUseCase computes the effect of a discount on the given bases
// without touching any credit.
type PreviewDiscountUseCase struct {
	discounts service.DiscountPolicy
}

// NewPreviewDiscountUseCase wires dependencies.
func NewPreviewDiscountUseCase(discounts service.DiscountPolicy) *PreviewDiscountUseCase {
	return &PreviewDiscountUseCase{discounts: discounts}
}

// Execute applies the requested discount to the supplied bases.
func (uc *PreviewDiscountUseCase) Execute(
	_ context.Context,
	req dto.PreviewDiscountRequest,
) (dto.DiscountPreviewResponse, error) {
	scope, err := valueobject.NewDiscountScope(req.Scope)
	if err != nil {
		return dto.DiscountPreviewResponse{}, fmt.Errorf("parse discount scope: %w", err)
	}
	modality, err := valueobject.NewModality(req.Modality)
	if err != nil {
		return dto.DiscountPreviewResponse{}, fmt.Errorf("parse modality: %w", err)
	}

	preview, err := uc.discounts.Apply(req.PrincipalBase, req.MoraBase, scope, req.Value, modality)
	if err != nil {
		return dto.DiscountPreviewResponse{}, fmt.Errorf("apply discount: %w", err)
	}

	return dto.DiscountPreviewResponse{
		DiscountMora:      preview.DiscountMora,
		DiscountPrincipal: preview.DiscountPrincipal,
		DiscountTotal:     preview.DiscountTotal,
		NetMora:           preview.NetMora,
		NetPrincipal:      preview.NetPrincipal,
		NetBase:           preview.NetBase,
	}, nil
}
