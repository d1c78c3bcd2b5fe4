// Package ledger wires the installment ledger engine: accrual, discounts,
// payment allocation and refinancing pricing behind a single facade.
package ledger

import (
	"github.com/amsolucionesw-art/financiera-ledger/application/usecase"
	"github.com/amsolucionesw-art/financiera-ledger/config"
	"github.com/amsolucionesw-art/financiera-ledger/domain/port"
	"github.com/amsolucionesw-art/financiera-ledger/domain/service"
)

// Engine exposes the ledger operations. Construct with NewEngine.
type Engine struct {
	Outstanding        *usecase.GetOutstandingUseCase
	PreviewDiscount    *usecase.PreviewDiscountUseCase
	SubmitPayment      *usecase.SubmitPaymentUseCase
	PreviewRefinancing *usecase.PreviewRefinancingUseCase
	Refinance          *usecase.RefinanceCreditUseCase
	Void               *usecase.VoidCreditUseCase
}

// NewEngine builds the engine from configuration and the persistence and
// publishing ports.
func NewEngine(cfg config.Config, credits port.CreditRepository, publisher port.EventPublisher) *Engine {
	cycles := service.NewCycleResolver(cfg.Location())
	accrual := service.NewAccrualEngine(cycles, cfg.MoraDailyRate)
	discounts := service.NewDiscountPolicy()
	allocator := service.NewPaymentAllocator(accrual, discounts)
	pricer := service.NewRefinancePricer(cfg.TierP1MonthlyRate, cfg.TierP2MonthlyRate)

	return &Engine{
		Outstanding:        usecase.NewGetOutstandingUseCase(credits, accrual),
		PreviewDiscount:    usecase.NewPreviewDiscountUseCase(discounts),
		SubmitPayment:      usecase.NewSubmitPaymentUseCase(credits, allocator, publisher),
		PreviewRefinancing: usecase.NewPreviewRefinancingUseCase(pricer),
		Refinance:          usecase.NewRefinanceCreditUseCase(credits, accrual, publisher),
		Void:               usecase.NewVoidCreditUseCase(credits, publisher),
	}
}
