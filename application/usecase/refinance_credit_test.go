package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amsolucionesw-art/financiera-ledger/application/dto"
	"github.com/amsolucionesw-art/financiera-ledger/application/usecase"
	"github.com/amsolucionesw-art/financiera-ledger/domain/model"
	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
)

func TestRefinanceCredit_Execute(t *testing.T) {
	accrual, _ := newServices()
	asOf := time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)

	quoteFor := func(balance string) dto.RefinancingQuote {
		return dto.RefinancingQuote{
			Balance:          decimal.RequireFromString(balance),
			Tier:             "P2",
			Periodicity:      "MONTHLY",
			InstallmentCount: 4,
			MonthlyRate:      decimal.NewFromInt(15),
			PeriodRate:       decimal.NewFromInt(15),
			TotalInterestPct: decimal.NewFromInt(60),
		}
	}

	t.Run("closes the origin and opens the new plan", func(t *testing.T) {
		// Open-ended balance at 2025-02-20: 5,000 + 1,000 + 125 = 6,125.
		origin := testOpenEndedCredit(t)
		repo := &mockCreditRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Credit, error) {
				return origin, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewRefinanceCreditUseCase(repo, accrual, publisher)

		resp, err := uc.Execute(context.Background(), dto.RefinanceCreditRequest{
			CreditID: origin.ID(),
			Quote:    quoteFor("6125"),
			AsOf:     asOf,
		})

		require.NoError(t, err)
		assert.Equal(t, origin.ID(), resp.OriginCreditID)
		assert.Equal(t, "REFINANCED", resp.OriginStatus)
		assert.True(t, decimal.NewFromInt(6125).Equal(resp.Transferred))

		assert.Equal(t, "FIXED", resp.NewCredit.Modality)
		assert.Equal(t, "MONTHLY", resp.NewCredit.Periodicity)
		assert.Equal(t, origin.ID(), resp.NewCredit.OriginCreditID)
		assert.True(t, decimal.NewFromInt(6125).Equal(resp.NewCredit.Principal))
		require.Len(t, resp.NewCredit.Installments, 4)

		// 6,125 at 60% over 4: total 9,800, 2,450 each.
		for _, inst := range resp.NewCredit.Installments {
			assert.True(t, decimal.NewFromInt(2450).Equal(inst.Scheduled),
				"installment %d scheduled %s", inst.Number, inst.Scheduled)
		}

		require.Len(t, repo.savedCredits, 2)
		assert.True(t, repo.savedCredits[0].Status().Equal(valueobject.CreditStatusRefinanced))
		assert.True(t, repo.savedCredits[1].Status().Equal(valueobject.CreditStatusPending))
		assert.NotEmpty(t, publisher.publishedEvents)
	})

	t.Run("rejects a stale quote", func(t *testing.T) {
		origin := testOpenEndedCredit(t)
		repo := &mockCreditRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Credit, error) {
				return origin, nil
			},
		}
		uc := usecase.NewRefinanceCreditUseCase(repo, accrual, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.RefinanceCreditRequest{
			CreditID: origin.ID(),
			Quote:    quoteFor("6000"),
			AsOf:     asOf,
		})

		assert.ErrorIs(t, err, valueobject.ErrInconsistentBalance)
		assert.Empty(t, repo.savedCredits)
	})

	t.Run("rejects an already refinanced credit", func(t *testing.T) {
		origin := testOpenEndedCredit(t)
		closed, err := origin.MarkRefinanced("credit-next", decimal.NewFromInt(6125), asOf)
		require.NoError(t, err)

		repo := &mockCreditRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Credit, error) {
				return closed, nil
			},
		}
		uc := usecase.NewRefinanceCreditUseCase(repo, accrual, &mockEventPublisher{})

		_, err = uc.Execute(context.Background(), dto.RefinanceCreditRequest{
			CreditID: closed.ID(),
			Quote:    quoteFor("6125"),
			AsOf:     asOf,
		})

		var locked valueobject.CreditLockedError
		assert.ErrorAs(t, err, &locked)
	})

	t.Run("rejects invalid quote inputs", func(t *testing.T) {
		uc := usecase.NewRefinanceCreditUseCase(&mockCreditRepository{}, accrual, &mockEventPublisher{})

		q := quoteFor("6125")
		q.Periodicity = "DAILY"
		_, err := uc.Execute(context.Background(), dto.RefinanceCreditRequest{
			CreditID: "credit-1", Quote: q, AsOf: asOf,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse periodicity")

		q = quoteFor("6125")
		q.InstallmentCount = 0
		_, err = uc.Execute(context.Background(), dto.RefinanceCreditRequest{
			CreditID: "credit-1", Quote: q, AsOf: asOf,
		})
		assert.ErrorIs(t, err, valueobject.ErrInvalidRefinancingInput)
	})
}
