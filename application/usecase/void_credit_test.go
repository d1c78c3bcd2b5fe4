package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amsolucionesw-art/financiera-ledger/application/dto"
	"github.com/amsolucionesw-art/financiera-ledger/application/usecase"
	"github.com/amsolucionesw-art/financiera-ledger/domain/model"
	"github.com/amsolucionesw-art/financiera-ledger/domain/valueobject"
)

func TestVoidCredit_Execute(t *testing.T) {
	t.Run("voids an active credit", func(t *testing.T) {
		credit := testFixedCredit(t)
		repo := &mockCreditRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Credit, error) {
				return credit, nil
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewVoidCreditUseCase(repo, publisher)

		resp, err := uc.Execute(context.Background(), dto.VoidCreditRequest{CreditID: credit.ID()})

		require.NoError(t, err)
		assert.Equal(t, "VOIDED", resp.Status)
		require.Len(t, repo.savedCredits, 1)
		assert.True(t, repo.savedCredits[0].Status().Equal(valueobject.CreditStatusVoided))
		assert.NotEmpty(t, publisher.publishedEvents)
	})

	t.Run("voiding twice is rejected", func(t *testing.T) {
		credit := testFixedCredit(t)
		voided, err := credit.Void(anchor)
		require.NoError(t, err)

		repo := &mockCreditRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Credit, error) {
				return voided, nil
			},
		}
		uc := usecase.NewVoidCreditUseCase(repo, &mockEventPublisher{})

		_, err = uc.Execute(context.Background(), dto.VoidCreditRequest{CreditID: voided.ID()})
		var locked valueobject.CreditLockedError
		assert.ErrorAs(t, err, &locked)
		assert.Empty(t, repo.savedCredits)
	})
}
