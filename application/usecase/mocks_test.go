package usecase_test

import (
	"context"
	"fmt"

	"github.com/amsolucionesw-art/financiera-ledger/domain/event"
	"github.com/amsolucionesw-art/financiera-ledger/domain/model"
)

type mockCreditRepository struct {
	findByIDFunc    func(ctx context.Context, id string) (model.Credit, error)
	saveFunc        func(ctx context.Context, credit model.Credit) error
	savePaymentFunc func(ctx context.Context, payment model.Payment) error

	savedCredits  []model.Credit
	savedPayments []model.Payment
}

func (m *mockCreditRepository) FindByID(ctx context.Context, id string) (model.Credit, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Credit{}, fmt.Errorf("credit not found")
}

func (m *mockCreditRepository) Save(ctx context.Context, credit model.Credit) error {
	if m.saveFunc != nil {
		if err := m.saveFunc(ctx, credit); err != nil {
			return err
		}
	}
	m.savedCredits = append(m.savedCredits, credit)
	return nil
}

func (m *mockCreditRepository) SavePayment(ctx context.Context, payment model.Payment) error {
	if m.savePaymentFunc != nil {
		if err := m.savePaymentFunc(ctx, payment); err != nil {
			return err
		}
	}
	m.savedPayments = append(m.savedPayments, payment)
	return nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, evts ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		if err := m.publishFunc(ctx, evts...); err != nil {
			return err
		}
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}
