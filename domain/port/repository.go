package port

import (
	"context"

	"github.com/amsolucionesw-art/financiera-ledger/domain/event"
	"github.com/amsolucionesw-art/financiera-ledger/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// CreditRepository supplies complete credit snapshots and persists the
// results of mutating operations. Implementations own concurrency control:
// two concurrent partial payments computed from the same stale snapshot
// would double-count availability, so mutating operations must be serialized
// per credit (row lock or optimistic check on the aggregate version).
type CreditRepository interface {
	FindByID(ctx context.Context, id string) (model.Credit, error)
	Save(ctx context.Context, credit model.Credit) error
	SavePayment(ctx context.Context, payment model.Payment) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
