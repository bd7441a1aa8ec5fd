package recipients

import (
	"context"

	"github.com/google/uuid"

	"github.com/leasewatch/leasewatch/pkg/pagination"
)

// System defines the public contract for recipient domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Recipient], error)

	All(ctx context.Context) ([]Recipient, error)
	Find(ctx context.Context, id uuid.UUID) (*Recipient, error)
	Create(ctx context.Context, cmd CreateCommand) (*Recipient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
