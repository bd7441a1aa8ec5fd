package agreements

import (
	"context"

	"github.com/google/uuid"

	"github.com/leasewatch/leasewatch/pkg/pagination"
)

// System defines the public contract for agreement domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Agreement], error)

	All(ctx context.Context) ([]Agreement, error)
	Find(ctx context.Context, id uuid.UUID) (*Agreement, error)
	Create(ctx context.Context, cmd CreateCommand) (*Agreement, error)
	Ingest(ctx context.Context, documentID uuid.UUID) (*Agreement, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Agreement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
