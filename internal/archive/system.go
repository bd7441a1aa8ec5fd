package archive

import (
	"context"

	"github.com/google/uuid"

	"github.com/leasewatch/leasewatch/internal/agreements"
	"github.com/leasewatch/leasewatch/pkg/pagination"
)

// System defines the public contract for archive domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
	) (*pagination.PageResult[ArchivedAgreement], error)

	Find(ctx context.Context, id uuid.UUID) (*ArchivedAgreement, error)
	Restore(ctx context.Context, id uuid.UUID) (*agreements.Agreement, error)
}
