package archive

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leasewatch/leasewatch/internal/agreements"
	"github.com/leasewatch/leasewatch/internal/alerts"
	"github.com/leasewatch/leasewatch/pkg/pagination"
	"github.com/leasewatch/leasewatch/pkg/query"
	"github.com/leasewatch/leasewatch/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an archive repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "archive"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
) (*pagination.PageResult[ArchivedAgreement], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "TenantName", "Building")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count archived agreements: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanArchived)
	if err != nil {
		return nil, fmt.Errorf("query archived agreements: %w", err)
	}

	now := time.Now()
	for i := range items {
		items[i].AlertStatus = alerts.Classify(items[i].AgreementExpiryDate, now)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*ArchivedAgreement, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanArchived)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	a.AlertStatus = alerts.Classify(a.AgreementExpiryDate, time.Now())
	return &a, nil
}

// Restore moves an archived agreement back into the active set, stamping
// restored_at. Field values transfer untouched; archived records are
// never re-normalized.
func (r *repo) Restore(ctx context.Context, id uuid.UUID) (*agreements.Agreement, error) {
	restoreQ := `
		INSERT INTO agreements(
			id, document_id, tenant_name, area_sqft, floor, building,
			period_of_rent, rent_amount, maintenance_amount, rent_escalation,
			agreement_start_date, agreement_expiry_date, lock_in_period,
			lock_in_period_end_date, rental_period_greater_than_lock_in,
			next_rent_escalation, uploaded_at, updated_at, restored_at
		)
		SELECT id, document_id, tenant_name, area_sqft, floor, building,
			   period_of_rent, rent_amount, maintenance_amount, rent_escalation,
			   agreement_start_date, agreement_expiry_date, lock_in_period,
			   lock_in_period_end_date, rental_period_greater_than_lock_in,
			   next_rent_escalation, uploaded_at, NOW(), NOW()
		FROM archived_agreements
		WHERE id = $1
		RETURNING id, document_id, tenant_name, area_sqft, floor, building,
				  period_of_rent, rent_amount, maintenance_amount, rent_escalation,
				  agreement_start_date, agreement_expiry_date, lock_in_period,
				  lock_in_period_end_date, rental_period_greater_than_lock_in,
				  next_rent_escalation, uploaded_at, updated_at, restored_at`

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (agreements.Agreement, error) {
		restored, err := repository.QueryOne(ctx, tx, restoreQ, []any{id}, scanRestored)
		if err != nil {
			return agreements.Agreement{}, fmt.Errorf("restore agreement: %w", err)
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM archived_agreements WHERE id = $1",
			id,
		); err != nil {
			return agreements.Agreement{}, fmt.Errorf("remove archived agreement: %w", err)
		}

		return restored, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	a.AlertStatus = alerts.Classify(a.AgreementExpiryDate, time.Now())

	r.logger.Info("agreement restored", "id", a.ID, "tenant", a.TenantName)
	return &a, nil
}

func scanRestored(s repository.Scanner) (agreements.Agreement, error) {
	var a agreements.Agreement

	err := s.Scan(
		&a.ID,
		&a.DocumentID,
		&a.TenantName,
		&a.AreaSqft,
		&a.Floor,
		&a.Building,
		&a.PeriodOfRent,
		&a.RentAmount,
		&a.MaintenanceAmount,
		&a.RentEscalation,
		&a.AgreementStartDate,
		&a.AgreementExpiryDate,
		&a.LockInPeriod,
		&a.LockInPeriodEndDate,
		&a.RentalExceedsLockIn,
		&a.NextRentEscalation,
		&a.UploadedAt,
		&a.UpdatedAt,
		&a.RestoredAt,
	)

	return a, err
}
