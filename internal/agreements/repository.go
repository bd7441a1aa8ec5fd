package agreements

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leasewatch/leasewatch/internal/alerts"
	"github.com/leasewatch/leasewatch/internal/documents"
	"github.com/leasewatch/leasewatch/internal/workflow"
	"github.com/leasewatch/leasewatch/pkg/pagination"
	"github.com/leasewatch/leasewatch/pkg/query"
	"github.com/leasewatch/leasewatch/pkg/repository"
	"github.com/leasewatch/leasewatch/pkg/storage"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const returningColumns = `id, document_id, tenant_name, area_sqft, floor, building,
		  period_of_rent, rent_amount, maintenance_amount, rent_escalation,
		  agreement_start_date, agreement_expiry_date, lock_in_period,
		  lock_in_period_end_date, rental_period_greater_than_lock_in,
		  next_rent_escalation, uploaded_at, updated_at, restored_at`

type repo struct {
	db         *sql.DB
	rt         *workflow.Runtime
	docs       documents.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an agreement repository implementing the System interface.
// It internally constructs the extraction workflow runtime from the
// provided dependencies.
func New(
	db *sql.DB,
	agent gaconfig.AgentConfig,
	logger *slog.Logger,
	pagination pagination.Config,
	storage storage.System,
	docs documents.System,
) System {
	rt := &workflow.Runtime{
		Agent:     agent,
		Storage:   storage,
		Documents: docs,
		Logger:    logger.With("workflow", "extract"),
	}
	return &repo{
		db:         db,
		rt:         rt,
		docs:       docs,
		logger:     logger.With("system", "agreements"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Agreement], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "TenantName", "Building")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count agreements: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAgreement)
	if err != nil {
		return nil, fmt.Errorf("query agreements: %w", err)
	}

	r.classifyAll(ctx, items)

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) All(ctx context.Context) ([]Agreement, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanAgreement)
	if err != nil {
		return nil, fmt.Errorf("query agreements: %w", err)
	}

	r.classifyAll(ctx, items)
	return items, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Agreement, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAgreement)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.classify(ctx, &a, time.Now())
	return &a, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Agreement, error) {
	canonical := Canonicalize(cmd.Fields)

	a, err := repository.QueryOne(ctx, r.db, insertQuery, insertArgs(cmd.DocumentID, canonical), scanAgreement)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.classify(ctx, &a, time.Now())

	r.logger.Info("agreement created",
		"id", a.ID,
		"tenant", a.TenantName,
	)
	return &a, nil
}

func (r *repo) Ingest(ctx context.Context, documentID uuid.UUID) (*Agreement, error) {
	result, err := workflow.Execute(ctx, r.rt, documentID)
	if err != nil {
		if serr := r.docs.SetStatus(ctx, documentID, documents.StatusFailed); serr != nil {
			r.logger.ErrorContext(ctx, "mark document failed",
				"document_id", documentID,
				"error", serr,
			)
		}
		return nil, fmt.Errorf("extract document %s: %w", documentID, err)
	}

	if result.Fields.Empty() {
		if serr := r.docs.SetStatus(ctx, documentID, documents.StatusFailed); serr != nil {
			r.logger.ErrorContext(ctx, "mark document failed",
				"document_id", documentID,
				"error", serr,
			)
		}
		return nil, fmt.Errorf("document %s: %w", documentID, ErrNoFields)
	}

	canonical := Canonicalize(result.Fields)

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Agreement, error) {
		created, err := repository.QueryOne(ctx, tx, insertQuery, insertArgs(&documentID, canonical), scanAgreement)
		if err != nil {
			return Agreement{}, fmt.Errorf("insert agreement: %w", err)
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"UPDATE documents SET status = $1, updated_at = NOW() WHERE id = $2",
			documents.StatusExtracted, documentID,
		); err != nil {
			return Agreement{}, fmt.Errorf("update document status: %w", err)
		}

		return created, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.classify(ctx, &a, time.Now())

	r.logger.Info("document ingested",
		"id", a.ID,
		"document_id", documentID,
		"tenant", a.TenantName,
		"pages", result.PageCount,
	)
	return &a, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Agreement, error) {
	updateQ := `
		UPDATE agreements
		SET tenant_name = $1, area_sqft = $2, floor = $3, building = $4,
			period_of_rent = $5, rent_amount = $6, maintenance_amount = $7,
			rent_escalation = $8, agreement_start_date = $9,
			agreement_expiry_date = $10, lock_in_period = $11,
			lock_in_period_end_date = $12,
			rental_period_greater_than_lock_in = $13,
			next_rent_escalation = $14, updated_at = NOW()
		WHERE id = $15
		RETURNING ` + returningColumns

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Agreement, error) {
		q, args := query.NewBuilder(projection).BuildSingle("ID", id)
		current, err := repository.QueryOne(ctx, tx, q, args, scanAgreement)
		if err != nil {
			return Agreement{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}

		current.apply(cmd)

		updateArgs := []any{
			current.TenantName,
			current.AreaSqft,
			current.Floor,
			current.Building,
			current.PeriodOfRent,
			current.RentAmount,
			current.MaintenanceAmount,
			current.RentEscalation,
			current.AgreementStartDate,
			current.AgreementExpiryDate,
			current.LockInPeriod,
			current.LockInPeriodEndDate,
			current.RentalExceedsLockIn,
			current.NextRentEscalation,
			id,
		}

		updated, err := repository.QueryOne(ctx, tx, updateQ, updateArgs, scanAgreement)
		if err != nil {
			return Agreement{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}

		return updated, nil
	})

	if err != nil {
		return nil, err
	}

	r.classify(ctx, &a, time.Now())

	r.logger.Info("agreement updated", "id", a.ID)
	return &a, nil
}

// Delete moves the agreement into the archive rather than removing it.
// Both the copy and the removal happen in one transaction so the record
// is never lost or duplicated.
func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	archiveQ := `
		INSERT INTO archived_agreements(
			id, document_id, tenant_name, area_sqft, floor, building,
			period_of_rent, rent_amount, maintenance_amount, rent_escalation,
			agreement_start_date, agreement_expiry_date, lock_in_period,
			lock_in_period_end_date, rental_period_greater_than_lock_in,
			next_rent_escalation, uploaded_at, updated_at, archived_at
		)
		SELECT id, document_id, tenant_name, area_sqft, floor, building,
			   period_of_rent, rent_amount, maintenance_amount, rent_escalation,
			   agreement_start_date, agreement_expiry_date, lock_in_period,
			   lock_in_period_end_date, rental_period_greater_than_lock_in,
			   next_rent_escalation, uploaded_at, updated_at, NOW()
		FROM agreements
		WHERE id = $1`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(ctx, tx, archiveQ, id); err != nil {
			return struct{}{}, fmt.Errorf("archive agreement: %w", err)
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM agreements WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, fmt.Errorf("remove agreement: %w", err)
		}

		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("agreement archived", "id", id)
	return nil
}

const insertQuery = `
	INSERT INTO agreements(
		document_id, tenant_name, area_sqft, floor, building,
		period_of_rent, rent_amount, maintenance_amount, rent_escalation,
		agreement_start_date, agreement_expiry_date, lock_in_period,
		lock_in_period_end_date, rental_period_greater_than_lock_in,
		next_rent_escalation
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING ` + returningColumns

func insertArgs(documentID *uuid.UUID, a Agreement) []any {
	return []any{
		documentID,
		a.TenantName,
		a.AreaSqft,
		a.Floor,
		a.Building,
		a.PeriodOfRent,
		a.RentAmount,
		a.MaintenanceAmount,
		a.RentEscalation,
		a.AgreementStartDate,
		a.AgreementExpiryDate,
		a.LockInPeriod,
		a.LockInPeriodEndDate,
		a.RentalExceedsLockIn,
		a.NextRentEscalation,
	}
}

// classify recomputes the alert tier for a single agreement. Unparsable
// expiry dates are logged but still yield an empty tier so the record
// renders without an alert.
func (r *repo) classify(ctx context.Context, a *Agreement, today time.Time) {
	tier, err := alerts.ClassifyDate(a.AgreementExpiryDate, today)
	if err != nil {
		r.logger.WarnContext(ctx, "unparsable expiry date",
			"id", a.ID,
			"expiry", a.AgreementExpiryDate,
		)
	}
	a.AlertStatus = tier
}

func (r *repo) classifyAll(ctx context.Context, items []Agreement) {
	now := time.Now()
	for i := range items {
		r.classify(ctx, &items[i], now)
	}
}
