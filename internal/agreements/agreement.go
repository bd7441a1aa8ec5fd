// Package agreements implements the lease agreement domain for LeaseWatch.
// It provides types, data access, and business logic for storing, querying,
// updating, and exporting lease agreements extracted from scanned documents.
package agreements

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leasewatch/leasewatch/internal/alerts"
	"github.com/leasewatch/leasewatch/internal/normalize"
	"github.com/leasewatch/leasewatch/internal/workflow"
)

// Agreement represents a stored lease agreement. Field values are held in
// canonical form: normalization happens once, when an agreement enters the
// system. AlertStatus is derived from the expiry date on every read and is
// never persisted.
type Agreement struct {
	ID                  uuid.UUID   `json:"id"`
	DocumentID          *uuid.UUID  `json:"document_id"`
	TenantName          string      `json:"tenant_name"`
	AreaSqft            string      `json:"area_sqft"`
	Floor               string      `json:"floor"`
	Building            string      `json:"building"`
	PeriodOfRent        string      `json:"period_of_rent"`
	RentAmount          string      `json:"rent_amount"`
	MaintenanceAmount   string      `json:"maintenance_amount"`
	RentEscalation      string      `json:"rent_escalation"`
	AgreementStartDate  string      `json:"agreement_start_date"`
	AgreementExpiryDate string      `json:"agreement_expiry_date"`
	LockInPeriod        string      `json:"lock_in_period"`
	LockInPeriodEndDate string      `json:"lock_in_period_end_date"`
	RentalExceedsLockIn bool        `json:"rental_period_greater_than_lock_in"`
	NextRentEscalation  string      `json:"next_rent_escalation"`
	UploadedAt          time.Time   `json:"uploaded_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
	RestoredAt          *time.Time  `json:"restored_at,omitempty"`
	AlertStatus         alerts.Tier `json:"alert_status"`
}

// CreateCommand carries raw lease field values for a new agreement,
// optionally linked to an uploaded document. Values are normalized
// before storage.
type CreateCommand struct {
	DocumentID *uuid.UUID           `json:"document_id,omitempty"`
	Fields     workflow.LeaseFields `json:"fields"`
}

// UpdateCommand carries raw replacement values for an existing agreement.
// Nil fields are left untouched; supplied values pass through the same
// normalization as ingestion.
type UpdateCommand struct {
	TenantName          *string `json:"tenant_name,omitempty"`
	AreaSqft            *string `json:"area_sqft,omitempty"`
	Floor               *string `json:"floor,omitempty"`
	Building            *string `json:"building,omitempty"`
	PeriodOfRent        *string `json:"period_of_rent,omitempty"`
	RentAmount          *string `json:"rent_amount,omitempty"`
	MaintenanceAmount   *string `json:"maintenance_amount,omitempty"`
	RentEscalation      *string `json:"rent_escalation,omitempty"`
	AgreementStartDate  *string `json:"agreement_start_date,omitempty"`
	AgreementExpiryDate *string `json:"agreement_expiry_date,omitempty"`
	LockInPeriod        *string `json:"lock_in_period,omitempty"`
	LockInPeriodEndDate *string `json:"lock_in_period_end_date,omitempty"`
	RentalExceedsLockIn *string `json:"rental_period_greater_than_lock_in,omitempty"`
	NextRentEscalation  *string `json:"next_rent_escalation,omitempty"`
}

// Canonicalize converts raw extracted lease fields into their stored
// canonical forms. Dates are kept as trimmed text because the extraction
// emits them in varied formats; parsing is deferred to alert
// classification.
func Canonicalize(raw workflow.LeaseFields) Agreement {
	return Agreement{
		TenantName:          strings.TrimSpace(raw.TenantName),
		AreaSqft:            normalize.AreaSqft(raw.AreaSqft),
		Floor:               normalize.Floor(raw.Floor),
		Building:            normalize.Building(raw.Building),
		PeriodOfRent:        normalize.PeriodMonths(raw.PeriodOfRent),
		RentAmount:          normalize.RentAmount(raw.RentAmount),
		MaintenanceAmount:   normalize.Maintenance(raw.MaintenanceAmount),
		RentEscalation:      normalize.RentEscalation(raw.RentEscalation),
		AgreementStartDate:  strings.TrimSpace(raw.AgreementStartDate),
		AgreementExpiryDate: strings.TrimSpace(raw.AgreementExpiryDate),
		LockInPeriod:        normalize.PeriodMonths(raw.LockInPeriod),
		LockInPeriodEndDate: strings.TrimSpace(raw.LockInPeriodEndDate),
		RentalExceedsLockIn: normalize.Flag(raw.RentalExceedsLockIn),
		NextRentEscalation:  strings.TrimSpace(raw.NextRentEscalation),
	}
}

// apply merges an update command onto an agreement, normalizing every
// supplied value.
func (a *Agreement) apply(cmd UpdateCommand) {
	if cmd.TenantName != nil {
		a.TenantName = strings.TrimSpace(*cmd.TenantName)
	}
	if cmd.AreaSqft != nil {
		a.AreaSqft = normalize.AreaSqft(*cmd.AreaSqft)
	}
	if cmd.Floor != nil {
		a.Floor = normalize.Floor(*cmd.Floor)
	}
	if cmd.Building != nil {
		a.Building = normalize.Building(*cmd.Building)
	}
	if cmd.PeriodOfRent != nil {
		a.PeriodOfRent = normalize.PeriodMonths(*cmd.PeriodOfRent)
	}
	if cmd.RentAmount != nil {
		a.RentAmount = normalize.RentAmount(*cmd.RentAmount)
	}
	if cmd.MaintenanceAmount != nil {
		a.MaintenanceAmount = normalize.Maintenance(*cmd.MaintenanceAmount)
	}
	if cmd.RentEscalation != nil {
		a.RentEscalation = normalize.RentEscalation(*cmd.RentEscalation)
	}
	if cmd.AgreementStartDate != nil {
		a.AgreementStartDate = strings.TrimSpace(*cmd.AgreementStartDate)
	}
	if cmd.AgreementExpiryDate != nil {
		a.AgreementExpiryDate = strings.TrimSpace(*cmd.AgreementExpiryDate)
	}
	if cmd.LockInPeriod != nil {
		a.LockInPeriod = normalize.PeriodMonths(*cmd.LockInPeriod)
	}
	if cmd.LockInPeriodEndDate != nil {
		a.LockInPeriodEndDate = strings.TrimSpace(*cmd.LockInPeriodEndDate)
	}
	if cmd.RentalExceedsLockIn != nil {
		a.RentalExceedsLockIn = normalize.Flag(*cmd.RentalExceedsLockIn)
	}
	if cmd.NextRentEscalation != nil {
		a.NextRentEscalation = strings.TrimSpace(*cmd.NextRentEscalation)
	}
}
