package agreements

import (
	"net/url"

	"github.com/leasewatch/leasewatch/pkg/query"
	"github.com/leasewatch/leasewatch/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "agreements", "a").
	Project("id", "ID").
	Project("document_id", "DocumentID").
	Project("tenant_name", "TenantName").
	Project("area_sqft", "AreaSqft").
	Project("floor", "Floor").
	Project("building", "Building").
	Project("period_of_rent", "PeriodOfRent").
	Project("rent_amount", "RentAmount").
	Project("maintenance_amount", "MaintenanceAmount").
	Project("rent_escalation", "RentEscalation").
	Project("agreement_start_date", "AgreementStartDate").
	Project("agreement_expiry_date", "AgreementExpiryDate").
	Project("lock_in_period", "LockInPeriod").
	Project("lock_in_period_end_date", "LockInPeriodEndDate").
	Project("rental_period_greater_than_lock_in", "RentalExceedsLockIn").
	Project("next_rent_escalation", "NextRentEscalation").
	Project("uploaded_at", "UploadedAt").
	Project("updated_at", "UpdatedAt").
	Project("restored_at", "RestoredAt")

var defaultSort = query.SortField{
	Field:      "UploadedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for agreement queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Building            *string `json:"building,omitempty"`
	Floor               *string `json:"floor,omitempty"`
	RentalExceedsLockIn *bool   `json:"rental_period_greater_than_lock_in,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Building", f.Building).
		WhereEquals("Floor", f.Floor).
		WhereEquals("RentalExceedsLockIn", f.RentalExceedsLockIn)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if b := values.Get("building"); b != "" {
		f.Building = &b
	}

	if fl := values.Get("floor"); fl != "" {
		f.Floor = &fl
	}

	switch values.Get("rental_period_greater_than_lock_in") {
	case "true":
		yes := true
		f.RentalExceedsLockIn = &yes
	case "false":
		no := false
		f.RentalExceedsLockIn = &no
	}

	return f
}

func scanAgreement(s repository.Scanner) (Agreement, error) {
	var a Agreement

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
