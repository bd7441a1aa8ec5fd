package archive

import (
	"github.com/leasewatch/leasewatch/pkg/query"
	"github.com/leasewatch/leasewatch/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "archived_agreements", "ar").
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
	Project("archived_at", "ArchivedAt")

// Newest-archived first.
var defaultSort = query.SortField{
	Field:      "ArchivedAt",
	Descending: true,
}

func scanArchived(s repository.Scanner) (ArchivedAgreement, error) {
	var a ArchivedAgreement

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
		&a.ArchivedAt,
	)

	return a, err
}
