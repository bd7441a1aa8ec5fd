// Package archive implements the archived agreement domain for LeaseWatch.
// Deleting an agreement moves it here rather than destroying it; archived
// records keep the canonical field values they were stored with and can be
// restored back into the active set.
package archive

import (
	"time"

	"github.com/google/uuid"

	"github.com/leasewatch/leasewatch/internal/alerts"
)

// ArchivedAgreement represents a lease agreement moved out of the active
// set. Field values are immutable once archived; AlertStatus is still
// derived on read so expiring records remain visible in the archive.
type ArchivedAgreement struct {
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
	ArchivedAt          time.Time   `json:"archived_at"`
	AlertStatus         alerts.Tier `json:"alert_status"`
}
