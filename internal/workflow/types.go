package workflow

import (
	"time"

	"github.com/google/uuid"
)

// State bag keys shared across workflow nodes.
const (
	KeyDocumentID = "document_id"
	KeyTempDir    = "temp_dir"
	KeyFilename   = "filename"
	KeyPages      = "pages"
	KeyFields     = "fields"
)

// LeaseFields holds the raw lease terms extracted from an agreement
// scan, exactly as the model transcribed them. Normalization happens
// downstream at ingestion.
type LeaseFields struct {
	TenantName          string `json:"tenant_name"`
	AreaSqft            string `json:"area_sqft"`
	Floor               string `json:"floor"`
	Building            string `json:"building"`
	PeriodOfRent        string `json:"period_of_rent"`
	RentAmount          string `json:"rent_amount"`
	MaintenanceAmount   string `json:"maintenance_amount"`
	RentEscalation      string `json:"rent_escalation"`
	AgreementStartDate  string `json:"agreement_start_date"`
	AgreementExpiryDate string `json:"agreement_expiry_date"`
	LockInPeriod        string `json:"lock_in_period"`
	LockInPeriodEndDate string `json:"lock_in_period_end_date"`
	RentalExceedsLockIn string `json:"rental_period_greater_than_lock_in"`
	NextRentEscalation  string `json:"next_rent_escalation"`
}

// Merge fills empty fields of f from other, preferring values already
// present. Later pages supplement but never override earlier pages.
func (f *LeaseFields) Merge(other LeaseFields) {
	merge := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	merge(&f.TenantName, other.TenantName)
	merge(&f.AreaSqft, other.AreaSqft)
	merge(&f.Floor, other.Floor)
	merge(&f.Building, other.Building)
	merge(&f.PeriodOfRent, other.PeriodOfRent)
	merge(&f.RentAmount, other.RentAmount)
	merge(&f.MaintenanceAmount, other.MaintenanceAmount)
	merge(&f.RentEscalation, other.RentEscalation)
	merge(&f.AgreementStartDate, other.AgreementStartDate)
	merge(&f.AgreementExpiryDate, other.AgreementExpiryDate)
	merge(&f.LockInPeriod, other.LockInPeriod)
	merge(&f.LockInPeriodEndDate, other.LockInPeriodEndDate)
	merge(&f.RentalExceedsLockIn, other.RentalExceedsLockIn)
	merge(&f.NextRentEscalation, other.NextRentEscalation)
}

// Empty reports whether no field carries a value.
func (f LeaseFields) Empty() bool {
	return f == LeaseFields{}
}

// Page tracks one rendered page image and its extraction result.
type Page struct {
	PageNumber int
	ImagePath  string
	Fields     LeaseFields
}

// Result is the outcome of a completed extraction workflow.
type Result struct {
	DocumentID  uuid.UUID   `json:"document_id"`
	Filename    string      `json:"filename"`
	PageCount   int         `json:"page_count"`
	Fields      LeaseFields `json:"fields"`
	CompletedAt time.Time   `json:"completed_at"`
}
