package recipients

import (
	"net/url"

	"github.com/leasewatch/leasewatch/pkg/query"
	"github.com/leasewatch/leasewatch/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "recipients", "r").
	Project("id", "ID").
	Project("tenant_name", "TenantName").
	Project("email", "Email").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "TenantName"}

// Filters contains optional filtering criteria for recipient queries.
type Filters struct {
	TenantName *string `json:"tenant_name,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereEquals("TenantName", f.TenantName)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("tenant_name"); t != "" {
		f.TenantName = &t
	}

	return f
}

func scanRecipient(s repository.Scanner) (Recipient, error) {
	var r Recipient

	err := s.Scan(
		&r.ID,
		&r.TenantName,
		&r.Email,
		&r.CreatedAt,
	)

	return r, err
}
