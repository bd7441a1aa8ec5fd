// Package recipients implements the notification recipient domain for
// LeaseWatch. Recipients pair a tenant name with the email address that
// receives expiry alerts for that tenant's agreements.
package recipients

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recipient represents a tenant-to-email notification pair.
type Recipient struct {
	ID         uuid.UUID `json:"id"`
	TenantName string    `json:"tenant_name"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to register a recipient.
type CreateCommand struct {
	TenantName string `json:"tenant_name"`
	Email      string `json:"email"`
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks the command for a non-empty tenant name and a
// well-formed email address.
func (cmd CreateCommand) Validate() error {
	if strings.TrimSpace(cmd.TenantName) == "" {
		return ErrEmptyTenant
	}
	if !emailPattern.MatchString(strings.TrimSpace(cmd.Email)) {
		return ErrInvalidEmail
	}
	return nil
}

// MatchesTenant reports whether the recipient is registered for the given
// tenant name. Matching ignores case and surrounding whitespace, because
// tenant names arrive from unreliable document extraction.
func (r Recipient) MatchesTenant(tenantName string) bool {
	return strings.EqualFold(
		strings.TrimSpace(r.TenantName),
		strings.TrimSpace(tenantName),
	)
}
