package recipients

import (
	"errors"
	"testing"
)

func TestCreateCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateCommand
		wantErr error
	}{
		{
			name: "valid",
			cmd:  CreateCommand{TenantName: "Acme Corp", Email: "alerts@acme.com"},
		},
		{
			name: "valid with plus tag",
			cmd:  CreateCommand{TenantName: "Acme Corp", Email: "alerts+lease@acme.co.in"},
		},
		{
			name:    "empty tenant",
			cmd:     CreateCommand{TenantName: "   ", Email: "alerts@acme.com"},
			wantErr: ErrEmptyTenant,
		},
		{
			name:    "empty email",
			cmd:     CreateCommand{TenantName: "Acme Corp", Email: ""},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing domain",
			cmd:     CreateCommand{TenantName: "Acme Corp", Email: "alerts@"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing tld",
			cmd:     CreateCommand{TenantName: "Acme Corp", Email: "alerts@acme"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "embedded space",
			cmd:     CreateCommand{TenantName: "Acme Corp", Email: "al erts@acme.com"},
			wantErr: ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMatchesTenant(t *testing.T) {
	r := Recipient{TenantName: "Acme Corp"}

	tests := []struct {
		name   string
		tenant string
		want   bool
	}{
		{"exact", "Acme Corp", true},
		{"case insensitive", "ACME CORP", true},
		{"surrounding whitespace", "  acme corp  ", true},
		{"different tenant", "Globex", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.MatchesTenant(tt.tenant); got != tt.want {
				t.Errorf("MatchesTenant(%q) = %v, want %v", tt.tenant, got, tt.want)
			}
		})
	}
}
