package formatting_test

import (
	"errors"
	"testing"

	"github.com/leasewatch/leasewatch/pkg/formatting"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name      string
		n         int64
		precision int
		want      string
	}{
		{"zero", 0, 2, "0 B"},
		{"bytes", 512, 0, "512 B"},
		{"kilobytes", 2048, 0, "2 KB"},
		{"megabytes with precision", 50 * 1024 * 1024, 1, "50.0 MB"},
		{"negative precision clamped", 1024, -3, "1 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
				t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"bare number", "1024", 1024, false},
		{"megabytes", "50MB", 50 * 1024 * 1024, false},
		{"lowercase unit", "2kb", 2048, false},
		{"spaced unit", "1 GB", 1024 * 1024 * 1024, false},
		{"empty", "", 0, true},
		{"unknown unit", "10XB", 0, true},
		{"not a number", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBytes(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBytes(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

type extraction struct {
	TenantName string `json:"tenant_name"`
	AreaSqft   string `json:"area_sqft"`
}

func TestParseDirectJSON(t *testing.T) {
	content := `{"tenant_name": "Acme Corp", "area_sqft": "1200 sqft"}`
	got, err := formatting.Parse[extraction](content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.TenantName != "Acme Corp" {
		t.Errorf("TenantName = %q, want Acme Corp", got.TenantName)
	}
}

func TestParseFencedJSON(t *testing.T) {
	content := "Here is the extraction:\n```json\n{\"tenant_name\": \"Acme Corp\", \"area_sqft\": \"1200\"}\n```"
	got, err := formatting.Parse[extraction](content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.AreaSqft != "1200" {
		t.Errorf("AreaSqft = %q, want 1200", got.AreaSqft)
	}
}

func TestParseBareFence(t *testing.T) {
	content := "```\n{\"tenant_name\": \"Acme\"}\n```"
	got, err := formatting.Parse[extraction](content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.TenantName != "Acme" {
		t.Errorf("TenantName = %q, want Acme", got.TenantName)
	}
}

func TestParseFailure(t *testing.T) {
	_, err := formatting.Parse[extraction]("not json at all")
	if !errors.Is(err, formatting.ErrParseFailed) {
		t.Errorf("err = %v, want ErrParseFailed", err)
	}
}
