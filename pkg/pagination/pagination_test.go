package pagination_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/leasewatch/leasewatch/pkg/pagination"
)

func defaultConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := pagination.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.DefaultPageSize != 20 {
		t.Errorf("DefaultPageSize = %d, want 20", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100", cfg.MaxPageSize)
	}
}

func TestConfigFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_PAGE_SIZE", "50")
	t.Setenv("TEST_MAX_PAGE", "200")

	env := &pagination.ConfigEnv{
		DefaultPageSize: "TEST_PAGE_SIZE",
		MaxPageSize:     "TEST_MAX_PAGE",
	}

	cfg := pagination.Config{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.DefaultPageSize != 50 {
		t.Errorf("DefaultPageSize = %d, want 50", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 200 {
		t.Errorf("MaxPageSize = %d, want 200", cfg.MaxPageSize)
	}
}

func TestConfigFinalizeValidation(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
	if err := cfg.Finalize(nil); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestPageRequestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		req          pagination.PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"zero values", pagination.PageRequest{}, 1, 20},
		{"negative page", pagination.PageRequest{Page: -3, PageSize: 10}, 1, 10},
		{"over max clamped", pagination.PageRequest{Page: 2, PageSize: 500}, 2, 100},
		{"valid unchanged", pagination.PageRequest{Page: 3, PageSize: 25}, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize(defaultConfig())
			if tt.req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.req.Page, tt.wantPage)
			}
			if tt.req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", tt.req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "2")
	values.Set("page_size", "15")
	values.Set("search", "jp classic")
	values.Set("sort", "-uploadedAt")

	req := pagination.PageRequestFromQuery(values, defaultConfig())

	if req.Page != 2 {
		t.Errorf("Page = %d, want 2", req.Page)
	}
	if req.PageSize != 15 {
		t.Errorf("PageSize = %d, want 15", req.PageSize)
	}
	if req.Search == nil || *req.Search != "jp classic" {
		t.Errorf("Search = %v, want jp classic", req.Search)
	}
	if len(req.Sort) != 1 || req.Sort[0].Field != "uploadedAt" || !req.Sort[0].Descending {
		t.Errorf("Sort = %+v, want descending uploadedAt", req.Sort)
	}
	if req.Offset() != 15 {
		t.Errorf("Offset() = %d, want 15", req.Offset())
	}
}

func TestSortFieldsUnmarshalString(t *testing.T) {
	var s pagination.SortFields
	if err := json.Unmarshal([]byte(`"tenantName,-uploadedAt"`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(s) != 2 || s[0].Field != "tenantName" || !s[1].Descending {
		t.Errorf("SortFields = %+v, want parsed string form", s)
	}
}

func TestSortFieldsUnmarshalArray(t *testing.T) {
	var s pagination.SortFields
	if err := json.Unmarshal([]byte(`[{"Field":"tenantName","Descending":true}]`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(s) != 1 || s[0].Field != "tenantName" || !s[0].Descending {
		t.Errorf("SortFields = %+v, want array form", s)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"exact division", 40, 20, 2},
		{"remainder rounds up", 41, 20, 3},
		{"empty still one page", 0, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult([]string{}, tt.total, 1, tt.pageSize)
			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
		})
	}

	result := pagination.NewPageResult[string](nil, 0, 1, 20)
	if result.Data == nil {
		t.Error("Data is nil, want empty slice")
	}
}
