package query_test

import (
	"testing"

	"github.com/leasewatch/leasewatch/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "agreements", "a").
		Project("id", "id").
		Project("tenant_name", "tenantName").
		Project("uploaded_at", "uploadedAt")
}

func ptr(s string) *string { return &s }

func TestProjectionMapFrom(t *testing.T) {
	p := testProjection()
	if got, want := p.From(), "public.agreements a"; got != want {
		t.Errorf("From() = %q, want %q", got, want)
	}
}

func TestProjectionMapColumns(t *testing.T) {
	p := testProjection()
	if got, want := p.Columns(), "a.id, a.tenant_name, a.uploaded_at"; got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
}

func TestProjectionMapColumnLookup(t *testing.T) {
	p := testProjection()

	tests := []struct {
		name     string
		viewName string
		want     string
	}{
		{"mapped field", "tenantName", "a.tenant_name"},
		{"mapped id", "id", "a.id"},
		{"unmapped passthrough", "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Column(tt.viewName); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.viewName, got, tt.want)
			}
		})
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{"empty string", "", nil},
		{"single ascending", "tenantName", []query.SortField{{Field: "tenantName"}}},
		{"single descending", "-uploadedAt", []query.SortField{{Field: "uploadedAt", Descending: true}}},
		{
			"multiple mixed", "tenantName,-uploadedAt",
			[]query.SortField{
				{Field: "tenantName"},
				{Field: "uploadedAt", Descending: true},
			},
		},
		{
			"with spaces", " tenantName , -uploadedAt ",
			[]query.SortField{
				{Field: "tenantName"},
				{Field: "uploadedAt", Descending: true},
			},
		},
		{
			"empty parts skipped", "tenantName,,uploadedAt",
			[]query.SortField{
				{Field: "tenantName"},
				{Field: "uploadedAt"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSortFields(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseSortFields(%q)[%d] = %+v, want %+v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildNoConditions(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).Build()
	want := "SELECT a.id, a.tenant_name, a.uploaded_at FROM public.agreements a"
	if sql != want {
		t.Errorf("Build() sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("Build() args = %v, want empty", args)
	}
}

func TestBuildWhereEquals(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("tenantName", "Acme").
		Build()
	want := "SELECT a.id, a.tenant_name, a.uploaded_at FROM public.agreements a WHERE a.tenant_name = $1"
	if sql != want {
		t.Errorf("Build() sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "Acme" {
		t.Errorf("Build() args = %v, want [Acme]", args)
	}
}

func TestBuildWhereEqualsNilSkipped(t *testing.T) {
	var nilPtr *string
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("tenantName", nilPtr).
		Build()
	want := "SELECT a.id, a.tenant_name, a.uploaded_at FROM public.agreements a"
	if sql != want {
		t.Errorf("Build() sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("Build() args = %v, want empty", args)
	}
}

func TestBuildWhereSearchNumbering(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("id", 7).
		WhereSearch(ptr("jp"), "tenantName", "id").
		Build()
	want := "SELECT a.id, a.tenant_name, a.uploaded_at FROM public.agreements a" +
		" WHERE a.id = $1 AND (a.tenant_name ILIKE $2 OR a.id ILIKE $3)"
	if sql != want {
		t.Errorf("Build() sql = %q, want %q", sql, want)
	}
	if len(args) != 3 {
		t.Fatalf("Build() args length = %d, want 3", len(args))
	}
	if args[1] != "%jp%" || args[2] != "%jp%" {
		t.Errorf("Build() search args = %v, want %%jp%% pattern", args[1:])
	}
}

func TestBuildWhereContains(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).
		WhereContains("tenantName", ptr("soft")).
		Build()
	want := "SELECT a.id, a.tenant_name, a.uploaded_at FROM public.agreements a WHERE a.tenant_name ILIKE $1"
	if sql != want {
		t.Errorf("Build() sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "%soft%" {
		t.Errorf("Build() args = %v, want [%%soft%%]", args)
	}
}

func TestBuildCount(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection()).
		WhereEquals("id", 3).
		BuildCount()
	want := "SELECT COUNT(*) FROM public.agreements a WHERE a.id = $1"
	if sql != want {
		t.Errorf("BuildCount() sql = %q, want %q", sql, want)
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "uploadedAt", Descending: true}).
		BuildPage(2, 10)
	want := "SELECT a.id, a.tenant_name, a.uploaded_at FROM public.agreements a" +
		" ORDER BY a.uploaded_at DESC LIMIT 10 OFFSET 10"
	if sql != want {
		t.Errorf("BuildPage() sql = %q, want %q", sql, want)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("id", 42)
	want := "SELECT a.id, a.tenant_name, a.uploaded_at FROM public.agreements a WHERE a.id = $1"
	if sql != want {
		t.Errorf("BuildSingle() sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != 42 {
		t.Errorf("BuildSingle() args = %v, want [42]", args)
	}
}

func TestOrderByOverridesDefault(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "uploadedAt", Descending: true}).
		OrderByFields([]query.SortField{{Field: "tenantName"}}).
		Build()
	want := "SELECT a.id, a.tenant_name, a.uploaded_at FROM public.agreements a ORDER BY a.tenant_name ASC"
	if sql != want {
		t.Errorf("Build() sql = %q, want %q", sql, want)
	}
}
