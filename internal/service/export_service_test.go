package service_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/business-directory-api/internal/models"
	"github.com/business-directory-api/internal/parser"
)

func seedProfiles(f *importFixture, t *testing.T, count int) {
	t.Helper()
	names := []string{"Joes Meats", "Sweet Treats", "Glow Studio", "Bolt Depot"}
	for i := 0; i < count; i++ {
		line := models.ImportRow{Line: i + 1, BusinessCategory: "butchery", DisplayName: names[i%len(names)]}
		profile := models.ProfileFromRow(&line, models.TierFree)
		profile.ID = names[i%len(names)]
		f.profiles.Profiles[profile.ID] = profile
	}
}

func TestStreamProfiles_NDJSON(t *testing.T) {
	f := newImportFixture()
	seedProfiles(f, t, 3)

	rec := httptest.NewRecorder()
	if err := f.services.Export.StreamProfiles(context.Background(), rec, "ndjson"); err != nil {
		t.Fatalf("StreamProfiles failed: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/x-ndjson" {
		t.Errorf("Content-Type = %q, want application/x-ndjson", ct)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 NDJSON lines, got %d", len(lines))
	}
	for _, line := range lines {
		var profile models.Profile
		if err := json.Unmarshal([]byte(line), &profile); err != nil {
			t.Errorf("Line is not valid JSON: %q", line)
		}
	}
}

// CSV exports use the bulk upload column order, so an exported file must
// parse back into the same businesses.
func TestStreamProfiles_CSVRoundTrip(t *testing.T) {
	f := newImportFixture()
	seedProfiles(f, t, 2)

	rec := httptest.NewRecorder()
	if err := f.services.Export.StreamProfiles(context.Background(), rec, "csv"); err != nil {
		t.Fatalf("StreamProfiles failed: %v", err)
	}

	rows, warnings := parser.Parse(strings.NewReader(rec.Body.String()))
	if len(warnings) != 0 {
		t.Errorf("Exported CSV produced warnings on re-import: %v", warnings)
	}
	if len(rows) != 2 {
		t.Fatalf("Exported CSV re-parsed to %d rows, want 2", len(rows))
	}
	for _, row := range rows {
		if row.BusinessCategory != "butchery" {
			t.Errorf("Round-tripped category = %q, want butchery", row.BusinessCategory)
		}
		if row.DisplayName == "" {
			t.Error("Round-tripped row lost its display name")
		}
	}
}

func TestStreamProfiles_UnsupportedFormat(t *testing.T) {
	f := newImportFixture()

	rec := httptest.NewRecorder()
	if err := f.services.Export.StreamProfiles(context.Background(), rec, "xml"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestStreamProducts_NDJSON(t *testing.T) {
	f := newImportFixture()
	f.products.Products = []*models.Product{
		{ID: "p1", ProfileID: "joes-meats", Name: "Boerewors", Price: 89.99},
		{ID: "p2", ProfileID: "joes-meats", Name: "Biltong", Price: 119.99},
	}

	rec := httptest.NewRecorder()
	if err := f.services.Export.StreamProducts(context.Background(), rec, "ndjson"); err != nil {
		t.Fatalf("StreamProducts failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 NDJSON lines, got %d", len(lines))
	}
}

func TestGetCount(t *testing.T) {
	f := newImportFixture()
	seedProfiles(f, t, 3)

	count, err := f.services.Export.GetCount(context.Background(), "profiles")
	if err != nil {
		t.Fatalf("GetCount failed: %v", err)
	}
	if count != 3 {
		t.Errorf("profiles count = %d, want 3", count)
	}

	if _, err := f.services.Export.GetCount(context.Background(), "accounts"); err == nil {
		t.Error("Expected error for unknown resource")
	}
}

func TestRunService_Lookup(t *testing.T) {
	f := newImportFixture()
	f.runs.Runs["run-1"] = &models.ImportRun{ID: "run-1", TotalRows: 4}
	f.runs.RunErrors["run-1"] = []models.RowError{{Row: 2, Step: "profile", Reason: "duplicate slug"}}

	run, err := f.services.Run.GetRun(context.Background(), "run-1")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if run == nil || run.TotalRows != 4 {
		t.Errorf("Unexpected run: %+v", run)
	}

	rowErrors, err := f.services.Run.GetRunErrors(context.Background(), "run-1")
	if err != nil {
		t.Fatalf("GetRunErrors failed: %v", err)
	}
	if len(rowErrors) != 1 || rowErrors[0].Row != 2 {
		t.Errorf("Unexpected run errors: %v", rowErrors)
	}

	missing, err := f.services.Run.GetRun(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing run, got %+v", missing)
	}
}
