package parser

import (
	"strings"
	"testing"

	"github.com/business-directory-api/internal/models"
)

const header = "business_category,display_name,address,business_location,website_url,phone_number,email,facebook"

func TestParse_ValidRows(t *testing.T) {
	csv := header + "\n" +
		"butchery,Joe's Meats,,,,,,\n" +
		"bakery,Sweet Treats,12 Main St,Cape Town,,,,\n"

	rows, warnings := Parse(strings.NewReader(csv))

	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	if rows[0].BusinessCategory != "butchery" || rows[0].DisplayName != "Joe's Meats" {
		t.Errorf("Row 1 parsed incorrectly: %+v", rows[0])
	}
	if rows[0].Line != 1 {
		t.Errorf("Expected row 1 line number 1, got %d", rows[0].Line)
	}
	if rows[1].Address != "12 Main St" || rows[1].BusinessLocation != "Cape Town" {
		t.Errorf("Row 2 parsed incorrectly: %+v", rows[1])
	}
}

func TestParse_SeparatorAutoDetection(t *testing.T) {
	fields := [][]string{
		{"business_category", "display_name", "address", "business_location", "website_url", "phone_number", "email", "facebook"},
		{"butchery", "Joes Meats", "", "", "", "", "", ""},
		{"bakery", "Sweet Treats", "12 Main St", "Cape Town", "", "", "info@sweet.co.za", ""},
	}

	separators := map[string]string{
		"comma":     ",",
		"semicolon": ";",
		"tab":       "\t",
	}

	var reference []models.ImportRow
	for name, sep := range separators {
		var lines []string
		for _, f := range fields {
			lines = append(lines, strings.Join(f, sep))
		}
		content := strings.Join(lines, "\n")

		rows, warnings := Parse(strings.NewReader(content))
		if len(warnings) != 0 {
			t.Errorf("%s: expected no warnings, got %v", name, warnings)
		}
		if len(rows) != 2 {
			t.Fatalf("%s: expected 2 rows, got %d", name, len(rows))
		}

		if reference == nil {
			reference = rows
			continue
		}
		for i := range rows {
			if rows[i] != reference[i] {
				t.Errorf("%s: row %d differs from reference: %+v vs %+v", name, i+1, rows[i], reference[i])
			}
		}
	}
}

func TestParse_MissingRequiredFields(t *testing.T) {
	csv := header + "\n" +
		"butchery,Joe's Meats,,,,,,\n" +
		",No Category,,,,,,\n" +
		"bakery,   ,,,,,,\n"

	rows, warnings := Parse(strings.NewReader(csv))

	if len(rows) != 1 {
		t.Fatalf("Expected 1 valid row, got %d", len(rows))
	}
	if len(warnings) != 2 {
		t.Fatalf("Expected 2 warnings, got %d: %v", len(warnings), warnings)
	}
	if warnings[0] != "Row 2: missing required field(s)" {
		t.Errorf("Unexpected warning: %q", warnings[0])
	}
	if warnings[1] != "Row 3: missing required field(s)" {
		t.Errorf("Unexpected warning: %q", warnings[1])
	}
}

func TestParse_TrimsFields(t *testing.T) {
	csv := header + "\n" +
		"  butchery , Joe's Meats ,, , , , , \n"

	rows, warnings := Parse(strings.NewReader(csv))

	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].BusinessCategory != "butchery" {
		t.Errorf("Category not trimmed: %q", rows[0].BusinessCategory)
	}
	if rows[0].DisplayName != "Joe's Meats" {
		t.Errorf("Display name not trimmed: %q", rows[0].DisplayName)
	}
}

func TestParse_SkipsBlankLines(t *testing.T) {
	csv := header + "\n\n" +
		"butchery,Joe's Meats,,,,,,\n" +
		"\n" +
		"bakery,Sweet Treats,,,,,,\n\n"

	rows, _ := Parse(strings.NewReader(csv))

	if len(rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(rows))
	}
}

func TestParse_ShortRows(t *testing.T) {
	// Rows with fewer than eight columns still parse; missing trailing
	// fields stay empty
	csv := header + "\n" + "butchery,Joe's Meats\n"

	rows, warnings := Parse(strings.NewReader(csv))

	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	if rows[0].Email != "" || rows[0].Facebook != "" {
		t.Errorf("Expected empty trailing fields, got %+v", rows[0])
	}
}

func TestParse_EmptyFile(t *testing.T) {
	rows, warnings := Parse(strings.NewReader(""))

	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}
	if len(warnings) != 1 {
		t.Errorf("Expected a single warning, got %v", warnings)
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	rows, warnings := Parse(strings.NewReader(header + "\n"))

	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}
	if len(warnings) != 1 {
		t.Errorf("Expected a single warning, got %v", warnings)
	}
}

func TestParse_BinaryContent(t *testing.T) {
	rows, warnings := Parse(strings.NewReader("\xff\xfe\x00\x01binary"))

	if len(rows) != 0 {
		t.Errorf("Expected no rows for binary content, got %d", len(rows))
	}
	if len(warnings) != 1 {
		t.Errorf("Expected a single warning, got %v", warnings)
	}
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    rune
	}{
		{"comma", "a,b,c\n1,2,3\n", ','},
		{"semicolon", "a;b;c\n1;2;3\n", ';'},
		{"tab", "a\tb\tc\n1\t2\t3\n", '\t'},
		{"header only comma", "a,b,c\n", ','},
		{"no delimiter falls back to comma", "justoneword\n", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectDelimiter(tt.content); got != tt.want {
				t.Errorf("detectDelimiter(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	var sb strings.Builder
	sb.WriteString(header + "\n")
	for i := 0; i < 500; i++ {
		sb.WriteString("bakery,Sweet Treats,12 Main St,Cape Town,,,,\n")
	}
	content := sb.String()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		rows, _ := Parse(strings.NewReader(content))
		if len(rows) != 500 {
			b.Fatalf("expected 500 rows, got %d", len(rows))
		}
	}
}
