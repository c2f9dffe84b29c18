package catalog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/business-directory-api/internal/models"
)

func TestTemplates_ExactlyTenProductsEach(t *testing.T) {
	for category, products := range templates {
		if len(products) != TemplateProductCount {
			t.Errorf("Category %q has %d products, want %d", category, len(products), TemplateProductCount)
		}
	}
}

func TestLookup_KnownCategory(t *testing.T) {
	products, recognized := Lookup("butchery")

	if !recognized {
		t.Error("Expected butchery to be recognized")
	}
	if len(products) != TemplateProductCount {
		t.Fatalf("Expected %d products, got %d", TemplateProductCount, len(products))
	}
	if products[0].Name != "Boerewors" {
		t.Errorf("Unexpected first product: %q", products[0].Name)
	}
	for i, p := range products {
		if p.ImageURL == "" {
			t.Errorf("Product %d has no stock image URL", i+1)
		}
		if !strings.HasPrefix(p.ImageURL, stockBase) {
			t.Errorf("Product %d image URL %q not under catalog base", i+1, p.ImageURL)
		}
	}
}

func TestLookup_NormalizesCategory(t *testing.T) {
	a, okA := Lookup("  Bakery ")
	b, okB := Lookup("bakery")

	if !okA || !okB {
		t.Fatal("Expected bakery to be recognized in both spellings")
	}
	if a[0].Name != b[0].Name {
		t.Errorf("Normalized lookup differs: %q vs %q", a[0].Name, b[0].Name)
	}
}

func TestLookup_UnknownCategoryFallsBack(t *testing.T) {
	products, recognized := Lookup("taxidermy")

	if recognized {
		t.Error("Expected unknown category to be unrecognized")
	}
	if len(products) != TemplateProductCount {
		t.Fatalf("Expected %d fallback products, got %d", TemplateProductCount, len(products))
	}
	for i, p := range products {
		want := fmt.Sprintf("Product %d", i+1)
		if p.Name != want {
			t.Errorf("Fallback product %d named %q, want %q", i+1, p.Name, want)
		}
		if i > 0 && products[i].Price <= products[i-1].Price {
			t.Errorf("Fallback prices not ascending at index %d: %v <= %v", i, products[i].Price, products[i-1].Price)
		}
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	first, _ := Lookup("salon")
	first[0].Name = "mutated"

	second, _ := Lookup("salon")
	if second[0].Name == "mutated" {
		t.Error("Lookup returned shared backing array; caller mutation leaked")
	}
}

func TestSynthesize_Idempotent(t *testing.T) {
	s := NewSynthesizer(models.UploadModeAuto, nil)

	first := s.Synthesize("hardware")
	second := s.Synthesize("hardware")

	if len(first) != TemplateProductCount {
		t.Fatalf("Expected %d products, got %d", TemplateProductCount, len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Product %d differs between calls: %+v vs %+v", i+1, first[i], second[i])
		}
	}
}

func TestSynthesize_UnknownCategoryStable(t *testing.T) {
	s := NewSynthesizer(models.UploadModeAuto, nil)

	first := s.Synthesize("drone repair")
	second := s.Synthesize("Drone Repair")

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Product %d differs for the same normalized category", i+1)
		}
	}
}

func TestSynthesize_ManualImagesPairedByIndex(t *testing.T) {
	images := make([]string, TemplateProductCount)
	for i := range images {
		images[i] = fmt.Sprintf("https://uploads.example/p%d.jpg", i)
	}
	s := NewSynthesizer(models.UploadModeManual, images)

	products := s.Synthesize("restaurant")

	for i, p := range products {
		if p.ImageURL != images[i] {
			t.Errorf("Product %d image %q, want uploaded image %q", i+1, p.ImageURL, images[i])
		}
	}
}

func TestSynthesize_AutoModeKeepsStockImages(t *testing.T) {
	s := NewSynthesizer(models.UploadModeAuto, nil)

	products := s.Synthesize("butchery")

	for i, p := range products {
		if !strings.HasPrefix(p.ImageURL, stockBase) {
			t.Errorf("Product %d image %q, want stock URL", i+1, p.ImageURL)
		}
	}
}
