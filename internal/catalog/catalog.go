// Package catalog is the static category product catalog: it maps a
// business category to a fixed template of ten representative products.
package catalog

import (
	"fmt"
	"strings"

	"github.com/business-directory-api/internal/models"
)

// TemplateProductCount is the number of products every business gets,
// regardless of category or data quality. Tier limits cut the persisted
// count down later; synthesis always yields the full set.
const TemplateProductCount = 10

const stockBase = "https://stock.business-directory.example/products"

// templates maps a normalized category name to its product skeletons.
// Every entry has exactly TemplateProductCount products.
var templates = map[string][]models.ProductTemplate{
	"butchery": {
		{Name: "Boerewors", Description: "Traditional farm-style sausage", Details: "Sold per kg", Price: 89.99},
		{Name: "Ribeye Steak", Description: "Matured grain-fed ribeye", Details: "300g cut", Price: 149.99},
		{Name: "Lamb Chops", Description: "Karoo lamb loin chops", Details: "Sold per kg", Price: 189.99},
		{Name: "Chicken Flatty", Description: "Marinated whole flattened chicken", Details: "Lemon & herb or peri-peri", Price: 79.99},
		{Name: "Beef Mince", Description: "Lean ground beef", Details: "Sold per kg", Price: 94.99},
		{Name: "Pork Rashers", Description: "Sticky marinated pork rashers", Details: "Sold per kg", Price: 109.99},
		{Name: "Biltong", Description: "Air-dried spiced beef", Details: "Sliced, 250g", Price: 119.99},
		{Name: "Droewors", Description: "Dried sausage sticks", Details: "250g pack", Price: 99.99},
		{Name: "T-Bone Steak", Description: "Thick-cut T-bone", Details: "500g cut", Price: 134.99},
		{Name: "Braai Pack", Description: "Mixed pack for the weekend braai", Details: "Feeds 4-6", Price: 299.99},
	},
	"bakery": {
		{Name: "Sourdough Loaf", Description: "Slow-fermented white sourdough", Details: "800g", Price: 54.99},
		{Name: "Croissant", Description: "All-butter croissant", Price: 24.99},
		{Name: "Chocolate Cake", Description: "Triple-layer chocolate ganache cake", Details: "Serves 10", Price: 329.99},
		{Name: "Milk Tart", Description: "Classic melktert with cinnamon", Price: 89.99},
		{Name: "Rusks", Description: "Buttermilk rusks", Details: "500g box", Price: 64.99},
		{Name: "Health Bread", Description: "Seeded low-GI loaf", Details: "700g", Price: 44.99},
		{Name: "Scones", Description: "Fresh-baked scones", Details: "Pack of 6", Price: 49.99},
		{Name: "Koeksisters", Description: "Syrup-soaked plaited doughnuts", Details: "Pack of 6", Price: 59.99},
		{Name: "Birthday Cake", Description: "Custom decorated celebration cake", Details: "Made to order", Price: 449.99},
		{Name: "Cupcakes", Description: "Assorted iced cupcakes", Details: "Box of 12", Price: 149.99},
	},
	"salon": {
		{Name: "Ladies Cut & Blow", Description: "Wash, cut and blow dry", Price: 249.99},
		{Name: "Gents Cut", Description: "Precision cut and style", Price: 129.99},
		{Name: "Full Colour", Description: "Single-process colour treatment", Price: 549.99},
		{Name: "Highlights", Description: "Half-head foil highlights", Price: 649.99},
		{Name: "Gel Manicure", Description: "Shaped nails with gel overlay", Price: 199.99},
		{Name: "Pedicure", Description: "Spa pedicure with polish", Price: 229.99},
		{Name: "Brazilian Blowout", Description: "Smoothing keratin treatment", Price: 899.99},
		{Name: "Braiding", Description: "Box braids, shoulder length", Details: "Hair included", Price: 499.99},
		{Name: "Facial", Description: "Deep-cleanse express facial", Price: 299.99},
		{Name: "Bridal Package", Description: "Trial, hair and make-up on the day", Price: 1499.99},
	},
	"hardware": {
		{Name: "Cordless Drill", Description: "18V drill driver with two batteries", Price: 1299.99},
		{Name: "Paint 5L", Description: "Interior acrylic PVA, white", Price: 349.99},
		{Name: "Cement 50kg", Description: "All-purpose building cement", Price: 109.99},
		{Name: "Garden Spade", Description: "Carbon steel digging spade", Price: 189.99},
		{Name: "LED Floodlight", Description: "30W outdoor floodlight", Price: 249.99},
		{Name: "Ladder", Description: "6-step aluminium ladder", Price: 899.99},
		{Name: "Angle Grinder", Description: "750W 115mm grinder", Price: 649.99},
		{Name: "Tool Set", Description: "110-piece household tool kit", Price: 799.99},
		{Name: "Wheelbarrow", Description: "Heavy-duty builders wheelbarrow", Price: 749.99},
		{Name: "Geyser Blanket", Description: "Insulation wrap for 150L geyser", Price: 299.99},
	},
	"restaurant": {
		{Name: "Full English Breakfast", Description: "Eggs, bacon, sausage, toast and grilled tomato", Price: 89.99},
		{Name: "Beef Burger", Description: "200g patty with chips", Price: 109.99},
		{Name: "Grilled Chicken Salad", Description: "Greens, feta and grilled chicken strips", Price: 94.99},
		{Name: "Margherita Pizza", Description: "Wood-fired with fresh basil", Price: 99.99},
		{Name: "Ribs & Chips", Description: "500g basted pork ribs", Price: 169.99},
		{Name: "Hake & Chips", Description: "Beer-battered hake fillet", Price: 104.99},
		{Name: "Pasta Alfredo", Description: "Creamy ham and mushroom fettuccine", Price: 114.99},
		{Name: "Lamb Curry", Description: "Durban-style lamb curry with rice", Price: 139.99},
		{Name: "Milkshake", Description: "Hand-spun, assorted flavours", Price: 44.99},
		{Name: "Malva Pudding", Description: "Warm malva with custard", Price: 59.99},
	},
}

// Lookup returns a copy of the product templates for a category and
// whether the category was recognized. Auto-mode stock photo URLs are
// filled in from the catalog CDN path.
func Lookup(category string) ([]models.ProductTemplate, bool) {
	key := normalize(category)
	src, ok := templates[key]
	if !ok {
		return genericSet(), false
	}

	out := make([]models.ProductTemplate, len(src))
	copy(out, src)
	for i := range out {
		out[i].ImageURL = fmt.Sprintf("%s/%s/%02d.jpg", stockBase, key, i+1)
	}
	return out, true
}

// genericSet is the placeholder fallback for unrecognized categories.
// Prices ascend so the set still renders as a plausible range.
func genericSet() []models.ProductTemplate {
	out := make([]models.ProductTemplate, TemplateProductCount)
	for i := range out {
		out[i] = models.ProductTemplate{
			Name:        fmt.Sprintf("Product %d", i+1),
			Description: "Popular item from this business",
			Price:       float64((i + 1) * 50),
			ImageURL:    fmt.Sprintf("%s/generic/%02d.jpg", stockBase, i+1),
		}
	}
	return out
}

func normalize(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// Synthesizer builds the per-category product set for one batch.
// Results are cached by normalized category name so every row sharing a
// category sees the identical set.
type Synthesizer struct {
	mode   models.UploadMode
	images []string
	cache  map[string][]models.ProductTemplate
}

// NewSynthesizer creates a synthesizer for one batch. In manual mode,
// images must hold one URL per template slot; the caller enforces the
// exactly-ten precondition before synthesis runs.
func NewSynthesizer(mode models.UploadMode, images []string) *Synthesizer {
	return &Synthesizer{
		mode:   mode,
		images: images,
		cache:  make(map[string][]models.ProductTemplate),
	}
}

// Synthesize returns the product set for a category, always exactly
// TemplateProductCount entries. Calling it twice for the same category
// within one batch yields the same list.
func (s *Synthesizer) Synthesize(category string) []models.ProductTemplate {
	key := normalize(category)
	if cached, ok := s.cache[key]; ok {
		return cached
	}

	products, _ := Lookup(category)
	if s.mode == models.UploadModeManual {
		for i := range products {
			if i < len(s.images) {
				products[i].ImageURL = s.images[i]
			}
		}
	}

	s.cache[key] = products
	return products
}
