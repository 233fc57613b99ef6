package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeywordRule maps filename keywords to a category. Rules are checked in
// order; the first rule with a matching keyword wins.
type KeywordRule struct {
	Keywords []string `yaml:"keywords"`
	Category string   `yaml:"category"`
}

// Taxonomy bundles the static tables that drive categorization: the category
// display labels, the relationship graph between categories, and the ordered
// filename-keyword fallback rules. A Taxonomy is never mutated after
// construction; it is passed explicitly into the stages that need it.
type Taxonomy struct {
	Categories    map[string]string   `yaml:"categories"`
	Relationships map[string][]string `yaml:"relationships"`
	KeywordRules  []KeywordRule       `yaml:"keyword_rules"`
}

// DefaultCategory is assigned when neither the path nor the filename matches
// any category.
const DefaultCategory = "00_other"

// DefaultTaxonomy returns the built-in category tables for the ecology
// workflow corpus.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Categories: map[string]string{
			"00_agentic_prompt_templates": "🤖 Agentic AI Templates",
			"01_data_wrangling":           "🧹 Data Wrangling",
			"02_visualization":            "📊 Visualization",
			"03_univariate_models":        "📈 Univariate Models",
			"04_multivariate_analysis":    "🔬 Multivariate Analysis",
			"05_diversity_metrics":        "🌿 Diversity Metrics",
			"06_mixed_effects_models":     "🔄 Mixed Effects Models",
			"07_time_series_analysis":     "⏰ Time Series Analysis",
			"08_spatial_analysis":         "🗺️ Spatial Analysis",
			"09_species_distribution":     "🦋 Species Distribution",
			"10_population_simulation":    "🔢 Population Simulation",
		},
		Relationships: map[string][]string{
			"data_wrangling":       {"visualization", "univariate", "multivariate"},
			"visualization":        {"data_wrangling", "univariate", "multivariate"},
			"univariate":           {"data_wrangling", "visualization", "multivariate"},
			"multivariate":         {"data_wrangling", "visualization", "diversity"},
			"diversity":            {"multivariate", "spatial", "mixed_effects"},
			"mixed_effects":        {"univariate", "diversity", "population"},
			"spatial":              {"diversity", "species_distribution", "time_series"},
			"species_distribution": {"spatial", "multivariate", "mixed_effects"},
			"time_series":          {"spatial", "mixed_effects", "population"},
			"population":           {"mixed_effects", "time_series", "species_distribution"},
		},
		KeywordRules: []KeywordRule{
			{Keywords: []string{"data", "wrangle", "tidy"}, Category: "01_data_wrangling"},
			{Keywords: []string{"viz", "plot", "ggplot"}, Category: "02_visualization"},
			{Keywords: []string{"model", "lm", "glm"}, Category: "03_univariate_models"},
			{Keywords: []string{"pca", "ordination", "multivariate"}, Category: "04_multivariate_analysis"},
			{Keywords: []string{"diversity", "shannon", "richness"}, Category: "05_diversity_metrics"},
			{Keywords: []string{"mixed", "lmm", "glmm"}, Category: "06_mixed_effects_models"},
			{Keywords: []string{"spatial", "gis", "raster"}, Category: "08_spatial_analysis"},
			{Keywords: []string{"species", "distribution", "sdm"}, Category: "09_species_distribution"},
			{Keywords: []string{"time", "series", "temporal"}, Category: "07_time_series_analysis"},
			{Keywords: []string{"population", "simulation", "agent"}, Category: "10_population_simulation"},
		},
	}
}

// LoadTaxonomy reads a YAML taxonomy file and overlays it on the built-in
// tables: map entries are added or overwritten per key, keyword rules are
// replaced as a whole when present, and omitted sections keep their defaults.
func LoadTaxonomy(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("reading taxonomy %s: %w", path, err)
	}

	tax := DefaultTaxonomy()
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return Taxonomy{}, fmt.Errorf("parsing taxonomy %s: %w", path, err)
	}
	if len(tax.Categories) == 0 {
		return Taxonomy{}, fmt.Errorf("taxonomy %s declares no categories", path)
	}
	return tax, nil
}

// Categorize resolves the category of a markdown file from its path. A
// category key appearing as a substring of the path wins; otherwise the
// filename-keyword rules are tried in order, and files matching nothing get
// DefaultCategory.
func (t Taxonomy) Categorize(path string) string {
	s := filepath.ToSlash(path)

	// Sorted key order keeps the substring pass deterministic.
	keys := make([]string, 0, len(t.Categories))
	for key := range t.Categories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.Contains(s, key) {
			return key
		}
	}

	stem := strings.ToLower(fileStem(path))
	for _, rule := range t.KeywordRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(stem, kw) {
				return rule.Category
			}
		}
	}
	return DefaultCategory
}

// Label returns the display label for a category key, or the key itself when
// the table has no entry for it.
func (t Taxonomy) Label(category string) string {
	if label, ok := t.Categories[category]; ok {
		return label
	}
	return category
}

// Related returns the related category name fragments for a category key.
// The relationship table is keyed by the category name without its numeric
// prefix; keys with no relationship entry yield nil.
func (t Taxonomy) Related(category string) []string {
	return t.Relationships[normalizeCategory(category)]
}

// normalizeCategory strips the numeric prefix from a category key:
// "01_data_wrangling" becomes "data_wrangling". Keys without an underscore
// are returned unchanged.
func normalizeCategory(key string) string {
	if i := strings.Index(key, "_"); i >= 0 {
		return key[i+1:]
	}
	return key
}

// fileStem returns the base name of path without its extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
