package taxonomy

import (
	"testing"

	"github.com/AngelSpinazzola/hardware-store-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestClassifyGPUVendors(t *testing.T) {
	table := Default()

	rtx := models.ProductSummary{Name: "RTX 4090", Brand: strPtr("ASUS")}
	rule := table.Classify(rtx, "Placas de video")
	require.NotNil(t, rule)
	assert.Equal(t, "nvidia", rule.ID)

	rx := models.ProductSummary{Name: "RX 7900", Brand: strPtr("MSI")}
	rule = table.Classify(rx, "Placas de Video")
	require.NotNil(t, rule)
	assert.Equal(t, "amd", rule.ID)
}

func TestClassifyIsDeterministic(t *testing.T) {
	table := Default()
	p := models.ProductSummary{Name: "GeForce GTX 1660 Super", Brand: strPtr("Gigabyte")}

	first := table.Classify(p, "Placas de Video")
	second := table.Classify(p, "Placas de Video")

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
}

func TestClassifyPriorityBreaksTies(t *testing.T) {
	table := Default()

	// Mixed listing text matching both platforms: priority 1 (Intel) must win.
	p := models.ProductSummary{Name: "Mother B760 compatible Intel y AMD"}
	rule := table.Classify(p, "Mothers")

	require.NotNil(t, rule)
	assert.Equal(t, "intel-mothers", rule.ID)
}

func TestClassifyUnknownCategoryReturnsNil(t *testing.T) {
	table := Default()
	p := models.ProductSummary{Name: "RTX 4090", Brand: strPtr("ASUS")}

	assert.Nil(t, table.Classify(p, "Category Not In Table"))
}

func TestClassifyNoMatchReturnsNil(t *testing.T) {
	table := Default()
	p := models.ProductSummary{Name: "Cable HDMI 2m"}

	assert.Nil(t, table.Classify(p, "Placas de Video"))
}

func TestClassifyNilFieldsContributeNothing(t *testing.T) {
	table := Default()

	// Brand and platform unset: only the name participates in matching.
	p := models.ProductSummary{Name: "Radeon RX 6600"}
	rule := table.Classify(p, "placas de video")

	require.NotNil(t, rule)
	assert.Equal(t, "amd", rule.ID)
}

func TestClassifyMatchesOnPlatformField(t *testing.T) {
	table := Default()

	p := models.ProductSummary{Name: "Mother TUF Gaming", Brand: strPtr("ASUS"), Platform: strPtr("AM5")}
	rule := table.Classify(p, "Mothers")

	require.NotNil(t, rule)
	assert.Equal(t, "amd-mothers", rule.ID)
}

func TestSubcategoriesOrderedByPriority(t *testing.T) {
	table := Default()

	subs := table.Subcategories("MOTHERS")
	require.Len(t, subs, 2)
	assert.Equal(t, "intel-mothers", subs[0].ID)
	assert.Equal(t, "amd-mothers", subs[1].ID)

	assert.Nil(t, table.Subcategories("Gabinetes Exóticos"))
}

func TestBrandFilterExemption(t *testing.T) {
	table := Default()

	assert.True(t, table.BrandFilterExempt("Procesadores"))
	assert.False(t, table.BrandFilterExempt("Placas de Video"))
	assert.False(t, table.BrandFilterExempt("No Such Category"))
}

func TestNewTableCaseInsensitiveLookup(t *testing.T) {
	table := NewTable([]CategoryRule{
		{
			Name: "Placas de Video",
			Types: []SubcategoryRule{
				{ID: "nvidia", Name: "NVIDIA", Priority: 1, Keywords: []string{"rtx"}},
			},
		},
	})

	p := models.ProductSummary{Name: "RTX 3060"}
	require.NotNil(t, table.Classify(p, "  PLACAS DE VIDEO  "))
	assert.True(t, table.HasCategory("placas de video"))
}
