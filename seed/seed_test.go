package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstock/models"
)

func TestDefaultIsValid(t *testing.T) {
	d := Default()

	require.NoError(t, Validate(d))
	assert.Len(t, d.Recommendations, 12)
	assert.Len(t, d.Events, 4)
	assert.Len(t, d.Bundles, 3)
	assert.Len(t, d.DemandBubbles, 6)
	assert.Len(t, d.KPITiles, 6)
	assert.Equal(t, 12, d.StoreMetrics.PendingRecommendations)
	assert.Equal(t, len(d.Recommendations), d.StoreMetrics.PendingRecommendations)
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.Recommendations[0].Reasons[0] = "mutated"

	assert.NotEqual(t, "mutated", Default().Recommendations[0].Reasons[0])
}

func TestDemandBubbleColorsFollowAction(t *testing.T) {
	for _, b := range Default().DemandBubbles {
		assert.Equal(t, models.ActionColor(b.Action), b.Color, b.Label)
	}
}

func TestMarshalParseRoundTrip(t *testing.T) {
	raw, err := Marshal(Default())
	require.NoError(t, err)

	got, err := Parse(raw)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("dataset changed after YAML round trip (-want +got):\n%s", diff)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"confidence out of range": `
storeMetrics: {storeId: s1}
userProfile: {id: u1}
recommendations:
  - {id: r1, skuName: X, action: RESTOCK, confidence: 1.5, priority: HIGH}
`,
		"unknown action": `
storeMetrics: {storeId: s1}
userProfile: {id: u1}
recommendations:
  - {id: r1, skuName: X, action: SELL, confidence: 0.5, priority: HIGH}
`,
		"duplicate id": `
storeMetrics: {storeId: s1}
userProfile: {id: u1}
recommendations:
  - {id: r1, skuName: X, action: RESTOCK, confidence: 0.5, priority: HIGH}
  - {id: r1, skuName: Y, action: PROMOTE, confidence: 0.5, priority: LOW}
`,
		"missing store id": `
userProfile: {id: u1}
`,
		"bad yaml": "recommendations: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
storeMetrics: {storeId: s1, storeName: Test, pendingRecommendations: 1}
userProfile: {id: u1, name: Tester, role: ADMIN}
recommendations:
  - {id: r1, skuName: Milk, action: STOCK_UP, confidence: 0.5, priority: LOW}
`), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", d.StoreMetrics.StoreName)
	require.Len(t, d.Recommendations, 1)
	assert.Equal(t, models.ActionStockUp, d.Recommendations[0].Action)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Len(t, d.Recommendations, 12)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
