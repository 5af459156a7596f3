package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tpl, ok := Lookup("clothing")
	require.True(t, ok)
	assert.Equal(t, "Vêtements", tpl.Name)
	assert.Equal(t, []string{"color", "size", "fit"}, tpl.Attributes)
	assert.Equal(t, "regular", tpl.DefaultValues["fit"])

	_, ok = Lookup("furniture")
	assert.False(t, ok)
}

func TestAllOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 5)
	keys := make([]string, 0, len(all))
	for _, tpl := range all {
		keys = append(keys, tpl.Key)
	}
	assert.Equal(t, []string{"clothing", "perfume", "shoes", "accessories", "custom"}, keys)
}

func TestCustomTemplateHasNoAttributes(t *testing.T) {
	tpl, ok := Lookup("custom")
	require.True(t, ok)
	assert.Empty(t, tpl.Attributes)
	assert.Empty(t, tpl.DefaultValues)
}

func TestAttributeOptions(t *testing.T) {
	colors := AttributeOptions("color")
	require.Len(t, colors, 15)
	assert.Equal(t, "Noir", colors[0].Value)
	assert.Equal(t, "Noir", colors[0].Label)

	fits := AttributeOptions("fit")
	require.Len(t, fits, 3)
	assert.Equal(t, "slim", fits[0].Value)
	assert.Equal(t, "Coupe Slim", fits[0].Label)

	assert.Nil(t, AttributeOptions("engine_size"))
}

func TestApplyDefaultsSeedsMissingKeys(t *testing.T) {
	tpl, _ := Lookup("perfume")
	attrs := ApplyDefaults(tpl, map[string]interface{}{"volume": "100ml"})
	assert.Equal(t, "100ml", attrs["volume"])
	assert.Equal(t, "eau-de-toilette", attrs["concentration"])
}

func TestApplyDefaultsKeepsExistingValues(t *testing.T) {
	tpl, _ := Lookup("clothing")
	attrs := ApplyDefaults(tpl, map[string]interface{}{"fit": "oversized"})
	assert.Equal(t, "oversized", attrs["fit"])
}

func TestApplyDefaultsNeverPrunes(t *testing.T) {
	// Switching from clothing to perfume keeps the clothing attributes.
	clothing, _ := Lookup("clothing")
	attrs := ApplyDefaults(clothing, map[string]interface{}{"color": "Noir", "size": "M"})

	perfume, _ := Lookup("perfume")
	attrs = ApplyDefaults(perfume, attrs)

	assert.Equal(t, "Noir", attrs["color"])
	assert.Equal(t, "M", attrs["size"])
	assert.Equal(t, "regular", attrs["fit"])
	assert.Equal(t, "eau-de-toilette", attrs["concentration"])
}

func TestApplyDefaultsNilInput(t *testing.T) {
	tpl, _ := Lookup("clothing")
	attrs := ApplyDefaults(tpl, nil)
	require.NotNil(t, attrs)
	assert.Equal(t, "regular", attrs["fit"])
}
