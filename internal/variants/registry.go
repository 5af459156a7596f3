// internal/variants/registry.go
package variants

// Template describes a predefined attribute set for a family of products.
// Applying a template to a variant seeds its default attribute values but
// never removes attributes the variant already carries.
type Template struct {
	Key           string                 `json:"key"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Attributes    []string               `json:"attributes"`
	DefaultValues map[string]interface{} `json:"default_values,omitempty"`
}

// Option is a selectable attribute value. Label falls back to Value for
// attributes whose values are self-describing.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var templateOrder = []string{"clothing", "perfume", "shoes", "accessories", "custom"}

var templates = map[string]Template{
	"clothing": {
		Key:           "clothing",
		Name:          "Vêtements",
		Description:   "Couleur, taille, coupe",
		Attributes:    []string{"color", "size", "fit"},
		DefaultValues: map[string]interface{}{"fit": "regular"},
	},
	"perfume": {
		Key:           "perfume",
		Name:          "Parfum",
		Description:   "Volume, concentration",
		Attributes:    []string{"volume", "concentration"},
		DefaultValues: map[string]interface{}{"concentration": "eau-de-toilette"},
	},
	"shoes": {
		Key:         "shoes",
		Name:        "Chaussures",
		Description: "Couleur, pointure",
		Attributes:  []string{"color", "shoe_size"},
	},
	"accessories": {
		Key:         "accessories",
		Name:        "Accessoires",
		Description: "Couleur, matière",
		Attributes:  []string{"color", "material"},
	},
	"custom": {
		Key:         "custom",
		Name:        "Personnalisé",
		Description: "Attributs personnalisés",
		Attributes:  []string{},
	},
}

var attributeOptions = map[string][]Option{
	"color": plain(
		"Noir", "Blanc", "Rouge", "Bleu", "Vert", "Jaune", "Orange", "Violet",
		"Rose", "Gris", "Marron", "Beige", "Marine", "Bordeaux", "Kaki",
	),
	"size":   plain("XS", "S", "M", "L", "XL", "XXL", "XXXL"),
	"volume": plain("30ml", "50ml", "75ml", "100ml", "125ml", "150ml", "200ml"),
	"concentration": {
		{Value: "eau-de-toilette", Label: "Eau de Toilette"},
		{Value: "eau-de-parfum", Label: "Eau de Parfum"},
		{Value: "parfum", Label: "Parfum"},
	},
	"fit": {
		{Value: "slim", Label: "Coupe Slim"},
		{Value: "regular", Label: "Coupe Regular"},
		{Value: "oversized", Label: "Coupe Oversized"},
	},
	"material": plain(
		"Coton", "Polyester", "Laine", "Soie", "Lin", "Cuir", "Daim", "Denim",
		"Cachemire", "Viscose", "Élasthanne", "Nylon",
	),
	"shoe_size": plain(
		"35", "36", "37", "38", "39", "40", "41", "42", "43", "44", "45", "46", "47",
	),
}

func plain(values ...string) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Value: v, Label: v})
	}
	return opts
}

// Lookup returns the template for key. ok is false for unknown keys.
func Lookup(key string) (Template, bool) {
	tpl, ok := templates[key]
	return tpl, ok
}

// All returns the registered templates in their display order.
func All() []Template {
	out := make([]Template, 0, len(templateOrder))
	for _, key := range templateOrder {
		out = append(out, templates[key])
	}
	return out
}

// AttributeOptions returns the selectable values for an attribute key.
// Unknown attributes yield nil, meaning free-form input.
func AttributeOptions(attribute string) []Option {
	return attributeOptions[attribute]
}

// AllAttributeOptions returns the full option catalog keyed by attribute.
func AllAttributeOptions() map[string][]Option {
	out := make(map[string][]Option, len(attributeOptions))
	for k, v := range attributeOptions {
		out[k] = v
	}
	return out
}

// ApplyDefaults merges a template's default values into attrs. Existing
// keys win over defaults, and keys outside the template are left alone,
// so switching templates accumulates attributes rather than pruning them.
func ApplyDefaults(tpl Template, attrs map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(attrs)+len(tpl.DefaultValues))
	for k, v := range attrs {
		out[k] = v
	}
	for k, v := range tpl.DefaultValues {
		if _, exists := out[k]; !exists {
			out[k] = v
		}
	}
	return out
}
