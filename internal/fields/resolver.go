// Package fields produces the effective field schema for a tenant's
// products and customers: a fixed static set merged with the dynamic
// fields of the tenant's business-type template, plus the value
// coercion applied to raw request payloads.
package fields

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/erp-suite/erp-server/internal/models"
)

// Static product field names
const (
	FieldName      = "Name"
	FieldPrice     = "Price"
	FieldCostPrice = "Cost Price"
	FieldStock     = "Stock"
	FieldMinStock  = "Min Stock"
)

// legacyCustomerFields are hardcoded in the UI and filtered out of
// the dynamic customer set to avoid duplication.
var legacyCustomerFields = map[string]bool{
	"name":    true,
	"phone":   true,
	"email":   true,
	"address": true,
}

// StaticProductFields returns the fixed product field set, in order.
// Callers get a fresh slice each time.
func StaticProductFields() []models.FieldDefinition {
	return []models.FieldDefinition{
		{Name: FieldName, Label: FieldName, Type: models.FieldTypeText, Required: true, Enabled: true},
		{Name: FieldPrice, Label: FieldPrice, Type: models.FieldTypeNumber, Required: true, Enabled: true},
		{Name: FieldCostPrice, Label: FieldCostPrice, Type: models.FieldTypeNumber, Required: true, Enabled: true},
		{Name: FieldStock, Label: FieldStock, Type: models.FieldTypeNumber, Required: true, Enabled: true},
		{Name: FieldMinStock, Label: FieldMinStock, Type: models.FieldTypeNumber, Required: true, Enabled: true},
	}
}

// Normalize lowercases a field name and removes all whitespace.
// Collision checks between static and dynamic fields compare
// normalized names.
func Normalize(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

// ProductFields merges the static product set with the enabled
// dynamic fields of the business type. Statics come first in their
// fixed order and win any name collision; among dynamics, the first
// occurrence of a name wins.
func ProductFields(bt *models.BusinessType) []models.FieldDefinition {
	out := StaticProductFields()

	seen := make(map[string]bool, len(out))
	for _, f := range out {
		seen[Normalize(f.Name)] = true
	}

	if bt == nil {
		return out
	}

	for _, f := range bt.Fields {
		if !f.Enabled {
			continue
		}
		key := Normalize(f.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}

	return out
}

// CustomerFields returns the enabled dynamic customer fields of the
// business type, de-duplicated, with the legacy UI fields filtered
// out. No statics are synthesized; a nil business type yields an
// empty list.
func CustomerFields(bt *models.BusinessType) []models.FieldDefinition {
	if bt == nil {
		return nil
	}

	seen := make(map[string]bool)
	var out []models.FieldDefinition

	for _, f := range bt.CustomerFields {
		if !f.Enabled {
			continue
		}
		key := Normalize(f.Name)
		if key == "" || seen[key] || legacyCustomerFields[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}

	return out
}

// ApplyValues builds a persistence-ready value map from a raw request
// payload. Each field's value is looked up under its exact name, its
// normalized name and its lowercase name, tolerating inconsistent
// client-side key casing. Pure function over its inputs.
func ApplyValues(fields []models.FieldDefinition, raw map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))

	for _, f := range fields {
		value, ok := lookup(raw, f.Name)

		switch {
		case f.Type == models.FieldTypeNumber:
			out[f.Name] = toNumber(value)
		case multiValued(f.Name):
			out[f.Name] = toList(value)
		case !ok || value == nil:
			out[f.Name] = ""
		default:
			out[f.Name] = value
		}
	}

	return out
}

// lookup tries the candidate keys for a field name in order
func lookup(raw map[string]interface{}, name string) (interface{}, bool) {
	for _, key := range []string{name, Normalize(name), strings.ToLower(name)} {
		if v, ok := raw[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// multiValued reports whether a field name implies a comma-separated
// list by convention.
func multiValued(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "size") || strings.Contains(lower, "color")
}

// toNumber coerces a raw value to float64, falling back to 0
func toNumber(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// toList splits a comma-separated value into trimmed, non-empty parts
func toList(value interface{}) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case string:
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return []string{}
	}
}
