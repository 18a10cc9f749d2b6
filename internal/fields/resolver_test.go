package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp-suite/erp-server/internal/models"
)

func TestStaticProductFields(t *testing.T) {
	statics := StaticProductFields()

	require.Len(t, statics, 5)
	assert.Equal(t, []string{"Name", "Price", "Cost Price", "Stock", "Min Stock"},
		fieldNames(statics))

	for _, f := range statics {
		assert.True(t, f.Required, f.Name)
		assert.True(t, f.Enabled, f.Name)
	}

	// Callers each get their own slice
	statics[0].Name = "mutated"
	assert.Equal(t, "Name", StaticProductFields()[0].Name)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "costprice", Normalize("Cost Price"))
	assert.Equal(t, "costprice", Normalize("cost\tprice"))
	assert.Equal(t, "warranty", Normalize("  Warranty  "))
	assert.Equal(t, "", Normalize("   "))
}

func TestProductFieldsNilBusinessType(t *testing.T) {
	assert.Equal(t, StaticProductFields(), ProductFields(nil))
}

func TestProductFieldsMergesDynamics(t *testing.T) {
	bt := &models.BusinessType{
		Fields: []models.FieldDefinition{
			{Name: "Brand", Type: models.FieldTypeText, Enabled: true},
			{Name: "Warranty", Type: models.FieldTypeText, Enabled: true},
		},
	}

	out := ProductFields(bt)

	require.Len(t, out, 7)
	assert.Equal(t, "Brand", out[5].Name)
	assert.Equal(t, "Warranty", out[6].Name)
}

func TestProductFieldsStaticsWinCollisions(t *testing.T) {
	bt := &models.BusinessType{
		Fields: []models.FieldDefinition{
			{Name: "cost price", Type: models.FieldTypeNumber, Enabled: true},
			{Name: "name", Type: models.FieldTypeText, Enabled: true},
			{Name: "Brand", Type: models.FieldTypeText, Enabled: true},
		},
	}

	out := ProductFields(bt)

	require.Len(t, out, 6)
	assert.Equal(t, "Cost Price", out[2].Name)
	assert.Equal(t, "Brand", out[5].Name)
}

func TestProductFieldsDynamicDeDupe(t *testing.T) {
	bt := &models.BusinessType{
		Fields: []models.FieldDefinition{
			{Name: "Brand", Label: "Brand", Type: models.FieldTypeText, Enabled: true},
			{Name: "brand", Label: "Maker", Type: models.FieldTypeText, Enabled: true},
		},
	}

	out := ProductFields(bt)

	require.Len(t, out, 6)
	assert.Equal(t, "Brand", out[5].Label)
}

func TestProductFieldsSkipsDisabled(t *testing.T) {
	bt := &models.BusinessType{
		Fields: []models.FieldDefinition{
			{Name: "Brand", Type: models.FieldTypeText, Enabled: false},
		},
	}

	assert.Len(t, ProductFields(bt), 5)
}

func TestCustomerFields(t *testing.T) {
	bt := &models.BusinessType{
		CustomerFields: []models.FieldDefinition{
			{Name: "GST Number", Type: models.FieldTypeText, Enabled: true},
			{Name: "Phone", Type: models.FieldTypeText, Enabled: true},
			{Name: "email", Type: models.FieldTypeText, Enabled: true},
			{Name: "Anniversary", Type: models.FieldTypeDate, Enabled: false},
			{Name: "gst number", Type: models.FieldTypeText, Enabled: true},
		},
	}

	out := CustomerFields(bt)

	// Legacy contact fields, disabled fields and duplicates are gone
	require.Len(t, out, 1)
	assert.Equal(t, "GST Number", out[0].Name)
}

func TestCustomerFieldsNilBusinessType(t *testing.T) {
	assert.Empty(t, CustomerFields(nil))
}

func TestApplyValuesNumberCoercion(t *testing.T) {
	defs := []models.FieldDefinition{
		{Name: "Price", Type: models.FieldTypeNumber, Enabled: true},
	}

	cases := []struct {
		raw  interface{}
		want float64
	}{
		{12.5, 12.5},
		{"12.5", 12.5},
		{" 7 ", 7},
		{int(3), 3},
		{"abc", 0},
		{nil, 0},
		{true, 0},
	}

	for _, tc := range cases {
		out := ApplyValues(defs, map[string]interface{}{"Price": tc.raw})
		assert.Equal(t, tc.want, out["Price"], "raw=%v", tc.raw)
	}

	// Missing key coerces to zero too
	out := ApplyValues(defs, map[string]interface{}{})
	assert.Equal(t, 0.0, out["Price"])
}

func TestApplyValuesListCoercion(t *testing.T) {
	defs := []models.FieldDefinition{
		{Name: "Sizes", Type: models.FieldTypeText, Enabled: true},
		{Name: "Color Options", Type: models.FieldTypeText, Enabled: true},
	}

	out := ApplyValues(defs, map[string]interface{}{
		"Sizes":         "S, M , L,,",
		"Color Options": []interface{}{"Red", " Blue ", 3},
	})

	assert.Equal(t, []string{"S", "M", "L"}, out["Sizes"])
	assert.Equal(t, []string{"Red", "Blue"}, out["Color Options"])
}

func TestApplyValuesCandidateKeys(t *testing.T) {
	defs := []models.FieldDefinition{
		{Name: "Cost Price", Type: models.FieldTypeNumber, Enabled: true},
		{Name: "Brand", Type: models.FieldTypeText, Enabled: true},
	}

	// Exact name missing, normalized and lowercase forms present
	out := ApplyValues(defs, map[string]interface{}{
		"costprice": "42",
		"brand":     "Acme",
	})

	assert.Equal(t, 42.0, out["Cost Price"])
	assert.Equal(t, "Acme", out["Brand"])
}

func TestApplyValuesExactKeyWins(t *testing.T) {
	defs := []models.FieldDefinition{
		{Name: "Brand", Type: models.FieldTypeText, Enabled: true},
	}

	out := ApplyValues(defs, map[string]interface{}{
		"Brand": "Exact",
		"brand": "Lower",
	})

	assert.Equal(t, "Exact", out["Brand"])
}

func TestApplyValuesMissingTextDefaults(t *testing.T) {
	defs := []models.FieldDefinition{
		{Name: "Notes", Type: models.FieldTypeText, Enabled: true},
	}

	out := ApplyValues(defs, map[string]interface{}{})
	assert.Equal(t, "", out["Notes"])

	out = ApplyValues(defs, map[string]interface{}{"Notes": nil})
	assert.Equal(t, "", out["Notes"])
}

func fieldNames(defs []models.FieldDefinition) []string {
	out := make([]string, 0, len(defs))
	for _, f := range defs {
		out = append(out, f.Name)
	}
	return out
}
