package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductLowStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 2, MinStock: 5}).LowStock())
	assert.True(t, (&Product{Stock: 5, MinStock: 5}).LowStock())
	assert.False(t, (&Product{Stock: 6, MinStock: 5}).LowStock())
}

func TestPlanHasFeature(t *testing.T) {
	plan := &Plan{AllowedFeatures: []string{"hr", "reports"}}

	assert.True(t, plan.HasFeature("hr"))
	assert.False(t, plan.HasFeature("billing"))
	assert.False(t, (&Plan{}).HasFeature("hr"))
}

func TestVariablesCopy(t *testing.T) {
	orig := Variables{"a": 1}
	copied := orig.Copy()

	copied["b"] = 2
	assert.Len(t, orig, 1)
	assert.Len(t, copied, 2)

	var nilVars Variables
	assert.NotNil(t, nilVars.Copy())
}
