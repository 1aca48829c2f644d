package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisor_Recommend_WithinRange(t *testing.T) {
	a := NewAdvisor()

	rec, err := a.Recommend("tshirt", 170)
	require.NoError(t, err)

	assert.Equal(t, "M", rec.Size)
	assert.Equal(t, "tshirt", rec.Category)
	assert.Equal(t, "165-175 cm", rec.HeightRange)
	assert.Equal(t, "chest", rec.Measure)
	assert.Equal(t, "38-40", rec.MeasureValue)
	assert.Empty(t, rec.Note)
}

func TestAdvisor_Recommend_OverlapFirstMatchWins(t *testing.T) {
	a := NewAdvisor()

	// 165 is the shared boundary of tshirt S (150-165) and M (165-175);
	// the earlier entry must win.
	rec, err := a.Recommend("tshirt", 165)
	require.NoError(t, err)
	assert.Equal(t, "S", rec.Size)

	// Shoe charts overlap by a full 5cm band: 160 fits both 7 (150-165)
	// and 8 (160-170).
	rec, err = a.Recommend("shoes", 160)
	require.NoError(t, err)
	assert.Equal(t, "7", rec.Size)
}

func TestAdvisor_Recommend_BelowRange(t *testing.T) {
	a := NewAdvisor()

	rec, err := a.Recommend("tshirt", 140)
	require.NoError(t, err)

	assert.Equal(t, "S", rec.Size)
	assert.Equal(t, "Below standard range, smallest size recommended", rec.Note)
	assert.Empty(t, rec.HeightRange)
}

func TestAdvisor_Recommend_AboveRange(t *testing.T) {
	a := NewAdvisor()

	rec, err := a.Recommend("tshirt", 250)
	require.NoError(t, err)

	assert.Equal(t, "XL", rec.Size)
	assert.Equal(t, "Above standard range, largest size recommended", rec.Note)
}

func TestAdvisor_Recommend_UnsupportedCategory(t *testing.T) {
	a := NewAdvisor()

	_, err := a.Recommend("accessories", 170)
	assert.ErrorIs(t, err, ErrUnsupportedCategory)
}

func TestAdvisor_Chart(t *testing.T) {
	a := NewAdvisor()

	chart, err := a.Chart("jeans")
	require.NoError(t, err)

	require.Len(t, chart.Sizes, 5)
	assert.Equal(t, "28", chart.Sizes[0].Label)
	assert.Equal(t, "36", chart.Sizes[4].Label)
	assert.Equal(t, "waist", chart.Sizes[0].Measure)

	// The returned chart is a copy; callers can't reorder the advisor's table
	chart.Sizes[0], chart.Sizes[4] = chart.Sizes[4], chart.Sizes[0]
	again, err := a.Chart("jeans")
	require.NoError(t, err)
	assert.Equal(t, "28", again.Sizes[0].Label)
}

func TestAdvisor_Chart_UnsupportedCategory(t *testing.T) {
	a := NewAdvisor()

	_, err := a.Chart("hats")
	assert.ErrorIs(t, err, ErrUnsupportedCategory)
}
