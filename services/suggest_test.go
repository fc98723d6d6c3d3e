package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "goi cuoi tuan", NormalizeInput("  Gói Cuối Tuần "))
	assert.Equal(t, "deluxe", NormalizeInput("DELUXE"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CalculateSimilarity("deluxe", "deluxe"), 0.001)
	assert.InDelta(t, 1.0, CalculateSimilarity("", ""), 0.001)
	assert.Less(t, CalculateSimilarity("deluxe", "garden"), 0.5)
}

func TestSuggestClosestName(t *testing.T) {
	names := []string{"Gói Cuối Tuần", "Gói Mùa Lễ", "Gói Dài Ngày"}

	suggestion, ok := SuggestClosestName("goi cuoi tuan", names)
	assert.True(t, ok)
	assert.Equal(t, "Gói Cuối Tuần", suggestion)

	// Gõ sai một vài ký tự vẫn gợi ý được
	suggestion, ok = SuggestClosestName("goi cuoi tuna", names)
	assert.True(t, ok)
	assert.Equal(t, "Gói Cuối Tuần", suggestion)
}

func TestSuggestClosestNameNoMatch(t *testing.T) {
	names := []string{"Gói Cuối Tuần", "Gói Mùa Lễ"}

	_, ok := SuggestClosestName("zzzzzzzz", names)
	assert.False(t, ok)

	_, ok = SuggestClosestName("   ", names)
	assert.False(t, ok)

	_, ok = SuggestClosestName("deluxe", nil)
	assert.False(t, ok)
}
