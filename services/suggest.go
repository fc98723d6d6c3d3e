package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Ngưỡng tương đồng tối thiểu để một gợi ý được coi là đáng tin
const suggestionThreshold = 0.5

// NormalizeInput chuẩn hóa chuỗi tìm kiếm: bỏ dấu, lowercase, trim
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// CalculateSimilarity tính độ tương đồng giữa hai chuỗi theo khoảng cách levenshtein
func CalculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// SuggestClosestName tìm tên gần nhất với query trong danh sách names,
// dùng cho thông điệp "có phải bạn muốn tìm" khi kết quả search rỗng.
// Trả về false khi không có gợi ý nào đủ gần
func SuggestClosestName(query string, names []string) (string, bool) {
	if len(names) == 0 || strings.TrimSpace(query) == "" {
		return "", false
	}

	normalizedQuery := NormalizeInput(query)

	// Map từ dạng chuẩn hóa về tên gốc để trả lại đúng chữ hoa chữ thường
	originals := make(map[string]string, len(names))
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		n := NormalizeInput(name)
		if n == "" {
			continue
		}
		if _, exists := originals[n]; !exists {
			originals[n] = name
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return "", false
	}

	cm := closestmatch.New(normalized, []int{2, 3})
	match := cm.Closest(normalizedQuery)
	if match == "" {
		return "", false
	}

	if CalculateSimilarity(normalizedQuery, match) < suggestionThreshold &&
		!strings.Contains(match, normalizedQuery) {
		return "", false
	}

	return originals[match], true
}
