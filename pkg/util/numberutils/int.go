package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithError parses str as a base 10 integer. Surrounding spaces are ignored.
func ToIntWithError(str string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(str))
}

// ToIntWithDefault parses s, returning defaultVal when s is empty or not an integer.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := ToIntWithError(s); err == nil {
		return i
	}
	return defaultVal
}

// MaxInt returns the largest of nums, or 0 when nums is empty.
func MaxInt(nums ...int) int {
	if len(nums) == 0 {
		return 0
	}
	maxVal := nums[0]
	for _, num := range nums[1:] {
		maxVal = max(maxVal, num)
	}
	return maxVal
}

// MinInt returns the smallest of nums, or 0 when nums is empty.
func MinInt(nums ...int) int {
	if len(nums) == 0 {
		return 0
	}
	minVal := nums[0]
	for _, num := range nums[1:] {
		minVal = min(minVal, num)
	}
	return minVal
}

// ClampInt bounds num to [lower, upper].
func ClampInt(num, lower, upper int) int {
	return MinInt(MaxInt(num, lower), upper)
}

// IsIntInRange reports whether lower <= num <= upper.
func IsIntInRange(num, lower, upper int) bool {
	return num >= lower && num <= upper
}

func IsIntPositive(number int) bool {
	return number > 0
}

func IsIntNegative(number int) bool {
	return number < 0
}
