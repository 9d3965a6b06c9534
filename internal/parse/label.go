package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var spaceRe = regexp.MustCompile(`\s+`)

// MaxBulkBeds caps a single bulk bed request.
const MaxBulkBeds = 100

// Label normalises a floor, room or bed label: surrounding whitespace is
// dropped and inner runs of whitespace collapse to one space, so "  G  1 "
// and "G 1" name the same sibling.
func Label(raw string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(raw, " "))
}

// BedLabels generates count labels prefix1..prefixN.
func BedLabels(prefix string, count int) ([]string, error) {
	if count < 1 || count > MaxBulkBeds {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", MaxBulkBeds, count)
	}
	prefix = Label(prefix)

	labels := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		labels = append(labels, prefix+strconv.Itoa(i))
	}
	return labels, nil
}
