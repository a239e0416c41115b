package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSelection interprets the answer to "which items?" for a list of n
// items numbered from zero.
//
// "no" cancels. An empty answer or "all" selects every item. Otherwise the
// answer is a comma separated list of indices; entries that are not numbers
// or fall outside the list are dropped and reported as warnings. Repeated
// indices are kept once.
func ParseSelection(resp string, n int) (indices []int, cancelled bool, warnings []error) {
	resp = strings.ToLower(strings.TrimSpace(resp))
	switch resp {
	case "no":
		return nil, true, nil
	case "", "all":
		indices = make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		return indices, false, nil
	}

	seen := make(map[int]bool)
	for _, field := range strings.Split(resp, ",") {
		field = strings.TrimSpace(field)
		idx, err := strconv.Atoi(field)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("ignoring %q: not a number", field))
			continue
		}
		if idx < 0 || idx >= n {
			warnings = append(warnings, fmt.Errorf("ignoring %d: out of range [0, %d)", idx, n))
			continue
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	return indices, false, warnings
}
