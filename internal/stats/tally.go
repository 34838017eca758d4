package stats

import "fmt"

// Tally counts occurrences of each label in the given display order.
// Labels not listed in order are ignored; labels with no occurrences
// still appear with a zero count, so the result always has len(order) rows.
func Tally(labels []string, order []string) []CategoryCount {
	counts := make(map[string]int, len(order))
	member := make(map[string]struct{}, len(order))
	for _, o := range order {
		member[o] = struct{}{}
	}
	for _, l := range labels {
		if _, ok := member[l]; ok {
			counts[l]++
		}
	}

	result := make([]CategoryCount, len(order))
	for i, o := range order {
		result[i] = CategoryCount{Label: o, Count: counts[o]}
	}
	return result
}

// MaxCount returns the category with the largest count, first-wins on ties.
// It fails when the input is empty or every count is zero, since a zero-count
// category cannot serve as a proportion-test reference.
func MaxCount(counts []CategoryCount) (CategoryCount, error) {
	var best CategoryCount
	found := false
	for _, c := range counts {
		if c.Count > best.Count {
			best = c
			found = true
		}
	}
	if !found {
		return CategoryCount{}, fmt.Errorf("%w: no category with a positive count", ErrInvalidInput)
	}
	return best, nil
}
