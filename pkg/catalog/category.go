package catalog

// AllCategories is the selector entry that resets the filter. It is not a
// real product category.
const AllCategories = "All"

// categories is the fixed selector order. Index 0 is always AllCategories.
var categories = [...]string{
	AllCategories,
	"electronics",
	"jewelery",
	"men's clothing",
	"women's clothing",
}

// Categories returns a copy of the selector labels in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories[:])
	return out
}

// CategoryCount returns the number of selector entries, including AllCategories.
func CategoryCount() int {
	return len(categories)
}

// CategoryAt returns the label at the given selector index.
func CategoryAt(index int) (string, bool) {
	if index < 0 || index >= len(categories) {
		return "", false
	}
	return categories[index], true
}

// CategoryIndex returns the selector index of label, or -1 if the label is
// not part of the selector. Matching is exact and case-sensitive.
func CategoryIndex(label string) int {
	for i, c := range categories {
		if c == label {
			return i
		}
	}
	return -1
}
