package catalog

// SelectCategory returns the products visible under the given selector label.
//
// AllCategories returns full itself. Any other label returns the products
// whose Category equals label exactly, in their original order. A label no
// product carries yields an empty, non-nil slice.
func SelectCategory(full []Product, label string) []Product {
	if label == AllCategories {
		return full
	}

	visible := make([]Product, 0, len(full))
	for _, p := range full {
		if p.Category == label {
			visible = append(visible, p)
		}
	}

	return visible
}
