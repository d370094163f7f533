package models

const (
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

const DefaultMaxPrice = 100

// FilterState is the transient browse selection owned by the caller and fed
// to the query functions. It is not persisted anywhere.
type FilterState struct {
	SearchQuery        string
	SelectedIngredient string
	MaxPrice           float64
	Category           string
	SortBy             string
}

func DefaultFilterState() FilterState {
	return FilterState{
		MaxPrice: DefaultMaxPrice,
		SortBy:   SortNameAsc,
	}
}

func (f *FilterState) Reset() {
	*f = DefaultFilterState()
}
