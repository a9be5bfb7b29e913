package pagination

// Meta contains metadata about one page of a collection.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	FirstItem   int  `json:"first_item"   yaml:"first_item"`
	LastItem    int  `json:"last_item"    yaml:"last_item"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates page metadata from parameters and the collection size.
// FirstItem and LastItem are 1-based positions and are both 0 for an empty page.
func NewMeta(params Params, totalCount int) Meta {
	totalPages := params.CalculateTotalPages(totalCount)
	start, end := params.Bounds(totalCount)

	first, last := 0, 0
	if end > start {
		first = start + 1
		last = end
	}

	return Meta{
		CurrentPage: params.Page,
		PageSize:    params.PageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		FirstItem:   first,
		LastItem:    last,
		HasPrevious: params.Page > 1,
		HasNext:     params.Page < totalPages,
	}
}
