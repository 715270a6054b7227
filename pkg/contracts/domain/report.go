package domain

// CategoryStats holds the derived numbers for one market category.
type CategoryStats struct {
	// Total is the number of rows carrying this category.
	Total int `json:"total"`
	// Criteria is the subset of Total additionally flagged for
	// inclusion in the report.
	Criteria int `json:"criteria"`
	// AvgPricePerSqm is the average $/m² among rows matching both
	// filters, rounded half-up to the nearest dollar. Zero when no
	// qualifying row has a parseable value.
	AvgPricePerSqm int `json:"avg_price_per_sqm"`
}

// ReportStatistics aggregates CategoryStats for all four categories.
// Computed once over the full source table, independent of which rows
// end up rendered.
type ReportStatistics struct {
	ForLease      CategoryStats `json:"for_lease"`
	AlreadyLeased CategoryStats `json:"already_leased"`
	ForSale       CategoryStats `json:"for_sale"`
	Sold          CategoryStats `json:"sold"`
}

// ByCategory returns the stats slot for the given category.
func (s *ReportStatistics) ByCategory(c Category) *CategoryStats {
	switch c {
	case CategoryForLease:
		return &s.ForLease
	case CategoryAlreadyLeased:
		return &s.AlreadyLeased
	case CategoryForSale:
		return &s.ForSale
	case CategorySold:
		return &s.Sold
	}
	return nil
}

// ReportModel is the render-ready aggregate handed to the composer.
// Property order within each slice equals source row order.
type ReportModel struct {
	Statistics ReportStatistics     `json:"statistics"`
	ForLease   []NormalizedProperty `json:"for_lease_properties"`
	ForSale    []NormalizedProperty `json:"for_sale_properties"`
}

// ReportRequest carries the caller-supplied presentation parameters
// for one generation run.
type ReportRequest struct {
	BrandKey   string `json:"brand" validate:"required"`
	SecondLine string `json:"second_line" validate:"required,max=120"`
	ThirdLine  string `json:"third_line" validate:"required,max=120"`
	ReportDate string `json:"report_date" validate:"required,max=40"`
}
