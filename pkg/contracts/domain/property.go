package domain

// Category classifies a property record's market status.
type Category string

const (
	CategoryForLease      Category = "For Lease"
	CategoryAlreadyLeased Category = "Already Leased"
	CategoryForSale       Category = "For Sale"
	CategorySold          Category = "Sold"
)

// Categories lists every recognized category in report order.
var Categories = []Category{
	CategoryForLease,
	CategoryAlreadyLeased,
	CategoryForSale,
	CategorySold,
}

// Field names the semantic columns of the property table. The table
// layer resolves these to positions once at load time; nothing past
// that point does positional arithmetic.
type Field string

const (
	FieldCategory     Field = "Type"
	FieldPhoto        Field = "Property Photo"
	FieldAddress      Field = "Street Address"
	FieldSuburb       Field = "Suburb"
	FieldState        Field = "State"
	FieldPostcode     Field = "Postcode"
	FieldZoning       Field = "Site Zoning"
	FieldPropertyType Field = "Property Type"
	FieldCarSpaces    Field = "Car"
	FieldFloorSize    Field = "Floor Size (m²)"
	FieldListedPrice  Field = "Last Listed Price (Sold/For Sale)"
	FieldLeasePrice   Field = "Total Lease Price (Base + Outgoings)"
	FieldAllowableUse Field = "Allowable Use in Zone (T/F)"
	FieldPricePerSqm  Field = "$/m²"
	FieldInReport     Field = "PUT IN REPORT (T/F)"
	FieldComment      Field = "Busi's Comment"
)

// RequiredFields are the columns the normalizer refuses to run without.
var RequiredFields = []Field{
	FieldCategory,
	FieldPhoto,
	FieldAddress,
	FieldSuburb,
	FieldState,
	FieldPostcode,
	FieldZoning,
	FieldPropertyType,
	FieldCarSpaces,
	FieldFloorSize,
	FieldListedPrice,
	FieldLeasePrice,
	FieldPricePerSqm,
	FieldInReport,
	FieldComment,
}

// NormalizedProperty is a single listing selected for the report, with
// every display value already resolved. Instances are immutable once
// produced and live only for the duration of one generation run.
type NormalizedProperty struct {
	Suburb        string `json:"suburb"`
	SuburbDisplay string `json:"suburb_display"`
	Address       string `json:"address"`
	Price         string `json:"price"`
	FloorArea     string `json:"floor_area"`
	CarSpaces     string `json:"car_spaces"`
	Zoning        string `json:"zoning"`
	PropertyType  string `json:"property_type"`
	Comment       string `json:"comment,omitempty"`
	// ImageData holds the decoded photo bytes when one was associated
	// with this row, nil otherwise.
	ImageData []byte `json:"-"`
	// ImageFormat is the lowercase extension of the source image
	// ("png", "jpeg", ...) when ImageData is set.
	ImageFormat string `json:"image_format,omitempty"`
}

// HasImage reports whether a photo was associated with this property.
func (p *NormalizedProperty) HasImage() bool {
	return len(p.ImageData) > 0
}
