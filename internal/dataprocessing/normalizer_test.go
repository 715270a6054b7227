package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busireport/pkg/contracts/domain"
)

func TestNormalizeSelectsFlaggedRowsOnly(t *testing.T) {
	rows := [][]string{
		listingRow(domain.CategoryForLease, true, map[domain.Field]string{
			domain.FieldSuburb:  "richmond",
			domain.FieldAddress: "12 smith st",
		}),
		listingRow(domain.CategoryForLease, false, map[domain.Field]string{
			domain.FieldSuburb: "excluded",
		}),
		listingRow(domain.CategoryForSale, true, map[domain.Field]string{
			domain.FieldSuburb:      "carlton",
			domain.FieldListedPrice: "350000",
		}),
		listingRow(domain.CategorySold, true, nil),
		listingRow(domain.CategoryAlreadyLeased, true, nil),
	}
	table := NewPropertyTable(testHeaders(), rows)

	model, err := NewNormalizer(nil).Normalize(table, "")
	require.NoError(t, err)

	require.Len(t, model.ForLease, 1)
	require.Len(t, model.ForSale, 1)
	assert.Equal(t, "Richmond", model.ForLease[0].SuburbDisplay)
	assert.Equal(t, "12 Smith St", model.ForLease[0].Address)
	assert.Equal(t, "$350,000", model.ForSale[0].Price)
}

func TestNormalizeFallbacks(t *testing.T) {
	rows := [][]string{
		listingRow(domain.CategoryForLease, true, map[domain.Field]string{
			domain.FieldSuburb: "fitzroy",
		}),
	}
	table := NewPropertyTable(testHeaders(), rows)

	model, err := NewNormalizer(nil).Normalize(table, "")
	require.NoError(t, err)
	require.Len(t, model.ForLease, 1)

	p := model.ForLease[0]
	assert.Equal(t, "Not Disclosed", p.Price)
	assert.Equal(t, "Not Disclosed", p.FloorArea)
	assert.Equal(t, "-", p.CarSpaces)
	assert.Equal(t, "Not Specified", p.Zoning)
	assert.Equal(t, "Commercial", p.PropertyType)
	assert.False(t, p.HasImage())
}

func TestNormalizePriceFieldByCategory(t *testing.T) {
	rows := [][]string{
		listingRow(domain.CategoryForLease, true, map[domain.Field]string{
			domain.FieldLeasePrice:  "52000",
			domain.FieldListedPrice: "999999",
		}),
		listingRow(domain.CategoryForSale, true, map[domain.Field]string{
			domain.FieldLeasePrice:  "111111",
			domain.FieldListedPrice: "750000",
		}),
	}
	table := NewPropertyTable(testHeaders(), rows)

	model, err := NewNormalizer(nil).Normalize(table, "")
	require.NoError(t, err)

	require.Len(t, model.ForLease, 1)
	require.Len(t, model.ForSale, 1)
	assert.Equal(t, "$52,000", model.ForLease[0].Price)
	assert.Equal(t, "$750,000", model.ForSale[0].Price)
}

func TestNormalizeMissingRequiredColumn(t *testing.T) {
	headers := testHeaders()
	headers[ColumnIndex("N")] = "" // drop Floor Size (m²)
	table := NewPropertyTable(headers, nil)

	_, err := NewNormalizer(nil).Normalize(table, "")
	var missingErr *MissingColumnError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"Floor Size (m²)"}, missingErr.Columns)
}

func TestComputeStatistics(t *testing.T) {
	rows := [][]string{
		listingRow(domain.CategoryForLease, true, map[domain.Field]string{
			domain.FieldPricePerSqm: "$1,200",
		}),
		listingRow(domain.CategoryForLease, true, map[domain.Field]string{
			domain.FieldPricePerSqm: "1100.50",
		}),
		listingRow(domain.CategoryForLease, true, map[domain.Field]string{
			domain.FieldPricePerSqm: "not a number",
		}),
		listingRow(domain.CategoryForLease, true, nil),
		listingRow(domain.CategoryForLease, false, map[domain.Field]string{
			// Excluded rows never contribute to the average.
			domain.FieldPricePerSqm: "9999",
		}),
		listingRow(domain.CategorySold, true, map[domain.Field]string{
			domain.FieldPricePerSqm: "400",
		}),
	}
	table := NewPropertyTable(testHeaders(), rows)

	stats := NewNormalizer(nil).computeStatistics(table)

	assert.Equal(t, 5, stats.ForLease.Total)
	assert.Equal(t, 4, stats.ForLease.Criteria)
	// (1200 + 1100.5) / 2 = 1150.25, rounded half-up.
	assert.Equal(t, 1150, stats.ForLease.AvgPricePerSqm)

	assert.Equal(t, 1, stats.Sold.Total)
	assert.Equal(t, 1, stats.Sold.Criteria)
	assert.Equal(t, 400, stats.Sold.AvgPricePerSqm)

	assert.Zero(t, stats.ForSale.Total)
	assert.Zero(t, stats.AlreadyLeased.AvgPricePerSqm)
}

func TestStatisticsInvariantCriteriaWithinTotal(t *testing.T) {
	rows := [][]string{
		listingRow(domain.CategoryForSale, true, nil),
		listingRow(domain.CategoryForSale, false, nil),
		listingRow(domain.CategoryForSale, false, nil),
	}
	table := NewPropertyTable(testHeaders(), rows)

	stats := NewNormalizer(nil).computeStatistics(table)
	for _, category := range domain.Categories {
		slot := stats.ByCategory(category)
		assert.LessOrEqual(t, slot.Criteria, slot.Total, string(category))
	}
}

func TestAssociateImages(t *testing.T) {
	images := []ExtractedImage{
		{Seq: 0, Name: "image1.png", Format: "png"},
		{Seq: 1, Name: "image2.jpeg", Format: "jpeg"},
	}
	leaseRows := []int{2, 5, 7}
	saleRows := []int{9, 11}

	assigned := associateImages(images, leaseRows, saleRows)

	// Lease rows consume the supply first, in source order.
	require.Len(t, assigned, 2)
	assert.Equal(t, "image1.png", assigned[2].Name)
	assert.Equal(t, "image2.jpeg", assigned[5].Name)
	assert.NotContains(t, assigned, 7)
	assert.NotContains(t, assigned, 9)
}

func TestAssociateImagesSpillsToSaleRows(t *testing.T) {
	images := []ExtractedImage{
		{Seq: 0, Name: "a.png", Format: "png"},
		{Seq: 1, Name: "b.png", Format: "png"},
		{Seq: 2, Name: "c.png", Format: "png"},
	}

	assigned := associateImages(images, []int{0, 1}, []int{4, 6})

	require.Len(t, assigned, 3)
	assert.Equal(t, "c.png", assigned[4].Name)
	assert.NotContains(t, assigned, 6)
}

func TestAssociateImagesNoImages(t *testing.T) {
	assigned := associateImages(nil, []int{0, 1}, []int{2})
	assert.Empty(t, assigned)
}
