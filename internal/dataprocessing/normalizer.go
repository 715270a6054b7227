package dataprocessing

import (
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"busireport/pkg/contracts/domain"
)

// Normalizer turns a validated PropertyTable into the render-ready
// report model: image extraction and association, per-category
// statistics, and selection of the rows flagged for the report.
type Normalizer struct {
	logger *slog.Logger
}

// NewNormalizer creates a normalizer. A nil logger falls back to the
// default slog logger.
func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger.With(slog.String("component", "normalizer"))}
}

// Normalize runs the full normalization pass over the table.
// sourcePath, when non-empty and pointing at an xlsx file, is used for
// embedded photo extraction; image failures degrade to a report
// without photos. A missing required column returns
// *MissingColumnError and aborts before any output is produced.
func (n *Normalizer) Normalize(table *PropertyTable, sourcePath string) (*domain.ReportModel, error) {
	images := n.extractImages(sourcePath)

	if missing := table.MissingFields(domain.RequiredFields); len(missing) > 0 {
		n.logger.Error("required columns missing from source table",
			slog.Any("columns", missing))
		return nil, &MissingColumnError{Columns: missing}
	}

	model := &domain.ReportModel{
		Statistics: n.computeStatistics(table),
	}

	leaseRows, saleRows := n.selectRows(table)
	rowImages := associateImages(images, leaseRows, saleRows)

	for _, row := range leaseRows {
		model.ForLease = append(model.ForLease, n.extractProperty(table, row, domain.CategoryForLease, rowImages[row]))
	}
	for _, row := range saleRows {
		model.ForSale = append(model.ForSale, n.extractProperty(table, row, domain.CategoryForSale, rowImages[row]))
	}

	n.logger.Info("normalization complete",
		slog.Int("for_lease", len(model.ForLease)),
		slog.Int("for_sale", len(model.ForSale)),
		slog.Int("images", len(images)))
	return model, nil
}

func (n *Normalizer) extractImages(sourcePath string) []ExtractedImage {
	if sourcePath == "" || strings.ToLower(filepath.Ext(sourcePath)) != ".xlsx" {
		return nil
	}
	images, err := ExtractImages(sourcePath, n.logger)
	if err != nil {
		n.logger.Error("image extraction failed, continuing without photos",
			slog.String("file", sourcePath),
			slog.String("error", err.Error()))
		return nil
	}
	return images
}

// selectRows returns the indices of rows flagged for the report,
// partitioned by category, preserving source order.
func (n *Normalizer) selectRows(table *PropertyTable) (lease, sale []int) {
	for row := 0; row < table.Len(); row++ {
		if !table.Included(row) {
			continue
		}
		switch table.Category(row) {
		case domain.CategoryForLease:
			lease = append(lease, row)
		case domain.CategoryForSale:
			sale = append(sale, row)
		}
	}
	return lease, sale
}

// associateImages assigns extracted images positionally: in extraction
// order, first to every lease row, then to the sale rows. Rows past
// the image supply get none.
func associateImages(images []ExtractedImage, leaseRows, saleRows []int) map[int]*ExtractedImage {
	assigned := make(map[int]*ExtractedImage, len(images))
	next := 0
	for _, rows := range [][]int{leaseRows, saleRows} {
		for _, row := range rows {
			if next >= len(images) {
				return assigned
			}
			assigned[row] = &images[next]
			next++
		}
	}
	return assigned
}

// computeStatistics derives totals, criteria counts and average $/m²
// for all four categories over the whole table, independent of which
// rows get rendered.
func (n *Normalizer) computeStatistics(table *PropertyTable) domain.ReportStatistics {
	var stats domain.ReportStatistics
	for _, category := range domain.Categories {
		slot := stats.ByCategory(category)

		var sum float64
		var parsed int
		for row := 0; row < table.Len(); row++ {
			if table.Category(row) != category {
				continue
			}
			slot.Total++
			if !table.Included(row) {
				continue
			}
			slot.Criteria++
			if v, ok := ParseAmount(table.Value(row, domain.FieldPricePerSqm)); ok {
				sum += v
				parsed++
			}
		}
		if parsed > 0 {
			// Round half-up, matching the displayed dollar figures.
			slot.AvgPricePerSqm = int(math.Round(sum / float64(parsed)))
		}

		n.logger.Debug("category statistics",
			slog.String("category", string(category)),
			slog.Int("total", slot.Total),
			slog.Int("criteria", slot.Criteria),
			slog.Int("avg_price_per_sqm", slot.AvgPricePerSqm))
	}
	return stats
}

// extractProperty resolves one qualifying row into its display form.
func (n *Normalizer) extractProperty(table *PropertyTable, row int, category domain.Category, img *ExtractedImage) domain.NormalizedProperty {
	priceField := domain.FieldLeasePrice
	if category == domain.CategoryForSale {
		priceField = domain.FieldListedPrice
	}
	price := notDisclosed
	if raw := table.Value(row, priceField); raw != "" {
		price = FormatPrice(raw)
	}

	p := domain.NormalizedProperty{
		Suburb:        table.Value(row, domain.FieldSuburb),
		SuburbDisplay: TitleCase(table.Value(row, domain.FieldSuburb)),
		Address:       TitleCase(table.Value(row, domain.FieldAddress)),
		Price:         price,
		FloorArea:     fallback(table.Value(row, domain.FieldFloorSize), notDisclosed),
		CarSpaces:     fallback(table.Value(row, domain.FieldCarSpaces), "-"),
		Zoning:        fallback(table.Value(row, domain.FieldZoning), notSpecified),
		PropertyType:  fallback(table.Value(row, domain.FieldPropertyType), "Commercial"),
		Comment:       table.Value(row, domain.FieldComment),
	}
	if img != nil {
		p.ImageData = img.Data
		p.ImageFormat = img.Format
	}
	return p
}
