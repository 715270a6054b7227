package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"busireport/pkg/contracts/domain"
)

// coverPage draws the branded title page: logo, background art, the
// three-line title block on blue, the date badge, and the
// website/email footer.
func (b *builder) coverPage() {
	b.pdf.AddPage()

	if logo := b.asset(b.brand.LogoFile); logo != "" {
		b.pdf.ImageOptions(logo, (pageWidth-50)/2, pageMargin, 50, 30, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	artTop := pageMargin + 34
	if art := b.asset("title_page_background.png"); art != "" {
		b.pdf.ImageOptions(art, pageMargin, artTop, pageWidth-2*pageMargin, 100, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	b.divider(colorOrange, 1, artTop+102)

	// Blue block with the three title lines and the date badge.
	blockTop := artTop + 106
	blockHeight := pageHeight - blockTop - pageMargin
	b.setColor(b.pdf.SetFillColor, colorBlue)
	b.pdf.Rect(0, blockTop, pageWidth, blockHeight, "F")

	b.pdf.SetTextColor(255, 255, 255)
	b.pdf.SetFont("Helvetica", "B", 36)
	b.pdf.SetXY(0, blockTop+12)
	b.pdf.CellFormat(pageWidth, 14, b.tr(b.brand.FirstLine), "", 2, "C", false, 0, "")
	b.pdf.SetFont("Helvetica", "", 28)
	b.pdf.CellFormat(pageWidth, 12, b.tr(b.req.SecondLine), "", 2, "C", false, 0, "")
	b.pdf.CellFormat(pageWidth, 12, b.tr(b.req.ThirdLine), "", 2, "C", false, 0, "")

	// Date badge on orange.
	badgeWidth := pageWidth * 0.4
	badgeY := b.pdf.GetY() + 8
	b.setColor(b.pdf.SetFillColor, colorOrange)
	b.pdf.Rect((pageWidth-badgeWidth)/2, badgeY, badgeWidth, 10, "F")
	b.pdf.SetFont("Helvetica", "", 14)
	b.pdf.SetXY((pageWidth-badgeWidth)/2, badgeY+2)
	b.pdf.CellFormat(badgeWidth, 6, b.tr(b.req.ReportDate), "", 0, "C", false, 0, "")

	// Website and email at the foot of the blue block.
	b.pdf.SetFont("Helvetica", "", 10)
	if icon := b.asset("global_icon.png"); icon != "" {
		b.pdf.ImageOptions(icon, pageWidth/2-30, pageHeight-pageMargin-16, 7, 7, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}
	b.pdf.SetXY(0, pageHeight-pageMargin-15)
	b.pdf.CellFormat(pageWidth, 5, b.tr(b.brand.Website), "", 2, "C", false, 0, "")
	b.pdf.CellFormat(pageWidth, 5, b.tr(b.brand.Email), "", 0, "C", false, 0, "")
}

// statisticsPage draws the map page with the four-category statistics
// table.
func (b *builder) statisticsPage(stats *domain.ReportStatistics) {
	b.contentPage()
	title := fmt.Sprintf("%s & SURROUNDS (%s)",
		strings.ToUpper(b.req.ThirdLine), strings.ToUpper(b.req.ReportDate))
	b.pageHeader(title)

	if m := b.asset("template_map.png"); m != "" {
		b.pdf.ImageOptions(m, (pageWidth-165)/2, b.pdf.GetY(), 165, 90, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}
	b.pdf.SetY(b.pdf.GetY() + 96)

	labelWidth, dataWidth, rowHeight := 52.0, 38.0, 16.0
	tableWidth := labelWidth + 3*dataWidth
	left := (pageWidth - tableWidth) / 2

	// Header row on orange.
	b.setColor(b.pdf.SetFillColor, colorOrange)
	b.pdf.SetTextColor(255, 255, 255)
	b.pdf.SetFont("Helvetica", "B", 10)
	y := b.pdf.GetY()
	b.pdf.SetXY(left, y)
	b.pdf.CellFormat(labelWidth, rowHeight, b.tr(b.req.ThirdLine), "1", 0, "CM", true, 0, "")
	b.pdf.CellFormat(dataWidth, rowHeight, b.tr("For Lease/Sale last 12 months to "+b.req.ReportDate), "1", 0, "CM", true, 0, "")
	b.pdf.CellFormat(dataWidth, rowHeight, b.tr("Meet Criteria & Available"), "1", 0, "CM", true, 0, "")
	b.pdf.CellFormat(dataWidth, rowHeight, b.tr("$/m² (average)"), "1", 1, "CM", true, 0, "")

	rows := []struct {
		label string
		stats domain.CategoryStats
		// emphasize marks the rows whose criteria cell gets the orange
		// outline treatment when the count is positive.
		emphasize bool
	}{
		{"Sites Available For Lease", stats.ForLease, true},
		{"Leased (last 12 mths)", stats.AlreadyLeased, false},
		{"Sites Available For Sale", stats.ForSale, true},
		{"Sold (last 12 mths)", stats.Sold, false},
	}

	for _, row := range rows {
		b.pdf.SetX(left)
		b.setColor(b.pdf.SetFillColor, colorLightGrey)
		b.setColor(b.pdf.SetTextColor, colorBlue)
		b.pdf.SetFont("Helvetica", "B", 10)
		b.pdf.CellFormat(labelWidth, rowHeight, b.tr(row.label), "1", 0, "CM", true, 0, "")

		b.pdf.SetFont("Helvetica", "", 10)
		b.pdf.CellFormat(dataWidth, rowHeight, fmt.Sprintf("%d", row.stats.Total), "1", 0, "CM", false, 0, "")
		b.criteriaCell(dataWidth, rowHeight, row.stats.Criteria, row.emphasize)
		b.pdf.CellFormat(dataWidth, rowHeight, fmt.Sprintf("$%d", row.stats.AvgPricePerSqm), "1", 1, "CM", false, 0, "")
	}

	b.pdf.Ln(6)
	b.pdf.SetFont("Helvetica", "I", 8)
	b.pdf.SetTextColor(128, 128, 128)
	b.pdf.SetX(left)
	b.pdf.CellFormat(tableWidth, 5, b.tr("*Rate reflects type of comparable properties"), "", 1, "C", false, 0, "")
}

// criteriaCell draws a meets-criteria cell, outlined in orange when the
// count is positive on an emphasized row.
func (b *builder) criteriaCell(w, h float64, count int, emphasize bool) {
	if emphasize && count > 0 {
		b.setColor(b.pdf.SetDrawColor, colorOrange)
		b.pdf.SetLineWidth(0.8)
		b.pdf.CellFormat(w, h, fmt.Sprintf("%d", count), "1", 0, "CM", false, 0, "")
		b.pdf.SetLineWidth(0.2)
		b.pdf.SetDrawColor(0, 0, 0)
		return
	}
	b.pdf.CellFormat(w, h, fmt.Sprintf("%d", count), "1", 0, "CM", false, 0, "")
}

// listingPages renders the section's properties three to a page, with
// an alternating divider between consecutive entries on the same page
// and never after the last one.
func (b *builder) listingPages(sectionTitle string, properties []domain.NormalizedProperty) {
	if len(properties) == 0 {
		return
	}

	for _, chunk := range chunkProperties(properties) {
		b.contentPage()
		b.pageHeader(sectionTitle)

		for i := range chunk {
			b.propertyEntry(sectionTitle, &chunk[i])
			if i < len(chunk)-1 {
				dividerColor := colorBlue
				if i%2 == 1 {
					dividerColor = colorOrange
				}
				y := b.pdf.GetY() + 4
				b.divider(dividerColor, 0.9, y)
				b.pdf.SetY(y + 7)
			}
		}
	}
}

// chunkProperties splits a section's properties into page-sized
// groups of propertiesPerPage; the last group may be smaller.
func chunkProperties(properties []domain.NormalizedProperty) [][]domain.NormalizedProperty {
	var pages [][]domain.NormalizedProperty
	for start := 0; start < len(properties); start += propertiesPerPage {
		end := start + propertiesPerPage
		if end > len(properties) {
			end = len(properties)
		}
		pages = append(pages, properties[start:end])
	}
	return pages
}

// propertyEntry draws one listing: suburb heading, LEASE/SALE
// subheading, the iconed detail lines on the left and the photo (or
// placeholder) on the right.
func (b *builder) propertyEntry(sectionTitle string, p *domain.NormalizedProperty) {
	top := b.pdf.GetY()

	b.setColor(b.pdf.SetTextColor, colorBlue)
	b.pdf.SetFont("Helvetica", "B", 16)
	b.pdf.SetXY(pageMargin, top)
	b.pdf.CellFormat(120, 8, b.tr(p.Suburb), "", 2, "L", false, 0, "")

	subheading := "SALE"
	if sectionTitle == "FOR LEASE" {
		subheading = "LEASE"
	}
	b.pdf.SetFont("Helvetica", "", 14)
	b.pdf.CellFormat(120, 7, subheading, "", 2, "L", false, 0, "")

	detailTop := b.pdf.GetY() + 1
	b.propertyImage(p, detailTop)

	details := []struct {
		icon, text string
		orange     bool
	}{
		{"address_icon.png", fmt.Sprintf("Address: %s, %s", p.Address, p.SuburbDisplay), true},
		{"floor_area_icon.png", fmt.Sprintf("Floor Area: %sm²", p.FloorArea), false},
		{"price_icon.png", "Price: " + p.Price, false},
		{"zoning_icon.png", "Zoning: " + p.Zoning, false},
		{"type_icon.png", "Type: " + p.PropertyType, false},
		{"car_spaces_icon.png", "Car Spaces: " + p.CarSpaces, false},
	}
	if p.Comment != "" {
		details = append(details, struct {
			icon, text string
			orange     bool
		}{"comment_icon.png", "Comments: " + p.Comment, false})
	}

	y := detailTop
	for _, d := range details {
		if icon := b.asset(d.icon); icon != "" {
			b.pdf.ImageOptions(icon, pageMargin, y, 5, 5, false,
				fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		}
		if d.orange {
			b.setColor(b.pdf.SetTextColor, colorOrange)
			b.pdf.SetFont("Helvetica", "B", 10)
		} else {
			b.setColor(b.pdf.SetTextColor, colorBlue)
			b.pdf.SetFont("Helvetica", "", 10)
		}
		b.pdf.SetXY(pageMargin+7, y)
		b.pdf.MultiCell(118, 5, b.tr(d.text), "", "L", false)
		y = b.pdf.GetY() + 1
	}

	// Keep a consistent entry footprint regardless of detail count.
	if bottom := detailTop + 42; y < bottom {
		y = bottom
	}
	b.pdf.SetY(y)
}

// fpdf handles these image formats natively; anything else falls back
// to the placeholder.
var renderableFormats = map[string]string{
	"png":  "PNG",
	"jpeg": "JPG",
	"gif":  "GIF",
}

func (b *builder) propertyImage(p *domain.NormalizedProperty, top float64) {
	const imgWidth, imgHeight = 52.0, 39.0
	x := pageWidth - pageMargin - imgWidth

	imageType, ok := renderableFormats[p.ImageFormat]
	if p.HasImage() && ok {
		name := b.nextImageName()
		b.pdf.RegisterImageOptionsReader(name,
			fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(p.ImageData))
		b.pdf.ImageOptions(name, x, top, imgWidth, imgHeight, false,
			fpdf.ImageOptions{ImageType: imageType}, 0, "")
		return
	}

	b.setColor(b.pdf.SetFillColor, colorLightGrey)
	b.pdf.Rect(x, top, imgWidth, imgHeight, "F")
	b.setColor(b.pdf.SetTextColor, colorBlue)
	b.pdf.SetFont("Helvetica", "", 10)
	b.pdf.SetXY(x, top+imgHeight/2-3)
	b.pdf.CellFormat(imgWidth, 6, "No Image Available", "", 0, "C", false, 0, "")
}

// nextStepsPage draws the closing boilerplate page.
func (b *builder) nextStepsPage() {
	b.contentPage()
	b.pageHeader("")

	b.pdf.SetY(b.pdf.GetY() + 24)
	b.setColor(b.pdf.SetTextColor, colorBlue)
	b.pdf.SetFont("Helvetica", "B", 24)
	b.pdf.CellFormat(pageWidth-2*pageMargin, 10, "NEXT STEPS:", "", 1, "C", false, 0, "")
	b.pdf.Ln(16)

	b.pdf.SetFont("Helvetica", "", 12)
	b.pdf.MultiCell(pageWidth-2*pageMargin, 6,
		b.tr("• Please advise your review of the preferred sites (via markup) noting the pros and cons to assist in evaluation of these for further exploration."),
		"", "C", false)
	b.pdf.Ln(8)
	b.pdf.MultiCell(pageWidth-2*pageMargin, 6,
		b.tr(fmt.Sprintf("• %s will then review this evaluation in collaboration with you to determine which sites are to be explored in depth.", b.brand.Name)),
		"", "C", false)
}
