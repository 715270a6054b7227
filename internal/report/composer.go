package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"busireport/pkg/contracts/domain"
)

// Report palette, carried over from the brand style guide.
var (
	colorOrange    = [3]int{235, 150, 91}
	colorBlue      = [3]int{62, 91, 162}
	colorLightGrey = [3]int{242, 242, 242}
)

const (
	pageWidth    = 210.0 // A4 portrait, mm
	pageHeight   = 297.0
	pageMargin   = 12.7
	footerHeight = 12.0
	// propertiesPerPage is fixed by the layout; the last page may hold
	// fewer.
	propertiesPerPage = 3
)

// Composer turns a ReportModel into the branded PDF document. It holds
// only immutable presentation configuration and is safe for concurrent
// use; all per-run state lives in the page builder.
type Composer struct {
	assetsDir string
	logger    *slog.Logger
}

// NewComposer creates a composer reading static assets (logos,
// watermarks, icons, map) from assetsDir.
func NewComposer(assetsDir string, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{
		assetsDir: assetsDir,
		logger:    logger.With(slog.String("component", "composer")),
	}
}

// Compose renders the full document to outputPath. The page sequence
// is fixed: cover, statistics, FOR LEASE listings, FOR SALE listings,
// next steps.
func (c *Composer) Compose(model *domain.ReportModel, req domain.ReportRequest, brand Brand, outputPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)

	b := &builder{
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		composer: c,
		brand:    brand,
		req:      req,
	}

	b.coverPage()
	b.statisticsPage(&model.Statistics)
	b.listingPages("FOR LEASE", model.ForLease)
	b.listingPages("FOR SALE", model.ForSale)
	b.nextStepsPage()

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return &RenderError{Err: err}
	}

	c.logger.Info("report composed",
		slog.String("brand", brand.Key),
		slog.String("output", outputPath),
		slog.Int("for_lease", len(model.ForLease)),
		slog.Int("for_sale", len(model.ForSale)))
	return nil
}

// asset returns the absolute path of a static asset, or "" when the
// file is absent. Missing assets degrade to blank space, matching the
// soft-failure policy for presentation resources.
func (c *Composer) asset(name string) string {
	path := filepath.Join(c.assetsDir, name)
	if _, err := os.Stat(path); err != nil {
		c.logger.Warn("static asset not found", slog.String("asset", name))
		return ""
	}
	return path
}

// builder holds the per-run drawing state.
type builder struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	composer *Composer
	brand    Brand
	req      domain.ReportRequest
	imageSeq int
}

func (b *builder) asset(name string) string { return b.composer.asset(name) }

func (b *builder) setColor(set func(int, int, int), c [3]int) {
	set(c[0], c[1], c[2])
}

// contentPage starts a page carrying the shared decorations: the brand
// watermark behind the content and the blue website footer band.
func (b *builder) contentPage() {
	b.pdf.AddPage()

	if wm := b.asset(b.brand.Watermark); wm != "" {
		b.pdf.SetAlpha(0.06, "Normal")
		b.pdf.ImageOptions(wm, 0, 0, pageWidth, pageHeight, false,
			fpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}, 0, "")
		b.pdf.SetAlpha(1, "Normal")
	}

	b.setColor(b.pdf.SetFillColor, colorBlue)
	b.pdf.Rect(0, pageHeight-footerHeight, pageWidth, footerHeight, "F")
	b.pdf.SetTextColor(255, 255, 255)
	b.pdf.SetFont("Helvetica", "", 10)
	b.pdf.SetXY(0, pageHeight-footerHeight+3.5)
	b.pdf.CellFormat(pageWidth, 5, b.tr(b.brand.Website), "", 0, "C", false, 0, "")
	b.pdf.SetXY(pageMargin, pageMargin)
}

// pageHeader draws the standard content-page header: left title,
// centered date, brand logo on the right, and the orange rule below.
func (b *builder) pageHeader(title string) {
	b.setColor(b.pdf.SetTextColor, colorBlue)
	b.pdf.SetFont("Helvetica", "B", 16)
	b.pdf.SetXY(pageMargin, pageMargin)
	b.pdf.CellFormat(65, 16, b.tr(title), "", 0, "L", false, 0, "")

	b.pdf.SetFont("Helvetica", "", 16)
	b.pdf.CellFormat(60, 16, b.tr(b.req.ReportDate), "", 0, "C", false, 0, "")

	if logo := b.asset(b.brand.LogoFile); logo != "" {
		b.pdf.ImageOptions(logo, pageWidth-pageMargin-26, pageMargin, 26, 15, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	b.divider(colorOrange, 0.95, pageMargin+18)
	b.pdf.SetY(pageMargin + 24)
}

// divider draws a horizontal rule of the given color at y, spanning
// the given fraction of the page width, centered.
func (b *builder) divider(c [3]int, widthFrac, y float64) {
	w := pageWidth * widthFrac
	b.setColor(b.pdf.SetFillColor, c)
	b.pdf.Rect((pageWidth-w)/2, y, w, 2.5, "F")
}

// nextImageName returns a unique registration name for an in-memory
// property image.
func (b *builder) nextImageName() string {
	b.imageSeq++
	return fmt.Sprintf("property_image_%d", b.imageSeq)
}
