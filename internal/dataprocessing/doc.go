// Package dataprocessing turns an uploaded property spreadsheet into
// the render-ready report model.
//
// The pipeline has three stages, run in order:
//
//  1. Header validation against the fixed positional schema
//     (validator.go). Column order in the source workbook is a
//     load-bearing contract; validation fails fast on the first
//     mismatch.
//  2. Normalization (normalizer.go): embedded photo extraction from
//     the workbook archive, positional image-to-row association,
//     per-category statistics, and selection of the rows flagged for
//     inclusion.
//  3. The resulting domain.ReportModel is handed to internal/report
//     for PDF composition.
//
// Missing required columns abort the whole run. Per-image failures
// never do; they degrade to "no image" with a log entry.
package dataprocessing
