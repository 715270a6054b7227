// Package report composes the final paginated PDF from a normalized
// report model.
//
// The document structure is fixed: cover page, map page with the
// statistics table, FOR LEASE listing pages (three properties per
// page), FOR SALE listing pages, and a closing next-steps page. All
// drawing goes through the fpdf rendering engine; this package only
// decides what lands where.
package report
