// Package domain models rows of the public incident-report dataset.
//
// # Data Source
//
// The dataset is a flat CSV extract published by the reporting agency, one
// row per recorded incident. The analyze command downloads the current
// extract over HTTP (or reads a local copy) and hands the rows here for
// cleaning. Only a handful of columns participate in the analysis; the rest
// are dropped during cleaning.
//
// # Column Conventions
//
// Date:
//
//	ISO calendar date, "2006-01-02". Rows with a blank or malformed date
//	are dropped (and counted) because every downstream grouping keys on
//	the calendar month. Month keys are the English three-letter
//	abbreviations "Jan".."Dec", resolved through a fixed lookup table.
//
// Age bracket:
//
//	One of "0-17", "18-24", "25-34", "35-44", "45-54", "55-64", "65+".
//	Brackets map to fixed numeric midpoints (the open-ended "65+" bracket
//	uses 72) so the injury regression has a numeric predictor. Unknown or
//	blank brackets keep the row but sit out the regression.
//
// Injuries / Fatalities:
//
//	Non-negative integers; blank means zero (unreported). Negative values
//	indicate a corrupt row and drop it.
//
// # ID Generation
//
// Rows missing the source incident_id get a deterministic SHA-256-derived ID
// from the row's key fields, so repeated runs over the same extract label
// rows identically. See generateID.
package domain
