// Package congress reconciles congressional stock purchase disclosures with
// daily price history.
//
// The core is a short pipeline of pure functions:
//   - Symbol normalization: raw disclosure tickers (e.g. "BRK.B", "DUK$A")
//     are turned into symbols a price provider understands ("BRK-B", "DUK").
//   - Disclosure parsing: comma-delimited records are filtered to purchases
//     of a given year and decoded into immutable [Disclosure] values.
//     Malformed records are reported, never fatal.
//   - Aggregation: disclosures are grouped by filer surname in first-seen
//     order, see [Filers].
//   - Alignment: a disclosure date is matched against a [PriceSeries] with a
//     one hour tolerance, see [Aligner].
//   - Summary: the purchase is compared to the latest close, see
//     [AlignedPurchase].
//
// Fetching prices and descriptions is left to the caller; see the report
// package for the batch that glues everything together, and the cfr command
// for the terminal front-end.
package congress
