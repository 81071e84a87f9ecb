// Package diagnostic provides structured errors, warnings and notes produced
// while decoding and validating BMS maps.
//
// Key capabilities:
//   - Validation violations with the map and field they concern
//   - Decoder notes tied to a source line (skipped directives, dropped fields)
//   - "did you mean" suggestions for misspelled keywords
//   - A plain message list for callers that only display violations
package diagnostic
