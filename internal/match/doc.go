// Package match ranks "did you mean" suggestions for misspelled BMS
// keywords by edit distance.
package match
