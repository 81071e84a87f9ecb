// Package encode renders a model.Map as canonical BMS source.
//
// Output layout:
//   - DFHMSD header, continued onto a second line
//   - DFHMDI header and optional TITLE comment
//   - one DFHMDF statement per field, sorted by (line, column)
//   - DFHMSD TYPE=FINAL and END
//
// Every physical line fits in 71 columns. Statements that do not are
// continued with '*' in column 72 and resumed in column 16; quoted literals
// longer than a line are split and resumed verbatim.
package encode
