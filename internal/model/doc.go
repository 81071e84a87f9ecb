// Package model defines the in-memory representation of BMS screen maps.
//
// A Project holds Maps; a Map holds an ordered collection of Fields plus the
// mapset-level device metadata (mode, lang, term, ctrl, storage). Field types
// and attributes are closed enums whose String() values are the keywords used
// both in BMS source text and in the project interchange documents.
//
// The package also owns the naming rules shared by the codec:
//   - IsValidName: the BMS symbol rule (letter first, alphanumeric, max 8)
//   - IsAutoName: names synthesized by editors and the decoder
//   - SanitizeName / UniqueFieldName: helpers for deriving names
package model
