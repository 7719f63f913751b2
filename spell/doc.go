// Package spell implements the spellchecking engine: word tokenization,
// dictionary-backed correctness testing, and similarity-ranked correction
// suggestions.
//
// The engine is synchronous and single-owner. A Checker scans a whole
// buffer on demand and holds the resulting ordered misspelling list;
// suggestions are computed lazily per misspelling, ranked against a
// word-popularity corpus that is separate from the correctness dictionary.
package spell
