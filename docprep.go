// Package docprep prepares scraped documentation for retrieval. It cleans
// markdown boilerplate, splits documents into overlapping chunks, classifies
// and orders documents by category and cross-references, and emits a flat
// index suitable for embedding and keyword search.
//
// This package contains domain types, interfaces and pure domain logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., yaml/, gonum/,
// sqlite/, gemini/).
package docprep
