package docprep

import "time"

// Summary is the processing manifest written after each run.
type Summary struct {
	ProcessedAt       time.Time         `json:"processed_at"`
	TotalDocuments    int               `json:"total_documents"`
	TotalChunks       int               `json:"total_chunks"`
	Categories        map[Category]int  `json:"categories"`
	SourceFolders     []string          `json:"source_folders"`
	Documents         []DocumentSummary `json:"documents"`
	DuplicateChunkIDs int               `json:"duplicate_chunk_ids"`
	Skipped           []SkippedFile     `json:"skipped,omitempty"`
}

// DocumentSummary describes one persisted document.
type DocumentSummary struct {
	Index        int      `json:"index"`
	File         string   `json:"file"`
	Original     string   `json:"original"`
	Title        string   `json:"title"`
	Category     Category `json:"category"`
	Chunks       int      `json:"chunks"`
	Complexity   float64  `json:"complexity"`
	Dependencies []string `json:"dependencies"`
	SourceFolder string   `json:"source_folder"`
}

// SkippedFile records an input that produced no document.
type SkippedFile struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// RootFolder names the input directory itself in source folder listings.
const RootFolder = "root"
