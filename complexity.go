package docprep

import "math"

// ComplexityScore combines document length, code density, average chunk size
// and dependency count into a score in [0, 1].
func ComplexityScore(doc *ProcessedDocument) float64 {
	chunks := len(doc.Chunks)
	total := doc.TotalTokens()

	var avg float64
	if chunks > 0 {
		avg = float64(total) / float64(chunks)
	}

	score := float64(total)/10000*0.3 +
		float64(doc.CodeChunks())/float64(max(chunks, 1))*0.3 +
		avg/1000*0.2 +
		float64(len(doc.Dependencies))/10*0.2

	return math.Min(1.0, score)
}
