package gonum

import (
	"cmp"
	"slices"

	"github.com/fwojciec/docprep"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

// Ensure Sorter implements docprep.Sorter at compile time.
var _ docprep.Sorter = (*Sorter)(nil)

// CycleFunc is called for each category bucket whose references form a cycle.
type CycleFunc func(category docprep.Category, docs []*docprep.ProcessedDocument)

// Sorter assigns dependencies and complexity, then orders documents by
// category priority, complexity and references.
type Sorter struct {
	// OnCycle, if set, reports buckets that kept their baseline order.
	OnCycle CycleFunc
}

// NewSorter creates a new Sorter.
func NewSorter() *Sorter {
	return &Sorter{}
}

// Sort sets Dependencies (file paths of documents that mention each
// document, in input order) and ComplexityScore on every document and
// returns a new slice in emission order.
//
// The baseline order is a stable sort by category rank then ascending
// complexity; unknown categories follow the known ones, grouped by name.
// Each category bucket is then topologically sorted over its induced
// reference subgraph, so that a document precedes the documents it mentions;
// ties keep baseline order. A bucket containing a cycle keeps its
// baseline order. The result depends only on the input order and content.
func (s *Sorter) Sort(docs []*docprep.ProcessedDocument) []*docprep.ProcessedDocument {
	refs := NewReferenceGraph(docs)

	for i, doc := range docs {
		deps := make([]string, 0)
		for _, p := range refs.Predecessors(i) {
			deps = append(deps, docs[p].FilePath)
		}
		doc.Dependencies = deps
		doc.ComplexityScore = docprep.ComplexityScore(doc)
	}

	baseline := make([]int, len(docs))
	for i := range baseline {
		baseline[i] = i
	}
	slices.SortStableFunc(baseline, func(a, b int) int {
		return cmp.Or(
			cmp.Compare(docs[a].Category.Rank(), docs[b].Category.Rank()),
			cmp.Compare(docs[a].Category, docs[b].Category),
			cmp.Compare(docs[a].ComplexityScore, docs[b].ComplexityScore),
		)
	})

	ordered := make([]*docprep.ProcessedDocument, 0, len(docs))
	for _, bucket := range buckets(docs, baseline) {
		for _, id := range s.sortBucket(refs, docs, bucket) {
			ordered = append(ordered, docs[id])
		}
	}
	return ordered
}

// buckets splits the baseline order into runs of equal category.
func buckets(docs []*docprep.ProcessedDocument, baseline []int) [][]int {
	var out [][]int
	for i, id := range baseline {
		if i == 0 || docs[id].Category != docs[baseline[i-1]].Category {
			out = append(out, nil)
		}
		out[len(out)-1] = append(out[len(out)-1], id)
	}
	return out
}

func (s *Sorter) sortBucket(refs *ReferenceGraph, docs []*docprep.ProcessedDocument, bucket []int) []int {
	if len(bucket) < 2 {
		return bucket
	}

	// Rank in the baseline breaks ties between unconstrained documents.
	rank := make(map[int64]int, len(bucket))
	for i, id := range bucket {
		rank[int64(id)] = i
	}
	byBaseline := func(nodes []graph.Node) {
		slices.SortFunc(nodes, func(a, b graph.Node) int {
			return cmp.Compare(rank[a.ID()], rank[b.ID()])
		})
	}

	sorted, err := topo.SortStabilized(refs.Subgraph(bucket), byBaseline)
	if err != nil {
		if s.OnCycle != nil {
			members := make([]*docprep.ProcessedDocument, 0, len(bucket))
			for _, id := range bucket {
				members = append(members, docs[id])
			}
			s.OnCycle(docs[bucket[0]].Category, members)
		}
		return bucket
	}

	ids := make([]int, 0, len(sorted))
	for _, n := range sorted {
		ids = append(ids, int(n.ID()))
	}
	return ids
}
