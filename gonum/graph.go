// Package gonum builds the document reference graph and orders documents
// using gonum's graph algorithms.
package gonum

import (
	"slices"
	"strings"

	"github.com/fwojciec/docprep"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// ReferenceGraph is a directed graph over a document set. Node IDs are
// indexes into the document slice; an edge A→B means A's content mentions
// B's URL or title.
type ReferenceGraph struct {
	g    *simple.DirectedGraph
	docs []*docprep.ProcessedDocument
}

// NewReferenceGraph adds an edge A→B for every pair of distinct documents
// where B's non-empty URL or non-empty title occurs verbatim in A's
// chunk contents joined with spaces.
func NewReferenceGraph(docs []*docprep.ProcessedDocument) *ReferenceGraph {
	g := simple.NewDirectedGraph()
	for i := range docs {
		g.AddNode(simple.Node(i))
	}

	for i, from := range docs {
		content := from.Content(" ")
		for j, to := range docs {
			if i == j {
				continue
			}
			if mentions(content, to) {
				g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}

	return &ReferenceGraph{g: g, docs: docs}
}

func mentions(content string, doc *docprep.ProcessedDocument) bool {
	if doc.OriginalURL != "" && strings.Contains(content, doc.OriginalURL) {
		return true
	}
	return doc.Title != "" && strings.Contains(content, doc.Title)
}

// References reports whether document i mentions document j.
func (r *ReferenceGraph) References(i, j int) bool {
	return r.g.HasEdgeFromTo(int64(i), int64(j))
}

// Predecessors returns the indexes of documents that mention document i,
// in ascending order.
func (r *ReferenceGraph) Predecessors(i int) []int {
	nodes := graph.NodesOf(r.g.To(int64(i)))
	ids := make([]int, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, int(n.ID()))
	}
	slices.Sort(ids)
	return ids
}

// Subgraph returns the graph induced by the given document indexes.
func (r *ReferenceGraph) Subgraph(ids []int) *simple.DirectedGraph {
	sub := simple.NewDirectedGraph()
	for _, id := range ids {
		sub.AddNode(simple.Node(id))
	}
	for _, from := range ids {
		for _, to := range ids {
			if from != to && r.References(from, to) {
				sub.SetEdge(sub.NewEdge(simple.Node(from), simple.Node(to)))
			}
		}
	}
	return sub
}
