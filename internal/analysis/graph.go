package analysis

import "github.com/convolens/convolens/internal/transcript"

// GraphNode is one speaker in the interaction graph.
type GraphNode struct {
	ID string `json:"id"`
}

// GraphLink is a directed turn-taking edge: Value counts transitions from
// Source to Target.
type GraphLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int    `json:"value"`
}

// Graph is the speaker interaction graph, suitable for a force layout.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}

// InteractionGraph walks the transcript in order and counts consecutive
// distinct-speaker transitions. Self-turns create no edges; the graph is not
// symmetrized. Nodes and links are emitted in first-encounter order.
func InteractionGraph(t transcript.Transcript) *Graph {
	type edge struct{ from, to string }

	weights := make(map[edge]int)
	var edgeOrder []edge
	seen := make(map[string]bool)
	var nodes []GraphNode

	last := ""
	for _, m := range t {
		if m.Speaker == "" {
			continue
		}
		if !seen[m.Speaker] {
			seen[m.Speaker] = true
			nodes = append(nodes, GraphNode{ID: m.Speaker})
		}
		if last != "" && last != m.Speaker {
			e := edge{last, m.Speaker}
			if weights[e] == 0 {
				edgeOrder = append(edgeOrder, e)
			}
			weights[e]++
		}
		last = m.Speaker
	}

	links := make([]GraphLink, 0, len(edgeOrder))
	for _, e := range edgeOrder {
		links = append(links, GraphLink{Source: e.from, Target: e.to, Value: weights[e]})
	}

	return &Graph{Nodes: nodes, Links: links}
}
