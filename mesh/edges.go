package mesh

import "sort"

// hexEdges lists the 12 edges of a hex element as local (0-based) node
// index pairs: the 4 bottom edges, 4 top edges, then 4 verticals.
var hexEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
}

// EdgePairs returns the unique unordered edge set of elements, as
// ascending (min,max) node-id pairs sorted in lexicographic order.
func EdgePairs(elements []Element) [][2]uint32 {
	seen := make(map[[2]uint32]bool)
	for _, el := range elements {
		for _, e := range hexEdges {
			a, b := el.Nodes[e[0]], el.Nodes[e[1]]
			if a > b {
				a, b = b, a
			}
			seen[[2]uint32{a, b}] = true
		}
	}
	out := make([][2]uint32, 0, len(seen))
	for pair := range seen {
		out = append(out, pair)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}
