package route

// Edge is a directed connection between two nodes.
type Edge struct {
	From string
	To   string
}

// Adjacency maps a node to its outgoing neighbors.
type Adjacency map[string][]string

// Partition splits the outgoing edges of every route node into edges whose
// destination is also on the route ("on-path") and edges that leave it
// ("additional"). Additional edges are capped at maxPerNode per source node
// to limit clutter on dense graphs; a cap of zero drops them entirely.
// Duplicate edges are emitted once.
func Partition(nodes []string, adj Adjacency, maxPerNode int) (onPath, additional []Edge) {
	onRoute := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		onRoute[n] = struct{}{}
	}

	seen := make(map[Edge]struct{})
	visited := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := visited[n]; dup {
			continue
		}
		visited[n] = struct{}{}

		extras := 0
		for _, nb := range adj[n] {
			e := Edge{From: n, To: nb}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}

			if _, ok := onRoute[nb]; ok {
				onPath = append(onPath, e)
			} else if extras < maxPerNode {
				additional = append(additional, e)
				extras++
			}
		}
	}
	return onPath, additional
}
