// Von Baeyer analysis of polycyclic ring systems (P-23): main ring,
// main bridge, secondary bridges, and the numbering candidates those
// choices admit.
package naming

import (
	"fmt"
	"sort"

	"github.com/molgraph/nomen/molecule"
)

// Bridge is one von Baeyer bridge: the two attachment atoms plus the
// interior path between them (empty for a direct fusion bond).
type Bridge struct {
	// Ends are the attachment atom IDs.
	Ends [2]int

	// Interior lists the bridge's own atoms in path order, Ends[0] side
	// first.
	Interior []int
}

// VonBaeyer is the decomposed skeleton of a polycyclic ring system.
type VonBaeyer struct {
	// RingCount is the cyclomatic rank of the system (the N of N-cyclo).
	RingCount int

	// MainRing lists the longest cycle's atoms in cyclic order.
	MainRing []int

	// MainBridge is the longest bridge joining two main-ring atoms.
	MainBridge Bridge

	// Secondary lists the remaining bridges, longest first.
	Secondary []Bridge
}

// Fused reports whether every bridge is a direct bond (ortho-fusion only).
func (vb *VonBaeyer) Fused() bool {
	if len(vb.MainBridge.Interior) > 0 {
		return false
	}
	for _, b := range vb.Secondary {
		if len(b.Interior) > 0 {
			return false
		}
	}
	return true
}

// analyzeVonBaeyer decomposes the induced subgraph on atoms into main
// ring, main bridge, and secondary bridges.
func analyzeVonBaeyer(m *molecule.Molecule, atoms []int) (*VonBaeyer, error) {
	set := make(map[int]bool, len(atoms))
	for _, id := range atoms {
		set[id] = true
	}
	adj := inducedAdjacency(m, set)

	bondCount := 0
	for _, nbs := range adj {
		bondCount += len(nbs)
	}
	bondCount /= 2
	rank := bondCount - len(atoms) + 1

	main := longestCycle(atoms, adj)
	if len(main) < 3 {
		return nil, fmt.Errorf("%w: ring system has no cycle", ErrNoParent)
	}

	bridges := extractBridges(adj, set, main)
	mainBridge, secondary := splitMainBridge(bridges, main)

	return &VonBaeyer{
		RingCount:  rank,
		MainRing:   main,
		MainBridge: mainBridge,
		Secondary:  secondary,
	}, nil
}

// inducedAdjacency builds the sorted neighbor lists of the subgraph.
func inducedAdjacency(m *molecule.Molecule, set map[int]bool) map[int][]int {
	adj := make(map[int][]int, len(set))
	for id := range set {
		for _, nb := range m.Neighbors(id) {
			if set[nb] {
				adj[id] = append(adj[id], nb)
			}
		}
		sort.Ints(adj[id])
	}
	return adj
}

// longestCycle enumerates simple cycles anchored at their minimum atom
// and returns the longest (first found at maximal length, which the
// sorted iteration makes deterministic).
func longestCycle(atoms []int, adj map[int][]int) []int {
	sorted := append([]int(nil), atoms...)
	sort.Ints(sorted)

	var best []int
	var path []int
	on := map[int]bool{}

	var dfs func(start, cur int)
	dfs = func(start, cur int) {
		path = append(path, cur)
		on[cur] = true
		for _, nb := range adj[cur] {
			if nb == start && len(path) >= 3 {
				if len(path) > len(best) {
					best = append([]int(nil), path...)
				}
				continue
			}
			// Anchoring at the cycle's minimum atom avoids re-finding each
			// cycle 2n times.
			if nb > start && !on[nb] {
				dfs(start, nb)
			}
		}
		delete(on, cur)
		path = path[:len(path)-1]
	}

	for _, s := range sorted {
		path = path[:0]
		dfs(s, s)
	}
	return best
}

// extractBridges peels bridge paths off the non-main-ring atoms, then
// collects leftover fusion bonds as zero-length bridges.
func extractBridges(adj map[int][]int, set map[int]bool, main []int) []Bridge {
	covered := make(map[int]bool, len(main))
	for _, id := range main {
		covered[id] = true
	}
	remaining := make(map[int]bool)
	for id := range set {
		if !covered[id] {
			remaining[id] = true
		}
	}

	var bridges []Bridge
	for len(remaining) > 0 {
		path, ends, ok := longestBridgePath(adj, covered, remaining)
		if !ok {
			// Should not happen in a ring system; bail out rather than spin.
			break
		}
		bridges = append(bridges, Bridge{Ends: ends, Interior: path})
		for _, id := range path {
			covered[id] = true
			delete(remaining, id)
		}
	}

	// Leftover bonds between covered atoms that belong to neither the main
	// ring nor an extracted path are fusion bonds: zero-length bridges.
	accounted := accountedEdges(main, bridges)
	var ids []int
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, a := range ids {
		for _, b := range adj[a] {
			if a >= b {
				continue
			}
			if _, ok := accounted[edgeKey(a, b)]; ok {
				continue
			}
			bridges = append(bridges, Bridge{Ends: [2]int{a, b}})
			accounted[edgeKey(a, b)] = struct{}{}
		}
	}
	return bridges
}

// longestBridgePath finds the longest simple path through remaining atoms
// whose endpoints each touch a covered atom, together with the chosen
// attachment pair.
func longestBridgePath(adj map[int][]int, covered, remaining map[int]bool) ([]int, [2]int, bool) {
	var starts []int
	for id := range remaining {
		starts = append(starts, id)
	}
	sort.Ints(starts)

	var bestPath []int
	var bestEnds [2]int
	found := false

	var path []int
	on := map[int]bool{}

	consider := func() {
		startCov := coveredNeighbor(adj, covered, path[0], -1)
		if startCov == 0 {
			return
		}
		endCov := coveredNeighbor(adj, covered, path[len(path)-1], startCov)
		if endCov == 0 {
			if len(path) == 1 {
				return // single atom needs two distinct attachments
			}
			endCov = coveredNeighbor(adj, covered, path[len(path)-1], -1)
			if endCov == 0 {
				return
			}
		}
		if !found || len(path) > len(bestPath) ||
			(len(path) == len(bestPath) && lessSeq(path, bestPath)) {
			bestPath = append([]int(nil), path...)
			// Ends stay in path direction: Ends[0] attaches to path[0],
			// Ends[1] to the last atom, keeping the Interior contract.
			bestEnds = [2]int{startCov, endCov}
			found = true
		}
	}

	var dfs func(cur int)
	dfs = func(cur int) {
		path = append(path, cur)
		on[cur] = true
		consider()
		for _, nb := range adj[cur] {
			if remaining[nb] && !on[nb] {
				dfs(nb)
			}
		}
		delete(on, cur)
		path = path[:len(path)-1]
	}

	for _, s := range starts {
		if coveredNeighbor(adj, covered, s, -1) == 0 {
			continue
		}
		dfs(s)
	}
	return bestPath, bestEnds, found
}

// coveredNeighbor returns the smallest covered neighbor of id other than
// skip, or 0.
func coveredNeighbor(adj map[int][]int, covered map[int]bool, id, skip int) int {
	for _, nb := range adj[id] {
		if covered[nb] && nb != skip {
			return nb
		}
	}
	return 0
}

func lessSeq(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// accountedEdges collects every edge used by the main ring or a bridge.
func accountedEdges(main []int, bridges []Bridge) map[[2]int]struct{} {
	acc := make(map[[2]int]struct{})
	n := len(main)
	for i := 0; i < n; i++ {
		acc[edgeKey(main[i], main[(i+1)%n])] = struct{}{}
	}
	for _, br := range bridges {
		if len(br.Interior) == 0 {
			acc[edgeKey(br.Ends[0], br.Ends[1])] = struct{}{}
			continue
		}
		acc[edgeKey(br.Ends[0], br.Interior[0])] = struct{}{}
		for i := 0; i+1 < len(br.Interior); i++ {
			acc[edgeKey(br.Interior[i], br.Interior[i+1])] = struct{}{}
		}
		acc[edgeKey(br.Interior[len(br.Interior)-1], br.Ends[1])] = struct{}{}
	}
	return acc
}

func edgeKey(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// splitMainBridge picks the main bridge (longest with both ends on the
// main ring) and sorts the rest longest-first.
func splitMainBridge(bridges []Bridge, main []int) (Bridge, []Bridge) {
	onMain := make(map[int]bool, len(main))
	for _, id := range main {
		onMain[id] = true
	}

	mainIdx := -1
	for i, br := range bridges {
		if !onMain[br.Ends[0]] || !onMain[br.Ends[1]] {
			continue
		}
		if mainIdx == -1 || betterBridge(br, bridges[mainIdx]) {
			mainIdx = i
		}
	}
	if mainIdx == -1 && len(bridges) > 0 {
		// Degenerate layout; take the longest bridge overall.
		mainIdx = 0
		for i := 1; i < len(bridges); i++ {
			if betterBridge(bridges[i], bridges[mainIdx]) {
				mainIdx = i
			}
		}
	}

	var mainBridge Bridge
	var secondary []Bridge
	for i, br := range bridges {
		if i == mainIdx {
			mainBridge = br
		} else {
			secondary = append(secondary, br)
		}
	}
	sort.SliceStable(secondary, func(i, j int) bool { return betterBridge(secondary[i], secondary[j]) })
	return mainBridge, secondary
}

func betterBridge(a, b Bridge) bool {
	if len(a.Interior) != len(b.Interior) {
		return len(a.Interior) > len(b.Interior)
	}
	if a.Ends[0] != b.Ends[0] {
		return a.Ends[0] < b.Ends[0]
	}
	return a.Ends[1] < b.Ends[1]
}

// orders generates the von Baeyer numbering candidates: each choice of
// first bridgehead and (for equal arcs) arc order yields one atom order.
// Bridgeheads take the lowest locants, the longer arc is numbered first,
// then the main bridge from the first-bridgehead side, then secondary
// bridges longest-first, each from its lower-numbered attachment.
func (vb *VonBaeyer) orders() [][]int {
	bhA, bhB := vb.MainBridge.Ends[0], vb.MainBridge.Ends[1]
	arcsAB := ringArcs(vb.MainRing, bhA, bhB)
	if arcsAB == nil {
		// Fallback bridgeheads off the main ring: a single deterministic
		// order (main ring as found, then bridges).
		return [][]int{vb.flatOrder()}
	}

	var out [][]int
	for _, bh := range [][2]int{{bhA, bhB}, {bhB, bhA}} {
		arcs := ringArcs(vb.MainRing, bh[0], bh[1])
		firstSecond := [][2][]int{{arcs[0], arcs[1]}}
		if len(arcs[1]) > len(arcs[0]) {
			firstSecond = [][2][]int{{arcs[1], arcs[0]}}
		} else if len(arcs[0]) == len(arcs[1]) {
			firstSecond = append(firstSecond, [2][]int{arcs[1], arcs[0]})
		}
		for _, fs := range firstSecond {
			out = append(out, vb.buildOrder(bh[0], bh[1], fs[0], fs[1]))
		}
	}
	return out
}

// ringArcs splits the main ring at atoms a and b into the two interior
// arcs, each ordered walking away from a. Returns nil if a or b is not on
// the ring.
func ringArcs(ring []int, a, b int) *[2][]int {
	ia, ib := -1, -1
	for i, id := range ring {
		if id == a {
			ia = i
		}
		if id == b {
			ib = i
		}
	}
	if ia == -1 || ib == -1 {
		return nil
	}
	n := len(ring)
	var arc1, arc2 []int
	for i := (ia + 1) % n; i != ib; i = (i + 1) % n {
		arc1 = append(arc1, ring[i])
	}
	for i := (ia - 1 + n) % n; i != ib; i = (i - 1 + n) % n {
		arc2 = append(arc2, ring[i])
	}
	return &[2][]int{arc1, arc2}
}

// buildOrder lays out one complete numbering: bh1, long arc, bh2, short
// arc back, main bridge interior, then secondary bridge interiors.
func (vb *VonBaeyer) buildOrder(bh1, bh2 int, arcFirst, arcSecond []int) []int {
	order := make([]int, 0, vbSize(vb))
	order = append(order, bh1)
	order = append(order, arcFirst...)
	order = append(order, bh2)
	// The second arc runs back toward bh1: reverse its away-from-bh1 order.
	for i := len(arcSecond) - 1; i >= 0; i-- {
		order = append(order, arcSecond[i])
	}

	loc := make(map[int]int, len(order))
	for i, id := range order {
		loc[id] = i + 1
	}

	appendBridge := func(br Bridge) {
		interior := append([]int(nil), br.Interior...)
		// Number from the lower-locant attachment inward.
		if loc[br.Ends[1]] < loc[br.Ends[0]] {
			for i, j := 0, len(interior)-1; i < j; i, j = i+1, j-1 {
				interior[i], interior[j] = interior[j], interior[i]
			}
		}
		for _, id := range interior {
			order = append(order, id)
			loc[id] = len(order)
		}
	}

	appendBridge(vb.MainBridge)
	for _, br := range vb.Secondary {
		appendBridge(br)
	}
	return order
}

// flatOrder is the degenerate-layout fallback ordering.
func (vb *VonBaeyer) flatOrder() []int {
	order := append([]int(nil), vb.MainRing...)
	seen := make(map[int]bool, len(order))
	for _, id := range order {
		seen[id] = true
	}
	add := func(ids []int) {
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				order = append(order, id)
			}
		}
	}
	add(vb.MainBridge.Interior)
	for _, br := range vb.Secondary {
		add(br.Interior)
	}
	return order
}

func vbSize(vb *VonBaeyer) int {
	n := len(vb.MainRing) + len(vb.MainBridge.Interior)
	for _, br := range vb.Secondary {
		n += len(br.Interior)
	}
	return n
}
