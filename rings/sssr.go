// SSSR perception via per-bond shortest cycles with greedy basis selection.
package rings

import (
	"sort"
	"strconv"
	"strings"

	"github.com/molgraph/nomen/molecule"
)

// SSSR computes a Smallest Set of Smallest Rings for m.
// The result is deterministic: candidate cycles are ordered by length,
// then by canonical signature, and selected greedily until the cyclomatic
// rank of each component is satisfied.
func SSSR(m *molecule.Molecule) []molecule.Ring {
	// 1) Compute the target ring count: bonds − atoms + components.
	rank := cyclomaticRank(m)
	if rank <= 0 {
		return nil
	}

	// 2) For every bond, find the shortest cycle passing through it.
	var candidates []molecule.Ring
	seen := make(map[string]struct{})
	for _, b := range m.Bonds() {
		ring, ok := shortestCycleThrough(m, b)
		if !ok {
			continue // bridge bond, no cycle
		}
		sig := ringSignature(ring)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		candidates = append(candidates, ring)
	}

	// 3) Order candidates by (length, signature) for deterministic output.
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i]) != len(candidates[j]) {
			return len(candidates[i]) < len(candidates[j])
		}
		return ringSignature(candidates[i]) < ringSignature(candidates[j])
	})

	// 4) Greedily keep rings that cover at least one uncovered bond,
	//    stopping once the rank is reached.
	covered := make(map[[2]int]struct{})
	var out []molecule.Ring
	for _, ring := range candidates {
		if len(out) == rank {
			break
		}
		fresh := false
		for i := range ring {
			k := bondKey(ring[i], ring[(i+1)%len(ring)])
			if _, ok := covered[k]; !ok {
				fresh = true
				break
			}
		}
		if !fresh {
			continue
		}
		for i := range ring {
			covered[bondKey(ring[i], ring[(i+1)%len(ring)])] = struct{}{}
		}
		out = append(out, ring)
	}

	return out
}

// cyclomaticRank returns bonds − atoms + connected components.
func cyclomaticRank(m *molecule.Molecule) int {
	ids := m.AtomIDs()
	seen := make(map[int]bool, len(ids))
	components := 0
	for _, start := range ids {
		if seen[start] {
			continue
		}
		components++
		queue := []int{start}
		seen[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range m.Neighbors(cur) {
				if !seen[nb] {
					seen[nb] = true
					queue = append(queue, nb)
				}
			}
		}
	}
	return m.NumBonds() - m.NumAtoms() + components
}

// shortestCycleThrough finds the shortest cycle containing bond b by
// removing b and running BFS from one endpoint to the other.
func shortestCycleThrough(m *molecule.Molecule, b molecule.Bond) (molecule.Ring, bool) {
	parent := map[int]int{b.To: 0}
	queue := []int{b.To}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b.From {
			break
		}
		for _, nb := range m.Neighbors(cur) {
			// Skip the removed bond itself.
			if (cur == b.To && nb == b.From) || (cur == b.From && nb == b.To) {
				continue
			}
			if _, visited := parent[nb]; !visited {
				parent[nb] = cur
				queue = append(queue, nb)
			}
		}
	}
	if _, reached := parent[b.From]; !reached {
		return nil, false
	}

	// Reconstruct the b.To → b.From path; closing it through b gives the cycle.
	var path []int
	for cur := b.From; cur != 0; cur = parent[cur] {
		path = append(path, cur)
	}
	// path runs From..To; the implicit From–To bond closes the ring.
	return molecule.Ring(path), true
}

// ringSignature produces a rotation- and direction-invariant key for a ring:
// the lexicographically minimal rotation over both traversal directions.
func ringSignature(r molecule.Ring) string {
	n := len(r)
	best := ""
	for dir := 0; dir < 2; dir++ {
		for start := 0; start < n; start++ {
			var sb strings.Builder
			for k := 0; k < n; k++ {
				idx := (start + k) % n
				if dir == 1 {
					idx = (start - k%n + n*n) % n
				}
				sb.WriteString(strconv.Itoa(r[idx]))
				sb.WriteByte(',')
			}
			if best == "" || sb.String() < best {
				best = sb.String()
			}
		}
	}
	return best
}

func bondKey(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}
