package todo

// pendingSet counts in-flight requests per todo ID. An ID stays busy until
// every request on it has settled.
type pendingSet map[int]int

func (p pendingSet) add(id int) {
	p[id]++
}

func (p pendingSet) release(id int) {
	if p[id] <= 1 {
		delete(p, id)
		return
	}
	p[id]--
}

func (p pendingSet) has(id int) bool {
	return p[id] > 0
}
