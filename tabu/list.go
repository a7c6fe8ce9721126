package tabu

// tabuList is a fixed-capacity FIFO of recently entered nodes.
// Push appends and then evicts the oldest entries while the length exceeds
// the capacity, so a capacity of 0 never retains anything.
type tabuList struct {
	capacity int
	items    []string
}

func newTabuList(capacity int) *tabuList {
	return &tabuList{capacity: capacity, items: make([]string, 0, capacity+1)}
}

// Push records id as the most recent entry.
func (l *tabuList) Push(id string) {
	l.items = append(l.items, id)
	for len(l.items) > l.capacity {
		l.items = l.items[1:]
	}
}

// Contains reports whether id is currently tabu. O(capacity).
func (l *tabuList) Contains(id string) bool {
	for _, v := range l.items {
		if v == id {
			return true
		}
	}
	return false
}

// Len returns the number of entries held.
func (l *tabuList) Len() int {
	return len(l.items)
}
