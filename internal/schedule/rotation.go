package schedule

// rotation is a fixed-size queue of ad indices that only ever rotates left.
// Rotating moves the head offset instead of shifting the slice.
type rotation struct {
	order []int
	head  int
}

func newRotation(order []int) *rotation {
	return &rotation{order: order}
}

// front returns the ad index at the head of the queue
func (r *rotation) front() int {
	return r.order[r.head]
}

// rotate moves the head to the tail
func (r *rotation) rotate() {
	r.head = (r.head + 1) % len(r.order)
}

func (r *rotation) len() int { return len(r.order) }
