package input

// Source delivers the input events of one frame. Poll is called once per
// tick; an empty result means nothing happened.
type Source interface {
	Poll() []Event
}

// Queue is a Source fed by hand. Each Push becomes part of the next Poll.
type Queue struct {
	pending []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Push(events ...Event) {
	q.pending = append(q.pending, events...)
}

func (q *Queue) Poll() []Event {
	out := q.pending
	q.pending = nil
	return out
}

// Multi merges several sources, preserving their order within a frame.
type Multi []Source

func (m Multi) Poll() []Event {
	var out []Event
	for _, s := range m {
		if s == nil {
			continue
		}
		out = append(out, s.Poll()...)
	}
	return out
}
