package intvm

type queue struct {
	values []int64
	head   int
}

func (q *queue) push(v int64) {
	if q.head > 0 && q.head == len(q.values) {
		q.values = q.values[:0]
		q.head = 0
	}
	q.values = append(q.values, v)
}

func (q *queue) pop() (int64, bool) {
	if q.head >= len(q.values) {
		return 0, false
	}
	v := q.values[q.head]
	q.head++
	if q.head == len(q.values) {
		q.values = q.values[:0]
		q.head = 0
	}
	return v, true
}

func (q *queue) len() int {
	return len(q.values) - q.head
}

func (q *queue) clear() {
	q.values = q.values[:0]
	q.head = 0
}

func (q *queue) items() []int64 {
	return q.values[q.head:]
}
