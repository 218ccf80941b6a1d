package render

import "sync"

// taskQueue is an unbounded FIFO whose pop blocks while it is empty.
type taskQueue struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items []task
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *taskQueue) push(t task) {
	q.mu.Lock()
	q.items = append(q.items, t)
	q.mu.Unlock()
	q.cond.Signal()
}

func (q *taskQueue) pop() task {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 {
		q.cond.Wait()
	}
	t := q.items[0]
	q.items[0] = task{}
	q.items = q.items[1:]
	return t
}

func (q *taskQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
