package syncs

// Semaphore bounds concurrency to its capacity.
type Semaphore chan bool

func NewSemaphore(n int) Semaphore {
	return make(chan bool, max(n, 1))
}

func (s Semaphore) Acquire() {
	s <- true
}

func (s Semaphore) Release() {
	<-s
}
