package syncs

// Semaphore guards a resource with a fixed number of slots. The engine
// uses a one-slot semaphore to enforce its single-writer heap discipline.
type Semaphore chan bool

func NewSemaphore(n int) Semaphore {
	return make(chan bool, n)
}

func (s Semaphore) Acquire() {
	s <- true
}

func (s Semaphore) Release() {
	<-s
}
