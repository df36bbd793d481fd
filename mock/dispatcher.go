package mock

// SyncDispatcher runs submitted tasks inline on the caller's goroutine.
type SyncDispatcher struct{}

func (SyncDispatcher) Submit(task func()) error {
	task()
	return nil
}
