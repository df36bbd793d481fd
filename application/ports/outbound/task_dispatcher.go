package outbound

// TaskDispatcher abstracts the bounded worker pool. Submit returns an error
// when the pool cannot accept more work.
type TaskDispatcher interface {
	Submit(task func()) error
}
