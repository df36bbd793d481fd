package outbound

// TokenProvider yields process-unique tokens for recognition job names.
// Wall-clock time alone is not collision-free under concurrent or rapid
// sequential runs, so implementations must not rely on it.
type TokenProvider interface {
	NewToken() string
}
