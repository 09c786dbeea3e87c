// Package workers runs the client's background workers. The only worker
// today is the periodic contact refresh; the Workers aggregate keeps the
// wiring uniform so further workers can be added next to it.
package workers

// Worker is implemented by every background worker the client runs.
// Run starts the worker's execution; implementations either block for the
// duration of their work or spawn goroutines internally, the way the
// refresh worker hands off to its ticker goroutine.
type Worker interface {
	Run()
}
