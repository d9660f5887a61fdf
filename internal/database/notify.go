package database

import "sync"

// tableNotifier fans out change signals for one table. Signals are coalesced:
// a subscriber that hasn't drained its channel yet will see the pending signal
// cover any number of writes.
type tableNotifier struct {
	mu   sync.Mutex
	subs []chan struct{}
}

// Subscribe returns a channel that receives a signal after every committed
// write to the table.
func (n *tableNotifier) Subscribe() <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan struct{}, 1)
	n.subs = append(n.subs, ch)
	return ch
}

// Notify signals all subscribers without blocking the writer.
func (n *tableNotifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

var (
	planNotifier     tableNotifier
	progressNotifier tableNotifier
)

// PlanChanges returns a change-notification stream for the study_plan table
func PlanChanges() <-chan struct{} {
	return planNotifier.Subscribe()
}

// ProgressChanges returns a change-notification stream for the study_progress table
func ProgressChanges() <-chan struct{} {
	return progressNotifier.Subscribe()
}
