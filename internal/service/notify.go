package service

type notification struct {
	snap Snapshot
	ev   Event
	obs  Observer
}

// notifier hands scheduled tick changes to the observer on its own
// goroutine. It holds at most one pending notification; a newer one
// replaces it, so the observer always catches up to the latest state.
type notifier struct {
	pending chan notification
}

func newNotifier() *notifier {
	n := &notifier{pending: make(chan notification, 1)}
	go n.run()
	return n
}

func (n *notifier) run() {
	for msg := range n.pending {
		msg.obs(msg.snap, msg.ev)
	}
}

// post never blocks. Callers must serialize post and close.
func (n *notifier) post(msg notification) {
	select {
	case n.pending <- msg:
		return
	default:
	}
	select {
	case <-n.pending:
	default:
	}
	n.pending <- msg
}

func (n *notifier) close() {
	close(n.pending)
}
