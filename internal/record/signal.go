package record

// SignalKind selects what a control signal asks the writer to do.
type SignalKind int

const (
	// Flush forces buffered sink writes to complete.
	Flush SignalKind = iota
	// Stop restores the terminal and ends the writer.
	Stop
)

func (k SignalKind) String() string {
	switch k {
	case Flush:
		return "flush"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Signal is an out-of-band instruction for the writer.
type Signal struct {
	Kind SignalKind
	// Done, when non-nil, is closed once the writer has handled the signal.
	Done chan struct{}
}

func (*Signal) isMessage() {}

// NewSignal returns a signal with an acknowledgement channel.
func NewSignal(kind SignalKind) *Signal {
	return &Signal{Kind: kind, Done: make(chan struct{})}
}

// Ack closes Done if present.
func (s *Signal) Ack() {
	if s.Done != nil {
		close(s.Done)
	}
}
