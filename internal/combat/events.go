package combat

// Event is one structured trace record emitted during a battle: allocation
// decisions, kills, round summaries. Payload keys are event-specific.
type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// TraceFunc receives trace events. A nil func disables tracing entirely;
// the engine never logs on its own.
type TraceFunc func(Event)

func (f TraceFunc) emit(ev Event) {
	if f != nil {
		f(ev)
	}
}
