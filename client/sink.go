package client

// Sink is the append-only message sink bound to one attribute during
// fragment execution. A fragment reports failure by adding messages; an
// untouched sink means the check passed.
type Sink struct {
	msgs []string
}

// Add appends failure messages.
func (s *Sink) Add(msgs ...string) {
	s.msgs = append(s.msgs, msgs...)
}

// Messages returns the recorded messages in insertion order.
func (s *Sink) Messages() []string {
	if len(s.msgs) == 0 {
		return nil
	}
	out := make([]string, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// Empty reports whether nothing was recorded.
func (s *Sink) Empty() bool { return len(s.msgs) == 0 }
