package minidock

// KeyEvent is one edge-triggered key transition decoded from an input
// report.
type KeyEvent struct {
	Key     int
	Pressed bool
}

// keyStateTracker turns the device's absolute per-key flags into
// transitions. It has no locking; reports must be fed from a single
// goroutine.
type keyStateTracker struct {
	pressed [NumKeys]bool
}

// decode consumes one raw input report and returns the transitions it
// carries, in key order. The first byte of a report is the report ID
// and the last is padding; the six flags in between are absolute
// pressed states, so an unchanged flag produces no event.
func (t *keyStateTracker) decode(report []byte) []KeyEvent {
	if len(report) < inputReportSize {
		return nil
	}

	var events []KeyEvent
	flags := report[keyFlagsOffset : keyFlagsOffset+NumKeys]
	for i, flag := range flags {
		pressed := flag != 0
		if pressed == t.pressed[i] {
			continue
		}
		t.pressed[i] = pressed
		events = append(events, KeyEvent{Key: i, Pressed: pressed})
	}
	return events
}
