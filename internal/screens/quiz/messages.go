package quiz

// autoAdvanceMsg fires when the reveal delay ends. It carries the machine
// generation at the time of the reveal.
type autoAdvanceMsg struct {
	generation uint64
}
