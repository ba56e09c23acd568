package surf

// loopGuard serializes the re-entrant update paths of one element. It is two
// orthogonal constructs:
//
//   - the process-input flag, false only for the duration of an output
//     endpoint's synchronous write, keeps the attribute bridge and the
//     property setter from re-entering the cell;
//   - the ignored-output set holds attribute names whose cell push originated
//     on the input side, so a subscribed output endpoint does not re-dispatch
//     the matching event.
//
// Both are restored through the returned release functions, which callers run
// via defer so every exit path, panics included, leaves the guard in its
// default state (input allowed, set empty).
type loopGuard struct {
	suspended int
	ignored   map[string]int
}

func newLoopGuard() *loopGuard {
	return &loopGuard{ignored: make(map[string]int)}
}

// suspendInput blocks cell re-entry until release is called.
// Suspensions nest.
func (g *loopGuard) suspendInput() (release func()) {
	g.suspended++
	return func() {
		g.suspended--
	}
}

// inputAllowed reports whether input-side writes may reach the cell.
func (g *loopGuard) inputAllowed() bool {
	return g.suspended == 0
}

// ignoreOutput marks attr as currently being written from the input side.
// Marks nest per attribute name.
func (g *loopGuard) ignoreOutput(attr string) (release func()) {
	g.ignored[attr]++
	return func() {
		g.ignored[attr]--
		if g.ignored[attr] <= 0 {
			delete(g.ignored, attr)
		}
	}
}

// outputIgnored reports whether an output write for attr is an input echo.
func (g *loopGuard) outputIgnored(attr string) bool {
	return g.ignored[attr] > 0
}
