package dom

import (
	"sync"

	"github.com/andybalholm/cascadia"
)

// Compiled selectors are cached; delegated event streams match the same
// selector on every dispatch.
var (
	selMu   sync.RWMutex
	selVals = map[string]cascadia.SelectorGroup{}
)

func compile(selector string) (cascadia.SelectorGroup, error) {
	selMu.RLock()
	sel, ok := selVals[selector]
	selMu.RUnlock()
	if ok {
		return sel, nil
	}
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, err
	}
	selMu.Lock()
	selVals[selector] = sel
	selMu.Unlock()
	return sel, nil
}

// Matches reports whether the node matches the CSS selector.
// An invalid selector matches nothing.
func (nd *Node) Matches(selector string) bool {
	sel, err := compile(selector)
	if err != nil {
		return false
	}
	return sel.Match(nd.n)
}

// Find returns the first node in this subtree (self included, depth-first)
// matching the selector, or nil.
func (nd *Node) Find(selector string) *Node {
	if nd.Matches(selector) {
		return nd
	}
	for _, c := range nd.children {
		if m := c.Find(selector); m != nil {
			return m
		}
	}
	return nil
}
