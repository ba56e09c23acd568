package surf

import (
	"context"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/phaux/surf/dom"
	"github.com/phaux/surf/lib/stream"
)

// RenderFunc is the embedder-supplied renderer: it realizes a view against
// the element's shadow root.
type RenderFunc func(root *dom.Node, view templ.Component) error

// RenderHTML is the default renderer: it renders the templ component to HTML
// and replaces the shadow root's content with it.
func RenderHTML(root *dom.Node, view templ.Component) error {
	var b strings.Builder
	if err := view.Render(context.Background(), &b); err != nil {
		return err
	}
	return root.SetHTML(b.String())
}

// Scheduler defers one unit of work to the next tick. The returned cancel
// drops the pending work if it has not run yet.
//
// The default scheduler uses the process timer, which runs the deferred work
// on its own goroutine. Embedders with a UI loop should supply a scheduler
// that funnels work back onto it.
type Scheduler interface {
	Schedule(fn func()) (cancel func())
}

type timerScheduler struct{}

func (timerScheduler) Schedule(fn func()) (cancel func()) {
	t := time.AfterFunc(time.Millisecond, fn)
	return func() { t.Stop() }
}

// RenderOption configures a render sink.
type RenderOption func(*renderSink)

// WithScheduler replaces the debounce scheduler. Tests use a manual
// scheduler to make flushes deterministic.
func WithScheduler(s Scheduler) RenderOption {
	return func(r *renderSink) {
		r.sched = s
	}
}

type renderSink struct {
	el      *Element
	root    *dom.Node
	fn      RenderFunc
	sched   Scheduler
	pending func() // cancel for the scheduled flush, nil when idle
	latest  templ.Component
}

// Render returns a debounced sink of views. The shadow root is attached if
// absent. Each push cancels any pending render and schedules a new one, so a
// synchronous burst collapses into exactly one renderer invocation with the
// last pushed view; no render ever runs for a superseded view.
//
// A nil fn renders with RenderHTML. Renderer and upstream errors are
// reported, and the sink stays usable for subsequent pushes.
//
// The sink is not safe for concurrent use: the default scheduler runs the
// flush on a timer goroutine, so pushes from more than one goroutine need a
// Scheduler that funnels the flush onto the pushing context (see
// WithScheduler).
func (el *Element) Render(fn RenderFunc, opts ...RenderOption) stream.Sink[templ.Component] {
	r := el.newRenderSink(fn, opts)
	return stream.Sink[templ.Component]{
		Next:  r.push,
		Error: r.fail,
	}
}

// RenderNow is the immediate variant of Render: every pushed view invokes the
// renderer synchronously, with no coalescing.
func (el *Element) RenderNow(fn RenderFunc) stream.Sink[templ.Component] {
	r := el.newRenderSink(fn, nil)
	return stream.Sink[templ.Component]{
		Next:  r.renderView,
		Error: r.fail,
	}
}

func (el *Element) newRenderSink(fn RenderFunc, opts []RenderOption) *renderSink {
	if fn == nil {
		fn = RenderHTML
	}
	r := &renderSink{
		el:    el,
		root:  el.node.AttachShadow(),
		fn:    fn,
		sched: timerScheduler{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *renderSink) push(view templ.Component) {
	r.latest = view
	if r.pending != nil {
		r.pending()
	}
	r.pending = r.sched.Schedule(r.flush)
}

func (r *renderSink) flush() {
	r.pending = nil
	r.renderView(r.latest)
}

func (r *renderSink) renderView(view templ.Component) {
	if err := r.fn(r.root, view); err != nil {
		Report("render", r.el.label, err)
	}
}

func (r *renderSink) fail(err error) {
	Report("render", r.el.label, err)
}
