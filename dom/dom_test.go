package dom

import (
	"strings"
	"testing"
)

func TestAttributes(t *testing.T) {
	n := New("div")

	if got := n.Attr("id"); got.Present {
		t.Fatalf("Attr on fresh node = %+v, want absent", got)
	}

	n.SetAttr("id", "a")
	if got := n.Attr("id"); !got.Present || got.Text != "a" {
		t.Errorf("Attr = %+v, want present \"a\"", got)
	}

	n.SetAttr("id", "b")
	if got := n.Attr("id"); got.Text != "b" {
		t.Errorf("Attr = %+v, want \"b\"", got)
	}

	n.RemoveAttr("id")
	if got := n.Attr("id"); got.Present {
		t.Errorf("Attr after removal = %+v, want absent", got)
	}
}

func TestWatchAttrs(t *testing.T) {
	n := New("div")

	type change struct {
		name       string
		prev, next AttrValue
	}
	var changes []change
	remove := n.WatchAttrs(func(name string, prev, next AttrValue) {
		changes = append(changes, change{name, prev, next})
	})

	n.SetAttr("x", "1")
	n.SetAttr("x", "2")
	n.RemoveAttr("x")
	n.RemoveAttr("x") // absent, no notification

	want := []change{
		{"x", AttrValue{}, AttrValue{Text: "1", Present: true}},
		{"x", AttrValue{Text: "1", Present: true}, AttrValue{Text: "2", Present: true}},
		{"x", AttrValue{Text: "2", Present: true}, AttrValue{}},
	}
	if len(changes) != len(want) {
		t.Fatalf("changes = %d, want %d", len(changes), len(want))
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change[%d] = %+v, want %+v", i, changes[i], want[i])
		}
	}

	remove()
	n.SetAttr("x", "3")
	if len(changes) != len(want) {
		t.Error("watcher fired after removal")
	}
}

func TestTreeLinks(t *testing.T) {
	parent := New("div")
	child := New("span")
	parent.Append(child)

	if child.Parent() != parent {
		t.Error("child parent link missing")
	}
	if len(parent.Children()) != 1 || parent.Children()[0] != child {
		t.Error("parent child list wrong")
	}

	child.Remove()
	if child.Parent() != nil || len(parent.Children()) != 0 {
		t.Error("Remove did not detach")
	}
	child.Remove() // detached, no-op
}

func TestDispatchBubbles(t *testing.T) {
	outer := New("div")
	mid := New("p")
	inner := New("b")
	outer.Append(mid)
	mid.Append(inner)

	var order []string
	for _, n := range []*Node{inner, mid, outer} {
		tag := n.Tag()
		n.AddListener("click", func(*Event) { order = append(order, tag) })
	}

	inner.Dispatch(NewEvent("click", nil))

	want := "b,p,div"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("delivery order = %q, want %q", got, want)
	}
}

func TestDispatchStopPropagation(t *testing.T) {
	outer := New("div")
	inner := New("b")
	outer.Append(inner)

	var outerSeen bool
	inner.AddListener("click", func(e *Event) { e.StopPropagation() })
	outer.AddListener("click", func(*Event) { outerSeen = true })

	inner.Dispatch(NewEvent("click", nil))
	if outerSeen {
		t.Error("event bubbled past StopPropagation")
	}
}

func TestDispatchDefaultPrevented(t *testing.T) {
	n := New("a")
	n.AddListener("click", func(e *Event) { e.PreventDefault() })

	if n.Dispatch(NewEvent("click", nil)) {
		t.Error("Dispatch = true, want false when default prevented")
	}
	if n.Dispatch(NewEvent("other", nil)) != true {
		t.Error("Dispatch = false without PreventDefault")
	}
}

func TestDispatchStopsAtShadowRoot(t *testing.T) {
	host := New("x-el")
	root := host.AttachShadow()
	inner := New("button")
	root.Append(inner)

	var hostSeen, rootSeen bool
	host.AddListener("click", func(*Event) { hostSeen = true })
	root.AddListener("click", func(*Event) { rootSeen = true })

	inner.Dispatch(NewEvent("click", nil))

	if !rootSeen {
		t.Error("shadow root did not receive the event")
	}
	if hostSeen {
		t.Error("event escaped the shadow tree")
	}
}

func TestRemoveListener(t *testing.T) {
	n := New("div")
	var count int
	remove := n.AddListener("click", func(*Event) { count++ })

	n.Dispatch(NewEvent("click", nil))
	remove()
	remove() // second removal is a no-op
	n.Dispatch(NewEvent("click", nil))

	if count != 1 {
		t.Errorf("handler calls = %d, want 1", count)
	}
}

func TestAttachShadowIdempotent(t *testing.T) {
	host := New("x-el")
	if host.Shadow() != nil {
		t.Fatal("fresh node has a shadow root")
	}
	first := host.AttachShadow()
	if host.AttachShadow() != first {
		t.Error("AttachShadow created a second root")
	}
	if first.Host() != host {
		t.Error("shadow root host link missing")
	}
}

func TestMatches(t *testing.T) {
	n := New("button")
	n.SetAttr("class", "inc big")
	n.SetAttr("data-id", "7")

	tests := []struct {
		selector string
		expect   bool
	}{
		{"button", true},
		{"button.inc", true},
		{".big", true},
		{"[data-id='7']", true},
		{"a", false},
		{".missing", false},
		{"~~", false}, // invalid selector matches nothing
	}
	for _, tt := range tests {
		if got := n.Matches(tt.selector); got != tt.expect {
			t.Errorf("Matches(%q) = %v, want %v", tt.selector, got, tt.expect)
		}
	}
}

func TestParseAndFind(t *testing.T) {
	n, err := Parse(`<div class="panel"><button class="inc">+</button></div>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n == nil || n.Tag() != "div" {
		t.Fatalf("Parse root = %v", n)
	}

	btn := n.Find("button.inc")
	if btn == nil {
		t.Fatal("Find returned nil")
	}
	if btn.Parent() != n {
		t.Error("parsed tree parent links missing")
	}
}

func TestSetHTMLReplacesContent(t *testing.T) {
	n := New("div")
	if err := n.SetHTML(`<span>a</span>`); err != nil {
		t.Fatalf("SetHTML: %v", err)
	}
	if err := n.SetHTML(`<b>b</b>`); err != nil {
		t.Fatalf("SetHTML: %v", err)
	}

	if n.Find("span") != nil {
		t.Error("old content still attached")
	}
	if got := n.InnerHTML(); got != "<b>b</b>" {
		t.Errorf("InnerHTML = %q, want %q", got, "<b>b</b>")
	}
	if got := n.OuterHTML(); got != "<div><b>b</b></div>" {
		t.Errorf("OuterHTML = %q, want %q", got, "<div><b>b</b></div>")
	}
}

func TestNodeIdentity(t *testing.T) {
	a, b := New("div"), New("div")
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("node IDs not unique: %q vs %q", a.ID(), b.ID())
	}
}
