package stream

import (
	"testing"
)

func TestCellHoldsValue(t *testing.T) {
	c := New(5)
	if got := c.Value(); got != 5 {
		t.Errorf("Value = %d, want 5", got)
	}
	c.Set(7)
	if got := c.Value(); got != 7 {
		t.Errorf("Value = %d, want 7", got)
	}
}

func TestListenDoesNotReplay(t *testing.T) {
	c := New(5)
	var got []int
	c.Listen(func(v int) { got = append(got, v) })
	if len(got) != 0 {
		t.Errorf("subscriber called on subscription: %v", got)
	}
}

func TestNotificationOrder(t *testing.T) {
	c := New(0)
	var order []string
	c.Listen(func(int) { order = append(order, "a") })
	c.Listen(func(int) { order = append(order, "b") })
	c.Listen(func(int) { order = append(order, "c") })

	c.Set(1)

	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("notifications = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("notifications = %v, want subscription order %v", order, want)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	c := New(0)
	var count int
	unsub := c.Listen(func(int) { count++ })

	c.Set(1)
	unsub()
	unsub() // second call is a no-op
	c.Set(2)

	if count != 1 {
		t.Errorf("notifications = %d, want 1", count)
	}
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	c := New(0)
	var first, second int
	var unsubSecond func()
	c.Listen(func(int) {
		first++
		unsubSecond()
	})
	unsubSecond = c.Listen(func(int) { second++ })

	// The in-flight delivery still reaches the already-snapshotted
	// subscriber; later pushes do not.
	c.Set(1)
	c.Set(2)

	if first != 2 {
		t.Errorf("first = %d, want 2", first)
	}
	if second != 1 {
		t.Errorf("second = %d, want 1", second)
	}
}

func TestReentrantSet(t *testing.T) {
	c := New(0)
	var seen []int
	c.Listen(func(v int) {
		seen = append(seen, v)
		if v == 1 {
			c.Set(2)
		}
	})

	c.Set(1)

	// The nested push completes before the outer one returns.
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("seen = %v, want [1 2]", seen)
	}
	if got := c.Value(); got != 2 {
		t.Errorf("Value = %d, want 2", got)
	}
}
