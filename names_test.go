package surf

import "testing"

func TestPropertyName(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expect string
	}{
		{"kebab", "my-attr", "myAttr"},
		{"underscore is a word char", "my_attr", "my_attr"},
		{"dot separator", "my.attr", "myAttr"},
		{"already camel", "myAttr", "myAttr"},
		{"plain", "count", "count"},
		{"multiple separators", "my-long-attr", "myLongAttr"},
		{"leading separator", "-attr", "Attr"},
		{"digits", "attr-2b", "attr2b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PropertyName(tt.in); got != tt.expect {
				t.Errorf("PropertyName(%q) = %q, want %q", tt.in, got, tt.expect)
			}
		})
	}
}

func TestAttributeName(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expect string
	}{
		{"camel", "myAttr", "my-attr"},
		{"multi capital", "myLongAttr", "my-long-attr"},
		{"leading capital", "Count", "count"},
		{"leading capital camel", "MyAttr", "my-attr"},
		{"plain", "count", "count"},
		{"already kebab", "my-attr", "my-attr"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttributeName(tt.in); got != tt.expect {
				t.Errorf("AttributeName(%q) = %q, want %q", tt.in, got, tt.expect)
			}
		})
	}
}

func TestEventName(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		expect string
	}{
		{"camel", "myAttr", "myattr"},
		{"kebab", "my-attr", "myattr"},
		{"plain", "count", "count"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EventName(tt.in); got != tt.expect {
				t.Errorf("EventName(%q) = %q, want %q", tt.in, got, tt.expect)
			}
		})
	}
}

func TestNameRoundTrip(t *testing.T) {
	// Property and attribute spellings are inverses for conventional
	// camelCase names.
	names := []string{"count", "myAttr", "myLongAttr"}
	for _, prop := range names {
		if got := PropertyName(AttributeName(prop)); got != prop {
			t.Errorf("PropertyName(AttributeName(%q)) = %q, want %q", prop, got, prop)
		}
	}
}
