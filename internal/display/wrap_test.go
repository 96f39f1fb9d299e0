package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWrap(t *testing.T) {
	long := strings.Repeat("adventurer ", 20)

	for _, line := range strings.Split(Wrap(long), "\n") {
		if len(line) > DefaultWidth {
			t.Errorf("line longer than %d columns: %q", DefaultWidth, line)
		}
	}

	testutil.AssertEqual(t, "short text untouched", Wrap("hello"), "hello")
	testutil.AssertEqual(t, "existing breaks kept", Wrap("a\nb"), "a\nb")
}

func TestCapitalize(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   string
	}{
		"lowercase":   {input: "alice", exp: "Alice"},
		"capitalized": {input: "Alice", exp: "Alice"},
		"single rune": {input: "a", exp: "A"},
		"multibyte":   {input: "ülrich", exp: "Ülrich"},
		"empty":       {input: "", exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "output", Capitalize(tt.input), tt.exp)
		})
	}
}
