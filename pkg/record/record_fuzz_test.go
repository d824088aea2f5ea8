package record

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzNewName checks the buffer invariants for arbitrary input.
func FuzzNewName(f *testing.F) {
	seeds := []string{
		"",
		"Alice",
		strings.Repeat("x", 120),
		strings.Repeat("a", 98) + "é",
		"Bob\x00hidden",
		"\xff\xfe\xfd",
		strings.Repeat("\x80", 150),
		strings.Repeat("a", 99) + "\x80zz",
		strings.Repeat("🔑", 40),
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		n := NewName(s)
		got := n.String()

		if n.Len() > MaxNameLen {
			t.Fatalf("stored %d bytes, max is %d", n.Len(), MaxNameLen)
		}
		if n.Bytes()[Capacity-1] != 0 {
			t.Fatal("terminator missing")
		}
		if !strings.HasPrefix(s, got) {
			t.Fatalf("stored name %q is not a prefix of input %q", got, s)
		}
		if strings.IndexByte(s, 0) < 0 && len(s) <= MaxNameLen && got != s {
			t.Fatalf("short input altered: got %q, want %q", got, s)
		}
		if cut := len(got); cut < MaxNameLen && strings.IndexByte(s, 0) < 0 && len(s) > MaxNameLen {
			// only an incomplete trailing sequence may be dropped
			if MaxNameLen-cut >= utf8.UTFMax || !utf8.RuneStart(s[cut]) || utf8.FullRuneInString(s[cut:MaxNameLen]) {
				t.Fatalf("cut at %d drops complete bytes of %q", cut, s[:MaxNameLen])
			}
		}
		if utf8.ValidString(s) && !utf8.ValidString(got) {
			t.Fatalf("valid input produced invalid name %q", got)
		}
	})
}

// FuzzFactoryCreate checks that age passes through and score starts at zero.
func FuzzFactoryCreate(f *testing.F) {
	f.Add("Alice", 30)
	f.Add("", 0)
	f.Add(strings.Repeat("x", 120), -5)

	factory := NewFactory(nil)

	f.Fuzz(func(t *testing.T, name string, age int) {
		p, err := factory.Create(name, age)
		if err != nil {
			t.Fatalf("heap factory failed: %v", err)
		}
		defer p.Release()

		if p.Age != age {
			t.Fatalf("age changed: got %d, want %d", p.Age, age)
		}
		if p.Score != 0 {
			t.Fatalf("score not zero: %v", p.Score)
		}
	})
}
