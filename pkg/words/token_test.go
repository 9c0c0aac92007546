package words

import (
	"errors"
	"testing"
)

// TestNewToken tests validation of caller-supplied token text.
func TestNewToken(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"plain word", "ok", nil},
		{"punctuation only", "!", nil},
		{"unicode", "café", nil},
		{"empty", "", ErrEmptyToken},
		{"inner space", "a b", ErrTokenContainsSpace},
		{"leading space", " a", ErrTokenContainsSpace},
		{"tab", "a\tb", ErrTokenContainsSpace},
		{"newline", "a\n", ErrTokenContainsSpace},
		{"no-break space", "a\u00a0b", ErrTokenContainsSpace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := NewToken(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if tok.Text() != tt.input {
					t.Errorf("expected text %q, got %q", tt.input, tok.Text())
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			var tokErr *TokenError
			if !errors.As(err, &tokErr) {
				t.Fatalf("expected *TokenError, got %T", err)
			}
			if tokErr.Text != tt.input {
				t.Errorf("expected error text %q, got %q", tt.input, tokErr.Text)
			}
			if !tok.IsZero() {
				t.Errorf("expected zero token on error, got %q", tok)
			}
		})
	}
}

// TestMustToken_Panics tests that the trusted constructor aborts on invalid text.
func TestMustToken_Panics(t *testing.T) {
	for _, input := range []string{"", "a b"} {
		t.Run(input, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %q", input)
				}
			}()
			MustToken(input)
		})
	}
}

// TestToken_Compare tests that tokens compare by content.
func TestToken_Compare(t *testing.T) {
	a, b := MustToken("abc"), MustToken("abd")

	if a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Errorf("expected abc < abd")
	}
	if a.Compare(MustToken("abc")) != 0 {
		t.Errorf("expected equal tokens to compare 0")
	}
	if a != MustToken("abc") {
		t.Errorf("expected tokens with equal text to be ==")
	}
}

// TestToken_Split tests that splitting produces fresh tokens around the cut.
func TestToken_Split(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		pos, n       int
		wantLeading  string
		wantTrailing string
	}{
		{"middle", "dis!das", 3, 1, "dis", "das"},
		{"start", "!dis", 0, 1, "", "dis"},
		{"end", "dis!", 3, 1, "dis", ""},
		{"multi-byte cut", "wait...ok", 4, 3, "wait", "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := MustToken(tt.text)
			leading, trailing := tok.split(tt.pos, tt.n)

			if leading.Text() != tt.wantLeading {
				t.Errorf("expected leading %q, got %q", tt.wantLeading, leading.Text())
			}
			if trailing.Text() != tt.wantTrailing {
				t.Errorf("expected trailing %q, got %q", tt.wantTrailing, trailing.Text())
			}
			if tok.Text() != tt.text {
				t.Errorf("split mutated the original token: %q", tok.Text())
			}
		})
	}
}

// TestPriorities tests the canonical trial order.
func TestPriorities(t *testing.T) {
	want := []Priority{Highest, HighMid, Mid, LowMid, Lowest}
	got := Priorities()

	if len(got) != len(want) {
		t.Fatalf("expected %d priorities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("priority %d: expected %v, got %v", i, want[i], got[i])
		}
		if got[i].index() != i {
			t.Errorf("priority %v: expected index %d, got %d", got[i], i, got[i].index())
		}
	}

	// The returned slice is a copy
	got[0] = Lowest
	if Priorities()[0] != Highest {
		t.Errorf("Priorities returned shared storage")
	}

	if Priority(0).Valid() || Priority(6).Valid() {
		t.Errorf("expected out-of-range priorities to be invalid")
	}
	if Priority(9).String() != "Priority(9)" {
		t.Errorf("unexpected String for invalid priority: %s", Priority(9))
	}
}
