package bot

import "testing"

func TestEscapeMarkdown(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a_b", `a\_b`},
		{"1+1=2!", `1\+1\=2\!`},
		{"[link](url)", `\[link\]\(url\)`},
		{"Test #5 (Final)", `Test \#5 \(Final\)`},
		{"a.b-c", `a\.b\-c`},
	}
	for _, tc := range cases {
		if got := escapeMarkdown(tc.in); got != tc.want {
			t.Errorf("escapeMarkdown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUnixToIST(t *testing.T) {
	// 1700000000 UTC = 2023-11-14 22:13:20 UTC = 2023-11-15 03:43 IST.
	if got := unixToIST(1700000000); got != "15 November 2023, 03:43 AM" {
		t.Errorf("unixToIST = %q", got)
	}
	if got := unixToIST(0); got != "01 January 1970, 05:30 AM" {
		t.Errorf("epoch = %q", got)
	}
}

func TestStateManager(t *testing.T) {
	sm := newStateManager()
	if st := sm.get(1); st != stateNone {
		t.Fatalf("fresh manager state = %q", st)
	}
	sm.set(1, stateAwaitCode)
	if st := sm.get(1); st != stateAwaitCode {
		t.Fatalf("state = %q, want %q", st, stateAwaitCode)
	}
	sm.clear(1)
	if st := sm.get(1); st != stateNone {
		t.Fatalf("cleared state = %q", st)
	}
}
