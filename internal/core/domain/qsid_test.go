package domain

import "testing"

func TestNextQSID_Monotonic(t *testing.T) {
	prev := ""
	want := []string{"Q-001", "Q-002", "Q-003", "Q-004"}
	for _, w := range want {
		got := NextQSID(prev)
		if got != w {
			t.Fatalf("NextQSID(%q) = %q, want %q", prev, got, w)
		}
		prev = got
	}
}

func TestNextQSID_FromExisting(t *testing.T) {
	if got := NextQSID("Q-042"); got != "Q-043" {
		t.Fatalf("NextQSID(Q-042) = %q, want Q-043", got)
	}
}

func TestNextQSID_WidthGrowsPast999(t *testing.T) {
	if got := NextQSID("Q-999"); got != "Q-1000" {
		t.Fatalf("NextQSID(Q-999) = %q, want Q-1000", got)
	}
	if got := NextQSID("Q-1000"); got != "Q-1001" {
		t.Fatalf("NextQSID(Q-1000) = %q, want Q-1001", got)
	}
}

func TestNextQSID_MalformedRestartsSequence(t *testing.T) {
	for _, prev := range []string{"garbage", "Q-", "Q--5", "Q-12x", "B-007"} {
		if got := NextQSID(prev); got != "Q-001" {
			t.Fatalf("NextQSID(%q) = %q, want Q-001", prev, got)
		}
	}
}

func TestParseSeqID(t *testing.T) {
	if n := ParseSeqID(QSIDPrefix, "Q-1000"); n != 1000 {
		t.Fatalf("ParseSeqID(Q-1000) = %d, want 1000", n)
	}
	if n := ParseSeqID(BSIDPrefix, "B-007"); n != 7 {
		t.Fatalf("ParseSeqID(B-007) = %d, want 7", n)
	}
	if n := ParseSeqID(QSIDPrefix, "Q--3"); n != 0 {
		t.Fatalf("negative numeric part should parse as 0, got %d", n)
	}
}
