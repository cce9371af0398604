package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Sequential reference prefixes. QSIDs and BSIDs share the same format:
// prefix, dash, decimal number zero-padded to at least three digits.
const (
	QSIDPrefix = "Q-"
	BSIDPrefix = "B-"
)

// ParseSeqID extracts the numeric part of a sequential reference such as
// "Q-042". Anything unparseable yields 0, which restarts the sequence at 1 on
// the next allocation; the field is display-only, so best-effort recovery
// beats a hard error.
func ParseSeqID(prefix, id string) int64 {
	n, err := strconv.ParseInt(strings.TrimPrefix(id, prefix), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FormatSeqID renders a sequence number with its prefix, zero-padded to three
// digits. Width grows naturally past 999.
func FormatSeqID(prefix string, n int64) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}

// NextQSID returns the quote reference that follows prev, or "Q-001" when
// prev is empty or malformed.
func NextQSID(prev string) string {
	return FormatSeqID(QSIDPrefix, ParseSeqID(QSIDPrefix, prev)+1)
}
