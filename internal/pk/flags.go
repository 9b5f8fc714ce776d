package pk

import (
	"fmt"
	"strings"

	"github.com/conn-castle/click-backend/internal/messages"
)

// TransactionFlags is the bitfield the daemon passes with every modifying role.
type TransactionFlags uint

// Transaction flag bits.
const (
	FlagOnlyTrusted TransactionFlags = 1 << iota
	FlagSimulate
	FlagOnlyDownload
)

// FlagNone is the textual form of an empty bitfield.
const FlagNone = "none"

var flagNames = []struct {
	flag TransactionFlags
	name string
}{
	{FlagOnlyTrusted, "only-trusted"},
	{FlagSimulate, "simulate"},
	{FlagOnlyDownload, "only-download"},
}

// ParseTransactionFlags parses a ";"-joined list of flag names.
// An empty string and "none" both yield an empty bitfield.
func ParseTransactionFlags(raw string) (TransactionFlags, error) {
	var flags TransactionFlags
	for _, part := range strings.Split(raw, PackageIDDelim) {
		part = strings.TrimSpace(part)
		if part == "" || part == FlagNone {
			continue
		}
		found := false
		for _, entry := range flagNames {
			if entry.name == part {
				flags |= entry.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf(messages.DispatchUnknownFlagFmt, part)
		}
	}
	return flags, nil
}

// Has reports whether every bit in flag is set.
func (f TransactionFlags) Has(flag TransactionFlags) bool {
	return f&flag == flag
}

// String renders the bitfield the way the daemon does.
func (f TransactionFlags) String() string {
	var names []string
	for _, entry := range flagNames {
		if f.Has(entry.flag) {
			names = append(names, entry.name)
		}
	}
	if len(names) == 0 {
		return FlagNone
	}
	return strings.Join(names, PackageIDDelim)
}
