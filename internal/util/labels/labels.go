package labels

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoValidLabels is returned when an input list contains no usable
// key=value entry at all.
var ErrNoValidLabels = errors.New("no valid key=value labels found")

// Parse converts a comma-separated key=value list into a label map.
//
// Each entry must contain exactly one '=' separating a non-empty key
// from a value; the value may be empty. Malformed entries are skipped
// so that one typo does not invalidate the rest of the list, but an
// input that yields no valid entry is rejected.
func Parse(input string) (map[string]string, error) {
	set := make(map[string]string)
	for _, entry := range strings.Split(input, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Count(entry, "=") != 1 {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		if key == "" {
			continue
		}
		set[key] = value
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoValidLabels, input)
	}
	return set, nil
}

// Format renders a label map back to the comma-separated key=value
// form with keys sorted, suitable for summaries and config files.
func Format(set map[string]string) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, k+"="+set[k])
	}
	return strings.Join(entries, ",")
}

// Merge copies all entries of extra into a copy of base and returns it.
// Neither input map is mutated.
func Merge(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
