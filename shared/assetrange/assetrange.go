// Package assetrange parses and formats the free-text asset-ID range
// strings operators attach to allocations, e.g. "12-18", "dept/004" or
// "12-15, 20". The strings are audit text, not capacity accounting, so
// parsing is lenient: malformed tokens are skipped, never fatal.
package assetrange

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const separator = ", "

// Parse expands a comma-separated range string into the ordered list of
// asset numbers it names. Tokens are "N", "N-M" or "prefix/N"; anything
// else is dropped.
func Parse(rangeStr string) []int {
	ids := []int{}

	for token := range strings.SplitSeq(rangeStr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		// "dept/004" style tokens carry the number after the last slash.
		if idx := strings.LastIndex(token, "/"); idx >= 0 {
			token = token[idx+1:]
		}

		low, high, ok := parseToken(token)
		if !ok {
			log.Debug().Str("token", token).Msg("skipping malformed asset range token")

			continue
		}

		for id := low; id <= high; id++ {
			ids = append(ids, id)
		}
	}

	return ids
}

// Format renders asset numbers back into the canonical range string,
// collapsing consecutive runs: [12,13,14,15,20] -> "12-15, 20".
func Format(ids []int) string {
	if len(ids) == 0 {
		return ""
	}

	parts := []string{}
	start, prev := ids[0], ids[0]

	flush := func() {
		if start == prev {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, strconv.Itoa(start)+"-"+strconv.Itoa(prev))
		}
	}

	for _, id := range ids[1:] {
		if id == prev+1 {
			prev = id

			continue
		}

		flush()
		start, prev = id, id
	}

	flush()

	return strings.Join(parts, separator)
}

// Append joins two range fragments with the canonical separator,
// tolerating either side being empty. This is string concatenation, not
// interval union: overlapping fragments stay as written.
func Append(existing, fragment string) string {
	if fragment == "" {
		return existing
	}

	if existing == "" {
		return fragment
	}

	return existing + separator + fragment
}

func parseToken(token string) (low, high int, ok bool) {
	if lowStr, highStr, found := strings.Cut(token, "-"); found {
		low, err := strconv.Atoi(strings.TrimSpace(lowStr))
		if err != nil {
			return 0, 0, false
		}

		high, err := strconv.Atoi(strings.TrimSpace(highStr))
		if err != nil || high < low {
			return 0, 0, false
		}

		return low, high, true
	}

	id, err := strconv.Atoi(token)
	if err != nil {
		return 0, 0, false
	}

	return id, id, true
}
