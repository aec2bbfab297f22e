package utils

import (
	"strconv"
	"strings"
	"time"
)

const (
	msDatePrefix = "/Date("
	msDateSuffix = ")/"

	// ISO 8601 with a literal Z; the remote API accepts this on date fields.
	ISODateFormat = "2006-01-02T15:04:05Z"
)

// NormalizeDate converts the order management API's proprietary
// "/Date(milliseconds)/" strings to UTC ISO 8601. Values that do not carry
// the proprietary markers (or whose embedded timestamp does not parse) are
// returned unchanged - not every date field is guaranteed to arrive in the
// wrapped form, so passthrough is the fallback rather than an error.
func NormalizeDate(raw string) string {
	if !strings.HasPrefix(raw, msDatePrefix) || !strings.HasSuffix(raw, msDateSuffix) {
		return raw
	}
	millis, err := strconv.ParseInt(raw[len(msDatePrefix):len(raw)-len(msDateSuffix)], 10, 64)
	if err != nil {
		return raw
	}
	return time.UnixMilli(millis).UTC().Format(ISODateFormat)
}
