package schema

import (
	"os"
	"strings"

	charmlog "charm.land/log/v2"
)

// debugLogger is the process-wide handle used by every Schema when its
// debug flag is set. Domain gating mirrors the "comma-separated list or
// all/none" convention: DRAFTFUZZ_DEBUG=schema,generate turns on the
// "schema" and "generate" domains, DRAFTFUZZ_DEBUG=all turns on every
// domain, and an unset/empty value disables debug logging entirely.
var debugLogger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{Level: charmlog.DebugLevel})

var enabledDomains = parseDebugDomains(os.Getenv("DRAFTFUZZ_DEBUG"))

func parseDebugDomains(raw string) map[string]bool {
	out := map[string]bool{}
	for _, d := range strings.Split(raw, ",") {
		d = strings.TrimSpace(d)
		if d != "" {
			out[d] = true
		}
	}
	return out
}

func domainEnabled(domain string) bool {
	return enabledDomains["all"] && !enabledDomains["none"] || enabledDomains[domain]
}

// debugf logs msg under domain when that domain is enabled and s was
// loaded with debug logging turned on (Schema.SetDebug).
func debugf(s *Schema, domain, msg string, kv ...any) {
	if s == nil || !s.debug || !domainEnabled(domain) {
		return
	}
	debugLogger.Debug(msg, kv...)
}
