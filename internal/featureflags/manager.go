// Package featureflags evaluates feature flags defined in a simple
// key=value list, e.g. "group_exchanges=on,recommendations=25%".
package featureflags

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Flag names used by the application.
const (
	FlagGroupExchanges  = "group_exchanges"
	FlagRecommendations = "recommendations"
)

// Manager evaluates feature flags from a parsed config string.
type Manager struct {
	flags map[string]string
}

// NewManager parses a comma-separated list of key=value pairs.
// Malformed pairs are skipped; keys and values are case-insensitive.
func NewManager(raw string) *Manager {
	out := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		key, value = normalize(key), normalize(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	return &Manager{flags: out}
}

// Enabled reports whether a flag is on for the given user. Values are
// on/true/1, off/false/0, or "N%" for a deterministic per-user
// rollout. Unknown flags and unparseable values read as off. A nil
// Manager reads every flag as off.
func (m *Manager) Enabled(name string, userID uint) bool {
	if m == nil {
		return false
	}
	value, ok := m.flags[normalize(name)]
	if !ok {
		return false
	}
	return evalValue(name, value, userID)
}

// EnabledDefault behaves like Enabled but returns def when the flag is
// not configured at all.
func (m *Manager) EnabledDefault(name string, userID uint, def bool) bool {
	if m == nil {
		return def
	}
	value, ok := m.flags[normalize(name)]
	if !ok {
		return def
	}
	return evalValue(name, value, userID)
}

// Snapshot returns evaluated flag status for one user.
func (m *Manager) Snapshot(userID uint) map[string]bool {
	out := make(map[string]bool, len(m.flags))
	for name, value := range m.flags {
		out[name] = evalValue(name, value, userID)
	}
	return out
}

func evalValue(name, value string, userID uint) bool {
	switch value {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	}

	pctText, ok := strings.CutSuffix(value, "%")
	if !ok {
		return false
	}
	pct, err := strconv.Atoi(pctText)
	if err != nil || pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	// Anonymous callers never land in a partial rollout.
	if userID == 0 {
		return false
	}
	return rolloutBucket(name, userID) < pct
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// rolloutBucket assigns a stable 0-99 bucket per (flag, user) so a
// user's experience does not flap between requests.
func rolloutBucket(name string, userID uint) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(fmt.Sprintf("%s:%d", normalize(name), userID)))
	return int(h.Sum32() % 100)
}
