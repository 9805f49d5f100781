package game

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Togs/internal/tog"
)

// SimLogEntry is one recorded event during a headless simulation.
type SimLogEntry struct {
	Tick     int
	Tog      string  // label e.g. "T4", or "--" for global events
	Category string  // behaviour, hover, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] T7    behaviour  rest         rests 23 frames
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-5s %-10s %-12s %s",
		e.Tick, e.Tog, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless simulation. Unlike
// ActivityLog it is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick position entries
// are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, togLabel, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Tog:      togLabel,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, togLabel, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, togLabel, category, key, value, numVal)
}

// Verbose reports whether per-tick entries are recorded.
func (sl *SimLog) Verbose() bool {
	return sl.verbose
}

// AddEvent records a Tog event under the behaviour category.
func (sl *SimLog) AddEvent(tick int, e tog.Event) {
	sl.Add(tick, fmt.Sprintf("T%d", e.TogID), "behaviour", e.Kind.String(), describeEvent(e), float64(e.Value))
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTog returns entries for a specific Tog label.
func (sl *SimLog) FilterTog(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tog == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the population.
func (sl *SimLog) Summary(tick int, pop *tog.Population) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%04d ---\n", tick)

	resting, soaring, chasing := 0, 0, 0
	for _, t := range pop.Togs() {
		if t.Resting() > 0 {
			resting++
		}
		if t.Soaring() != nil {
			soaring++
		}
		if t.Heading().Chase {
			chasing++
		}
	}
	fmt.Fprintf(&sb, "Togs: %d (%s)  resting=%d  soaring=%d  chasing=%d\n",
		pop.Len(), pop.Variant(), resting, soaring, chasing)

	fmt.Fprintf(&sb, "Events:")
	for _, k := range reportKinds {
		fmt.Fprintf(&sb, " %s=%d", k, sl.CountCategory("behaviour", k.String()))
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Hovers: %d\n", sl.CountCategory("hover", ""))
	return sb.String()
}
