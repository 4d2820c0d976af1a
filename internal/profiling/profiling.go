package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Lightweight phase timer for atlas builds.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
	counts = make(map[string]int)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("atlas.Draw")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		counts[name]++
		mu.Unlock()
	}
}

// Reset clears all recorded phases.
func Reset() {
	mu.Lock()
	clear(totals)
	clear(counts)
	mu.Unlock()
}

// Snapshot returns a copy of the recorded totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// Phase is one named total.
type Phase struct {
	Name  string
	Dur   time.Duration
	Calls int
}

// Phases lists the recorded totals, longest first.
func Phases() []Phase {
	mu.Lock()
	list := make([]Phase, 0, len(totals))
	for k, v := range totals {
		list = append(list, Phase{Name: k, Dur: v, Calls: counts[k]})
	}
	mu.Unlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Dur != list[j].Dur {
			return list[i].Dur > list[j].Dur
		}
		return list[i].Name < list[j].Name
	})
	return list
}

// SumWithPrefix adds up every phase whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	var sum time.Duration
	for k, v := range Snapshot() {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n longest phases.
// Example: "atlas.Draw:41.2ms, atlas.LoadTextures:12ms"
func TopN(n int) string {
	list := Phases()
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, p.Name+":"+formatMs(p.Dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
