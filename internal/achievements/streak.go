package achievements

import (
	"sort"
	"time"
)

const dayLayout = "2006-01-02"

// LongestStreak returns the length of the longest run of consecutive calendar
// days in the given "YYYY-MM-DD" day labels. Duplicates are tolerated;
// unparseable labels are skipped.
func LongestStreak(days []string) int64 {
	if len(days) == 0 {
		return 0
	}

	parsed := make([]time.Time, 0, len(days))
	seen := make(map[string]bool, len(days))
	for _, d := range days {
		if seen[d] {
			continue
		}
		seen[d] = true
		t, err := time.Parse(dayLayout, d)
		if err != nil {
			continue
		}
		parsed = append(parsed, t)
	}
	if len(parsed) == 0 {
		return 0
	}

	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Before(parsed[j]) })

	var best, run int64 = 1, 1
	for i := 1; i < len(parsed); i++ {
		if parsed[i].Sub(parsed[i-1]) == 24*time.Hour {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}
