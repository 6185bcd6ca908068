// Package achievements defines the static achievement catalog and the
// stateless threshold evaluation over a user's activity stats.
package achievements

// Rarity levels, mirrored by the client's badge styling.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Stats are the aggregate activity numbers an achievement predicate can see.
// Counters never decrease an already-unlocked achievement: unlocks are
// permanent regardless of later deletions.
type Stats struct {
	TasksCreated    int64 `json:"tasks_created"`
	TasksDone       int64 `json:"tasks_done"`
	SnippetsCreated int64 `json:"snippets_created"`
	FocusSessions   int64 `json:"focus_sessions"`

	// Derived from activity timestamps, bucketed in the configured timezone.
	MaxTasksDoneInDay  int64 `json:"max_tasks_done_in_day"`
	ActivityStreakDays int64 `json:"activity_streak_days"`
	HasNightActivity   bool  `json:"has_night_activity"`
	HasEarlyActivity   bool  `json:"has_early_activity"`
}

// Definition is one entry of the fixed achievement catalog.
type Definition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Rarity      string `json:"rarity"`

	// Unlocked reports whether the stats cross this achievement's threshold.
	Unlocked func(Stats) bool `json:"-"`
}

// Catalog is the fixed, process-wide achievement catalog. Order is the
// client's display order.
var Catalog = []Definition{
	{
		ID:          "first_task",
		Title:       "First Step",
		Description: "Created your first task",
		Rarity:      RarityCommon,
		Unlocked:    func(s Stats) bool { return s.TasksCreated >= 1 },
	},
	{
		ID:          "task_master",
		Title:       "Task Master",
		Description: "Completed 10 tasks",
		Rarity:      RarityRare,
		Unlocked:    func(s Stats) bool { return s.TasksDone >= 10 },
	},
	{
		ID:          "snippet_wizard",
		Title:       "Snippet Wizard",
		Description: "Created 5 snippets",
		Rarity:      RarityUncommon,
		Unlocked:    func(s Stats) bool { return s.SnippetsCreated >= 5 },
	},
	{
		ID:          "focus_champion",
		Title:       "Focus Champion",
		Description: "Completed 5 Pomodoro sessions",
		Rarity:      RarityRare,
		Unlocked:    func(s Stats) bool { return s.FocusSessions >= 5 },
	},
	{
		ID:          "streak_warrior",
		Title:       "Streak Warrior",
		Description: "Worked 3 days in a row",
		Rarity:      RarityEpic,
		Unlocked:    func(s Stats) bool { return s.ActivityStreakDays >= 3 },
	},
	{
		ID:          "productivity_god",
		Title:       "Productivity God",
		Description: "Completed 50 tasks",
		Rarity:      RarityLegendary,
		Unlocked:    func(s Stats) bool { return s.TasksDone >= 50 },
	},
	{
		ID:          "code_collector",
		Title:       "Code Collector",
		Description: "Created 20 snippets",
		Rarity:      RarityEpic,
		Unlocked:    func(s Stats) bool { return s.SnippetsCreated >= 20 },
	},
	{
		ID:          "time_master",
		Title:       "Time Master",
		Description: "Completed 25 Pomodoro sessions",
		Rarity:      RarityEpic,
		Unlocked:    func(s Stats) bool { return s.FocusSessions >= 25 },
	},
	{
		ID:          "consistency_king",
		Title:       "Consistency King",
		Description: "Worked 7 days in a row",
		Rarity:      RarityLegendary,
		Unlocked:    func(s Stats) bool { return s.ActivityStreakDays >= 7 },
	},
	{
		ID:          "speed_demon",
		Title:       "Speed Demon",
		Description: "Completed 5 tasks in a single day",
		Rarity:      RarityRare,
		Unlocked:    func(s Stats) bool { return s.MaxTasksDoneInDay >= 5 },
	},
	{
		ID:          "night_owl",
		Title:       "Night Owl",
		Description: "Worked after 10 PM",
		Rarity:      RarityUncommon,
		Unlocked:    func(s Stats) bool { return s.HasNightActivity },
	},
	{
		ID:          "early_bird",
		Title:       "Early Bird",
		Description: "Worked before 6 AM",
		Rarity:      RarityUncommon,
		Unlocked:    func(s Stats) bool { return s.HasEarlyActivity },
	},
}

// ByID returns the catalog definition for the given id, or nil if unknown.
func ByID(id string) *Definition {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

// Candidates returns the catalog ids whose predicates hold for stats but are
// not present in the already-unlocked set, in catalog order.
func Candidates(stats Stats, unlocked map[string]bool) []string {
	var out []string
	for _, def := range Catalog {
		if unlocked[def.ID] {
			continue
		}
		if def.Unlocked(stats) {
			out = append(out, def.ID)
		}
	}
	return out
}
