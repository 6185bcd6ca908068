// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"codehub/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	ShouldClean bool
}

var (
	firstNames = []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
		"William", "Elizabeth", "David", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
		"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Lisa", "Matthew", "Nancy",
	}

	languages = []string{
		"javascript", "typescript", "go", "python", "rust", "sql", "bash", "css",
	}

	snippetTitles = []string{
		"Debounce helper", "Retry with backoff", "Date formatter", "Deep clone",
		"LRU cache", "Slugify", "Chunked upload", "Query builder", "Event emitter",
	}

	taskTitles = []string{
		"Fix login redirect", "Write release notes", "Review PR backlog",
		"Refactor settings page", "Update dependencies", "Profile slow query",
		"Add error boundary", "Clean up feature flags", "Prepare demo",
		"Migrate CI pipeline", "Document API changes", "Triage bug reports",
	}

	priorities = []string{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}
)

// Run populates the database with demo users and a plausible spread of tasks,
// snippets and focus sessions over the last two weeks.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 5
	}

	if opts.ShouldClean {
		log.Println("Cleaning existing data...")
		if err := db.Exec("TRUNCATE TABLE achievements, focus_sessions, snippets, tasks, users CASCADE").Error; err != nil {
			return fmt.Errorf("failed to clean tables: %w", err)
		}
	}

	// Hash once; all demo accounts share the same password.
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	for i := 0; i < opts.NumUsers; i++ {
		name := firstNames[i%len(firstNames)]
		user := models.User{
			Username: fmt.Sprintf("%s%d", name, i+1),
			Email:    fmt.Sprintf("%s%d@example.com", name, i+1),
			Password: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.Username, err)
		}

		if err := seedActivity(db, user.ID); err != nil {
			return err
		}
		log.Printf("Seeded user %s", user.Username)
	}

	log.Printf("Seeding complete: %d users (password: Password123)", opts.NumUsers)
	return nil
}

func seedActivity(db *gorm.DB, userID uint) error {
	now := time.Now()

	numTasks := 4 + rand.Intn(12)
	for i := 0; i < numTasks; i++ {
		created := now.AddDate(0, 0, -rand.Intn(14))
		task := models.Task{
			UserID:    userID,
			Title:     taskTitles[rand.Intn(len(taskTitles))],
			Status:    models.TaskStatusTodo,
			Priority:  priorities[rand.Intn(len(priorities))],
			CreatedAt: created,
		}
		// Roughly half the tasks are already done.
		if rand.Intn(2) == 0 {
			done := created.Add(time.Duration(1+rand.Intn(72)) * time.Hour)
			if done.After(now) {
				done = now
			}
			task.Status = models.TaskStatusDone
			task.CompletedAt = &done
		}
		if err := db.Create(&task).Error; err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
	}

	numSnippets := 2 + rand.Intn(7)
	for i := 0; i < numSnippets; i++ {
		snippet := models.Snippet{
			UserID:   userID,
			Title:    snippetTitles[rand.Intn(len(snippetTitles))],
			Code:     "// TODO: paste the real snippet here\n",
			Language: languages[rand.Intn(len(languages))],
			Tags:     []string{"demo", languages[rand.Intn(len(languages))]},
		}
		if err := db.Create(&snippet).Error; err != nil {
			return fmt.Errorf("failed to create snippet: %w", err)
		}
	}

	numSessions := rand.Intn(8)
	for i := 0; i < numSessions; i++ {
		session := models.FocusSession{
			UserID:          userID,
			DurationMinutes: 25,
			LoggedAt:        now.AddDate(0, 0, -rand.Intn(7)),
		}
		if err := db.Create(&session).Error; err != nil {
			return fmt.Errorf("failed to create focus session: %w", err)
		}
	}

	return nil
}
