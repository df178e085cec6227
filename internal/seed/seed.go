// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"warbler/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumMessages int
	ShouldClean bool
	SkipBcrypt  bool
	MaxDays     int
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d messages...", opts.NumUsers, opts.NumMessages)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	factory := NewFactory(db, opts)

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	messages, err := createMessages(factory, users, opts.NumMessages)
	if err != nil {
		return fmt.Errorf("failed to create messages: %w", err)
	}
	log.Printf("%d messages created", len(messages))

	if err := seedSocialMesh(factory, users, messages); err != nil {
		return fmt.Errorf("failed to seed follows and likes: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE likes, follows, messages, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Always include a known login for local development
	if count >= 1 {
		user, err := factory.CreateUser(func(u *models.User) {
			u.Username = "tuckerdiane"
			u.Email = "tuckerdiane@example.com"
			u.Bio = "One of the OGs."
		})
		if err == nil {
			users = append(users, user)
		}
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

func createMessages(factory *Factory, users []*models.User, count int) ([]*models.Message, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	messages := make([]*models.Message, 0, count)

	if len(users) == 0 {
		return messages, nil
	}

	for i := 0; i < count; i++ {
		user := users[r.Intn(len(users))]
		message, err := factory.CreateMessage(user)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d messages...", i)
		}
	}

	return messages, nil
}

// seedSocialMesh wires users into a follow graph and sprinkles likes so feeds
// and profiles have content out of the box. Self-follows and self-likes are
// skipped; duplicate edges are ignored.
func seedSocialMesh(factory *Factory, users []*models.User, messages []*models.Message) error {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	follows := 0
	for _, follower := range users {
		numToFollow := r.Intn(len(users)/2 + 1)
		for i := 0; i < numToFollow; i++ {
			followed := users[r.Intn(len(users))]
			if followed.ID == follower.ID {
				continue
			}
			if err := factory.CreateFollow(follower, followed); err != nil {
				continue // duplicate edge
			}
			follows++
		}
	}
	log.Printf("%d follow edges created", follows)

	likes := 0
	for _, message := range messages {
		numLikes := r.Intn(4)
		for i := 0; i < numLikes; i++ {
			user := users[r.Intn(len(users))]
			if user.ID == message.UserID {
				continue
			}
			if err := factory.CreateLike(user, message); err != nil {
				continue // duplicate like
			}
			likes++
		}
	}
	log.Printf("%d likes created", likes)

	return nil
}
