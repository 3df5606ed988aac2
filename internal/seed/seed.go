// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"plume/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options controls how much data the seeder creates.
type Options struct {
	Users    int
	Groups   int
	Posts    int
	Comments int
	Follows  int
	// MaxDays spreads post timestamps over the past N days.
	MaxDays int
}

// DefaultOptions returns a data set large enough to exercise pagination.
func DefaultOptions() Options {
	return Options{
		Users:    25,
		Groups:   6,
		Posts:    200,
		Comments: 400,
		Follows:  60,
		MaxDays:  90,
	}
}

// Seeder populates the database with generated demo data.
type Seeder struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data in dependency order.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// Run creates the full demo data set.
func (s *Seeder) Run(opts Options) error {
	users, err := s.createUsers(opts.Users)
	if err != nil {
		return err
	}
	groups, err := s.createGroups(opts.Groups)
	if err != nil {
		return err
	}
	posts, err := s.createPosts(opts, users, groups)
	if err != nil {
		return err
	}
	if err := s.createComments(opts.Comments, users, posts); err != nil {
		return err
	}
	return s.createFollows(opts.Follows, users)
}

func (s *Seeder) createUsers(n int) ([]*models.User, error) {
	// MinCost keeps seeding fast; demo accounts only.
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", strings.ToLower(gofakeit.Username()), i),
			Email:    fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password: string(hashed),
			Bio:      gofakeit.Sentence(8),
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createGroups(n int) ([]*models.Group, error) {
	groups := make([]*models.Group, 0, n)
	for i := 0; i < n; i++ {
		noun := strings.ToLower(gofakeit.NounConcrete())
		group := &models.Group{
			Slug:        fmt.Sprintf("%s-%d", noun, i),
			Title:       gofakeit.BookTitle(),
			Description: gofakeit.Paragraph(1, 2, 8, " "),
		}
		if err := s.db.Create(group).Error; err != nil {
			return nil, fmt.Errorf("create group: %w", err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *Seeder) createPosts(opts Options, users []*models.User, groups []*models.Group) ([]*models.Post, error) {
	maxDays := opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}

	posts := make([]*models.Post, 0, opts.Posts)
	for i := 0; i < opts.Posts; i++ {
		author := users[s.rnd.Intn(len(users))]
		post := &models.Post{
			Text:      gofakeit.Paragraph(1, 3, 10, "\n"),
			AuthorID:  author.ID,
			CreatedAt: s.pastTime(maxDays),
		}
		// Roughly two thirds of posts belong to a group.
		if len(groups) > 0 && s.rnd.Intn(3) > 0 {
			post.GroupID = &groups[s.rnd.Intn(len(groups))].ID
		}
		if err := s.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("create post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Seeder) createComments(n int, users []*models.User, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		comment := &models.Comment{
			PostID:   posts[s.rnd.Intn(len(posts))].ID,
			AuthorID: users[s.rnd.Intn(len(users))].ID,
			Text:     gofakeit.Sentence(12),
		}
		if err := s.db.Create(comment).Error; err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
	}
	return nil
}

func (s *Seeder) createFollows(n int, users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	for i := 0; i < n; i++ {
		follower := users[s.rnd.Intn(len(users))]
		author := users[s.rnd.Intn(len(users))]
		if follower.ID == author.ID {
			continue
		}
		follow := &models.Follow{FollowerID: follower.ID, AuthorID: author.ID}
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "author_id"}},
			DoNothing: true,
		}).Create(follow).Error
		if err != nil {
			return fmt.Errorf("create follow: %w", err)
		}
	}
	return nil
}

func (s *Seeder) pastTime(maxDays int) time.Time {
	back := time.Duration(s.rnd.Intn(maxDays))*24*time.Hour +
		time.Duration(s.rnd.Intn(24))*time.Hour +
		time.Duration(s.rnd.Intn(60))*time.Minute
	return time.Now().Add(-back)
}
