// Package seed provides helpers to create demo data for development and
// testing.
package seed

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder populates the database with generated users, profiles and posts.
type Seeder struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return NewSeederWithSeed(db, time.Now().UnixNano())
}

// NewSeederWithSeed creates a Seeder producing deterministic data for the
// given seed value. Useful for reproducible demo environments.
func NewSeederWithSeed(db *gorm.DB, seed int64) *Seeder {
	gofakeit.Seed(seed)
	return &Seeder{
		db:  db,
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// ClearAll wipes every seeded table, children first.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.Experience{},
		&models.Education{},
		&models.Profile{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}
	log.Println("cleared existing data")
	return nil
}

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer",
	"Manager", "Student or Learning", "Instructor or Teacher", "Intern",
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "HTML", "CSS", "React",
	"Node.js", "PostgreSQL", "Redis", "Docker", "Kubernetes", "GraphQL",
	"AWS", "Terraform", "Rust", "Java", "C#",
}

// CreateUser persists one generated user with a gravatar-style avatar.
// All seeded users share the password "password123".
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	email := gofakeit.Email()
	sum := md5.Sum([]byte(strings.ToLower(email)))
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: string(hashedPassword),
		Avatar:   fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=mm", hex.EncodeToString(sum[:])),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile persists a generated profile for the user, including a few
// experience and education entries.
func (s *Seeder) CreateProfile(user *models.User) (*models.Profile, error) {
	skills := make([]string, 0, 5)
	for _, i := range s.rnd.Perm(len(skillPool))[:3+s.rnd.Intn(3)] {
		skills = append(skills, skillPool[i])
	}

	profile := &models.Profile{
		UserID:     user.ID,
		Company:    gofakeit.Company(),
		Website:    gofakeit.URL(),
		Location:   fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Status:     statuses[s.rnd.Intn(len(statuses))],
		Skills:     skills,
		Bio:        gofakeit.Sentence(12),
		GithubUser: gofakeit.Username(),
		Social: models.SocialLinks{
			Twitter:  "https://twitter.com/" + gofakeit.Username(),
			Linkedin: "https://linkedin.com/in/" + gofakeit.Username(),
		},
	}
	if err := s.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i < 1+s.rnd.Intn(3); i++ {
		exp := models.Experience{
			ProfileID:   profile.ID,
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        gofakeit.DateRange(time.Now().AddDate(-8, 0, 0), time.Now().AddDate(-2, 0, 0)).Format("2006-01-02"),
			Current:     i == 0,
			Description: gofakeit.Sentence(10),
		}
		if !exp.Current {
			exp.To = gofakeit.DateRange(time.Now().AddDate(-2, 0, 0), time.Now()).Format("2006-01-02")
		}
		if err := s.db.Create(&exp).Error; err != nil {
			return nil, err
		}
	}

	edu := models.Education{
		ProfileID:    profile.ID,
		School:       gofakeit.Company() + " University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         gofakeit.DateRange(time.Now().AddDate(-12, 0, 0), time.Now().AddDate(-8, 0, 0)).Format("2006-01-02"),
		To:           gofakeit.DateRange(time.Now().AddDate(-8, 0, 0), time.Now().AddDate(-4, 0, 0)).Format("2006-01-02"),
	}
	if err := s.db.Create(&edu).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

// SeedUsers creates count users, each with a profile.
func (s *Seeder) SeedUsers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("seed user %d: %w", i, err)
		}
		if _, err := s.CreateProfile(user); err != nil {
			return nil, fmt.Errorf("seed profile for user %d: %w", user.ID, err)
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users with profiles", len(users))
	return users, nil
}

// SeedPosts creates count posts spread across the given users, with random
// likes and comments from other users.
func (s *Seeder) SeedPosts(users []*models.User, count int) error {
	if len(users) == 0 {
		return fmt.Errorf("no users to seed posts for")
	}

	for i := 0; i < count; i++ {
		author := users[s.rnd.Intn(len(users))]
		post := models.Post{
			Text:      gofakeit.Paragraph(1, 2, 8, " "),
			Name:      author.Name,
			Avatar:    author.Avatar,
			UserID:    author.ID,
			CreatedAt: gofakeit.DateRange(time.Now().AddDate(0, -3, 0), time.Now()),
		}
		if err := s.db.Create(&post).Error; err != nil {
			return fmt.Errorf("seed post %d: %w", i, err)
		}

		for _, j := range s.rnd.Perm(len(users))[:s.rnd.Intn(min(len(users), 8))] {
			like := models.Like{PostID: post.ID, UserID: users[j].ID}
			if err := s.db.Create(&like).Error; err != nil {
				return fmt.Errorf("seed like on post %d: %w", post.ID, err)
			}
		}

		for j := 0; j < s.rnd.Intn(4); j++ {
			commenter := users[s.rnd.Intn(len(users))]
			comment := models.Comment{
				Text:   gofakeit.Sentence(10),
				Name:   commenter.Name,
				Avatar: commenter.Avatar,
				UserID: commenter.ID,
				PostID: post.ID,
			}
			if err := s.db.Create(&comment).Error; err != nil {
				return fmt.Errorf("seed comment on post %d: %w", post.ID, err)
			}
		}
	}
	log.Printf("seeded %d posts", count)
	return nil
}
