package seed

import (
	"testing"

	"devconnect/internal/database"
	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func TestSeedUsers(t *testing.T) {
	t.Parallel()

	db := setupSeedDB(t)
	s := NewSeeder(db)

	users, err := s.SeedUsers(3)
	require.NoError(t, err)
	require.Len(t, users, 3)

	var userCount, profileCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Profile{}).Count(&profileCount).Error)
	assert.EqualValues(t, 3, userCount)
	assert.EqualValues(t, 3, profileCount)

	for _, u := range users {
		assert.Contains(t, u.Avatar, "gravatar.com/avatar/")
		assert.NotEmpty(t, u.Name)
	}

	var profile models.Profile
	require.NoError(t, db.Preload("Experience").First(&profile).Error)
	assert.NotEmpty(t, profile.Status)
	assert.NotEmpty(t, profile.Skills)
	assert.NotEmpty(t, profile.Experience)
}

func TestSeedPosts(t *testing.T) {
	t.Parallel()

	db := setupSeedDB(t)
	s := NewSeeder(db)

	users, err := s.SeedUsers(2)
	require.NoError(t, err)
	require.NoError(t, s.SeedPosts(users, 5))

	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	require.Len(t, posts, 5)
	for _, p := range posts {
		assert.NotEmpty(t, p.Text)
		assert.NotEmpty(t, p.Name, "author name is denormalized onto the post")
	}
}

func TestClearAll(t *testing.T) {
	t.Parallel()

	db := setupSeedDB(t)
	s := NewSeeder(db)

	users, err := s.SeedUsers(2)
	require.NoError(t, err)
	require.NoError(t, s.SeedPosts(users, 3))

	require.NoError(t, s.ClearAll())

	for _, model := range []any{&models.User{}, &models.Profile{}, &models.Post{}, &models.Comment{}, &models.Like{}} {
		var count int64
		require.NoError(t, db.Unscoped().Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}
