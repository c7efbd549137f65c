package service

import (
	"context"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseSkills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "Go", []string{"Go"}},
		{"trims whitespace", " Go , JavaScript ,React", []string{"Go", "JavaScript", "React"}},
		{"preserves order", "c,b,a", []string{"c", "b", "a"}},
		{"keeps empty segments", "Go,,React", []string{"Go", "", "React"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseSkills(tt.in))
		})
	}
}

func TestProfileService_Upsert_Validation(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(noopProfileRepo())
	ctx := context.Background()

	t.Run("missing status", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Upsert(ctx, 1, ProfileInput{Skills: strPtr("Go")})
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("missing skills", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Upsert(ctx, 1, ProfileInput{Status: strPtr("Developer")})
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("blank status counts as missing", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Upsert(ctx, 1, ProfileInput{Status: strPtr("  "), Skills: strPtr("Go")})
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("both missing reports both fields", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Upsert(ctx, 1, ProfileInput{})
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Len(t, appErr.Fields, 2)
	})
}

func TestProfileService_Upsert_CreatesWhenAbsent(t *testing.T) {
	t.Parallel()

	var saved *models.Profile
	calls := 0
	repo := noopProfileRepo()
	repo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		calls++
		if calls == 1 {
			return nil, models.NewNotFoundError("Profile")
		}
		return saved, nil
	}
	repo.saveFn = func(_ context.Context, p *models.Profile) error {
		saved = p
		return nil
	}

	svc := NewProfileService(repo)
	profile, err := svc.Upsert(context.Background(), 7, ProfileInput{
		Status: strPtr("Developer"),
		Skills: strPtr("Go, React"),
		Bio:    strPtr("hello"),
	})
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, uint(7), profile.UserID)
	assert.Equal(t, "Developer", profile.Status)
	assert.Equal(t, []string{"Go", "React"}, profile.Skills)
	assert.Equal(t, "hello", profile.Bio)
}

func TestProfileService_Upsert_MergesSparseFields(t *testing.T) {
	t.Parallel()

	existing := &models.Profile{
		ID:       3,
		UserID:   7,
		Status:   "Junior Developer",
		Skills:   []string{"Go"},
		Company:  "Acme",
		Location: "Berlin",
		Bio:      "old bio",
		Social:   models.SocialLinks{Twitter: "https://twitter.com/old"},
	}
	repo := noopProfileRepo()
	repo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
		return existing, nil
	}

	svc := NewProfileService(repo)
	profile, err := svc.Upsert(context.Background(), 7, ProfileInput{
		Status: strPtr("Senior Developer"),
		Skills: strPtr("Go,Rust"),
		Bio:    strPtr("new bio"),
	})
	require.NoError(t, err)

	// Provided fields replaced, absent fields untouched.
	assert.Equal(t, "Senior Developer", profile.Status)
	assert.Equal(t, []string{"Go", "Rust"}, profile.Skills)
	assert.Equal(t, "new bio", profile.Bio)
	assert.Equal(t, "Acme", profile.Company)
	assert.Equal(t, "Berlin", profile.Location)
	assert.Equal(t, "https://twitter.com/old", profile.Social.Twitter)
}

func TestProfileService_Upsert_EmptySubmittedFieldKeepsStored(t *testing.T) {
	t.Parallel()

	existing := &models.Profile{
		ID:      3,
		UserID:  7,
		Status:  "Developer",
		Skills:  []string{"Go"},
		Company: "Acme",
		Social:  models.SocialLinks{Twitter: "https://twitter.com/old"},
	}
	repo := noopProfileRepo()
	repo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
		return existing, nil
	}

	svc := NewProfileService(repo)
	profile, err := svc.Upsert(context.Background(), 7, ProfileInput{
		Status:  strPtr("Developer"),
		Skills:  strPtr("Go"),
		Company: strPtr(""),
		Twitter: strPtr(""),
	})
	require.NoError(t, err)

	// An empty submitted value does not clear the stored field.
	assert.Equal(t, "Acme", profile.Company)
	assert.Equal(t, "https://twitter.com/old", profile.Social.Twitter)
}

func TestProfileService_AddExperience(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("requires title, company and from", func(t *testing.T) {
		t.Parallel()
		svc := NewProfileService(noopProfileRepo())
		_, err := svc.AddExperience(ctx, 1, ExperienceInput{})
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Len(t, appErr.Fields, 3)
	})

	t.Run("requires an existing profile", func(t *testing.T) {
		t.Parallel()
		repo := noopProfileRepo()
		repo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return nil, models.NewNotFoundError("Profile")
		}
		svc := NewProfileService(repo)
		_, err := svc.AddExperience(ctx, 1, ExperienceInput{Title: "Dev", Company: "Acme", From: "2020-01-01"})
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("attaches entry to the caller's profile", func(t *testing.T) {
		t.Parallel()
		var created *models.Experience
		repo := noopProfileRepo()
		repo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
			return &models.Profile{ID: 42, UserID: userID}, nil
		}
		repo.addExperienceFn = func(_ context.Context, _ uint, exp *models.Experience) error {
			created = exp
			return nil
		}
		svc := NewProfileService(repo)
		_, err := svc.AddExperience(ctx, 1, ExperienceInput{Title: "Dev", Company: "Acme", From: "2020-01-01"})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, uint(42), created.ProfileID)
	})
}

func TestProfileService_DeleteExperience_AbsentEntry(t *testing.T) {
	t.Parallel()

	repo := noopProfileRepo()
	repo.deleteExperienceFn = func(_ context.Context, _, _, _ uint) error {
		return models.NewNotFoundError("Experience entry")
	}
	svc := NewProfileService(repo)

	_, err := svc.DeleteExperience(context.Background(), 1, 99)
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestProfileService_AddEducation_Validation(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(noopProfileRepo())
	_, err := svc.AddEducation(context.Background(), 1, EducationInput{School: "MIT"})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Len(t, appErr.Fields, 3)
}
