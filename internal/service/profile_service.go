package service

import (
	"context"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// ProfileInput carries the fields of a profile create/update request.
// A field only replaces the stored value when it is submitted non-empty;
// absent or empty fields leave the stored value untouched.
type ProfileInput struct {
	Company    *string `json:"company"`
	Website    *string `json:"website"`
	Location   *string `json:"location"`
	Status     *string `json:"status"`
	Skills     *string `json:"skills"`
	Bio        *string `json:"bio"`
	GithubUser *string `json:"githubusername"`
	Youtube    *string `json:"youtube"`
	Twitter    *string `json:"twitter"`
	Facebook   *string `json:"facebook"`
	Linkedin   *string `json:"linkedin"`
	Instagram  *string `json:"instagram"`
}

// ExperienceInput carries the fields of an add-experience request.
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationInput carries the fields of an add-education request.
type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// ProfileService implements profile management.
type ProfileService struct {
	profiles repository.ProfileRepository
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// ParseSkills converts a comma separated skills string into an ordered list,
// trimming whitespace around each entry.
func ParseSkills(s string) []string {
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		skills = append(skills, strings.TrimSpace(p))
	}
	return skills
}

// GetByUserID returns the profile of the given user with its owner and
// ordered experience and education entries.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// List returns all profiles with their owners.
func (s *ProfileService) List(ctx context.Context) ([]models.Profile, error) {
	return s.profiles.List(ctx)
}

// Upsert creates the acting user's profile or merges the provided fields
// into the existing one. Absent and empty fields keep their stored values.
// Status and skills are required on every call.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, input ProfileInput) (*models.Profile, error) {
	var msgs []string
	if input.Status == nil || strings.TrimSpace(*input.Status) == "" {
		msgs = append(msgs, "Status is required")
	}
	if input.Skills == nil || strings.TrimSpace(*input.Skills) == "" {
		msgs = append(msgs, "Skills is required")
	}
	if len(msgs) > 0 {
		return nil, models.NewFieldErrors(msgs...)
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if !models.IsNotFound(err) {
			return nil, err
		}
		profile = &models.Profile{UserID: userID}
	}

	profile.Status = *input.Status
	profile.Skills = ParseSkills(*input.Skills)
	applyIfSet(&profile.Company, input.Company)
	applyIfSet(&profile.Website, input.Website)
	applyIfSet(&profile.Location, input.Location)
	applyIfSet(&profile.Bio, input.Bio)
	applyIfSet(&profile.GithubUser, input.GithubUser)
	applyIfSet(&profile.Social.Youtube, input.Youtube)
	applyIfSet(&profile.Social.Twitter, input.Twitter)
	applyIfSet(&profile.Social.Facebook, input.Facebook)
	applyIfSet(&profile.Social.Linkedin, input.Linkedin)
	applyIfSet(&profile.Social.Instagram, input.Instagram)

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, userID)
}

func applyIfSet(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

// AddExperience prepends an experience entry to the acting user's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, input ExperienceInput) (*models.Profile, error) {
	var msgs []string
	if strings.TrimSpace(input.Title) == "" {
		msgs = append(msgs, "Title is required")
	}
	if strings.TrimSpace(input.Company) == "" {
		msgs = append(msgs, "Company is required")
	}
	if strings.TrimSpace(input.From) == "" {
		msgs = append(msgs, "From date is required")
	}
	if len(msgs) > 0 {
		return nil, models.NewFieldErrors(msgs...)
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp := models.Experience{
		ProfileID:   profile.ID,
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
	if err := s.profiles.AddExperience(ctx, userID, &exp); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, userID)
}

// DeleteExperience removes one experience entry from the acting user's
// profile. Entries belonging to other profiles are not reachable.
func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.DeleteExperience(ctx, userID, profile.ID, expID); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, userID)
}

// AddEducation prepends an education entry to the acting user's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, input EducationInput) (*models.Profile, error) {
	var msgs []string
	if strings.TrimSpace(input.School) == "" {
		msgs = append(msgs, "School is required")
	}
	if strings.TrimSpace(input.Degree) == "" {
		msgs = append(msgs, "Degree is required")
	}
	if strings.TrimSpace(input.FieldOfStudy) == "" {
		msgs = append(msgs, "Field of study is required")
	}
	if strings.TrimSpace(input.From) == "" {
		msgs = append(msgs, "From date is required")
	}
	if len(msgs) > 0 {
		return nil, models.NewFieldErrors(msgs...)
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu := models.Education{
		ProfileID:    profile.ID,
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
	if err := s.profiles.AddEducation(ctx, userID, &edu); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, userID)
}

// DeleteEducation removes one education entry from the acting user's profile.
func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.DeleteEducation(ctx, userID, profile.ID, eduID); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, userID)
}
