package server

import (
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profiles/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	profile, err := s.profileService.GetByUserID(c.Context(), userID)
	if err != nil {
		if models.IsNotFound(err) {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("There is no profile for this user"))
		}
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(profile)
}

// UpsertProfile handles POST /api/profiles. Creates the caller's profile or
// merges the provided fields into the existing one.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var input service.ProfileInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.Upsert(c.Context(), userID, input)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(profile)
}

// GetProfiles handles GET /api/profiles
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(profiles)
}

// GetProfileByUser handles GET /api/profiles/user/:userId
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetByUserID(c.Context(), userID)
	if err != nil {
		if models.IsNotFound(err) {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Profile not found"))
		}
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(profile)
}

// AddExperience handles PUT /api/profiles/experience
func (s *Server) AddExperience(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var input service.ExperienceInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddExperience(c.Context(), userID, input)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(profile)
}

// DeleteExperience handles DELETE /api/profiles/experience/:expId
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	userID := currentUserID(c)

	expID, err := s.parseID(c, "expId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.DeleteExperience(c.Context(), userID, expID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(profile)
}

// AddEducation handles PUT /api/profiles/education
func (s *Server) AddEducation(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var input service.EducationInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.AddEducation(c.Context(), userID, input)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(profile)
}

// DeleteEducation handles DELETE /api/profiles/education/:eduId
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	userID := currentUserID(c)

	eduID, err := s.parseID(c, "eduId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.DeleteEducation(c.Context(), userID, eduID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profiles. Removes the caller's user,
// profile, posts and everything they authored in one transaction.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := s.accountService.Delete(c.Context(), userID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"msg": "User deleted"})
}
