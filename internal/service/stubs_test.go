package service

import (
	"context"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/require"
)

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn      func(context.Context, uint) (*models.Profile, error)
	listFn             func(context.Context) ([]models.Profile, error)
	saveFn             func(context.Context, *models.Profile) error
	addExperienceFn    func(context.Context, uint, *models.Experience) error
	deleteExperienceFn func(context.Context, uint, uint, uint) error
	addEducationFn     func(context.Context, uint, *models.Education) error
	deleteEducationFn  func(context.Context, uint, uint, uint) error
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) Save(ctx context.Context, profile *models.Profile) error {
	return s.saveFn(ctx, profile)
}
func (s *profileRepoStub) AddExperience(ctx context.Context, userID uint, exp *models.Experience) error {
	return s.addExperienceFn(ctx, userID, exp)
}
func (s *profileRepoStub) DeleteExperience(ctx context.Context, userID, profileID, expID uint) error {
	return s.deleteExperienceFn(ctx, userID, profileID, expID)
}
func (s *profileRepoStub) AddEducation(ctx context.Context, userID uint, edu *models.Education) error {
	return s.addEducationFn(ctx, userID, edu)
}
func (s *profileRepoStub) DeleteEducation(ctx context.Context, userID, profileID, eduID uint) error {
	return s.deleteEducationFn(ctx, userID, profileID, eduID)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn: func(_ context.Context, userID uint) (*models.Profile, error) {
			return &models.Profile{ID: 1, UserID: userID}, nil
		},
		listFn:             func(_ context.Context) ([]models.Profile, error) { return nil, nil },
		saveFn:             func(_ context.Context, _ *models.Profile) error { return nil },
		addExperienceFn:    func(_ context.Context, _ uint, _ *models.Experience) error { return nil },
		deleteExperienceFn: func(_ context.Context, _, _, _ uint) error { return nil },
		addEducationFn:     func(_ context.Context, _ uint, _ *models.Education) error { return nil },
		deleteEducationFn:  func(_ context.Context, _, _, _ uint) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, uint) (*models.Post, error)
	listFn    func(context.Context) ([]models.Post, error)
	deleteFn  func(context.Context, uint) error
	isLikedFn func(context.Context, uint, uint) (bool, error)
	likeFn    func(context.Context, uint, uint) error
	unlikeFn  func(context.Context, uint, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, postID, userID uint) (bool, error) {
	return s.isLikedFn(ctx, postID, userID)
}
func (s *postRepoStub) Like(ctx context.Context, postID, userID uint) error {
	return s.likeFn(ctx, postID, userID)
}
func (s *postRepoStub) Unlike(ctx context.Context, postID, userID uint) error {
	return s.unlikeFn(ctx, postID, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1}, nil
		},
		listFn:    func(_ context.Context) ([]models.Post, error) { return nil, nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
		isLikedFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		likeFn:    func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:  func(_ context.Context, _, _ uint) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "Test User", Avatar: "https://example.com/a.png"}, nil
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn  func(context.Context, *models.Comment) error
	getByIDFn func(context.Context, uint) (*models.Comment, error)
	deleteFn  func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1, PostID: 1}, nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	require.Equal(t, code, appErr.Code)
}
