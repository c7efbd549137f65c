package service

import (
	"context"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// PostService implements post, like and unlike operations.
type PostService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(posts repository.PostRepository, users repository.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create stores a new post for the acting user, denormalizing the author's
// name and avatar onto the post so feed reads need no join.
func (s *PostService) Create(ctx context.Context, userID uint, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewFieldErrors("Text is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := models.Post{
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
		UserID: user.ID,
	}
	if err := s.posts.Create(ctx, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}

// Get returns one post with its likes and comments.
func (s *PostService) Get(ctx context.Context, postID uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, postID)
}

// Delete removes a post. Only the post's author may delete it.
func (s *PostService) Delete(ctx context.Context, postID, userID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := RequireOwner(post.UserID, userID); err != nil {
		return err
	}
	return s.posts.Delete(ctx, postID)
}

// Like records the acting user's like on a post. A user can like a given
// post at most once.
func (s *PostService) Like(ctx context.Context, postID, userID uint) ([]models.Like, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked, err := s.posts.IsLiked(ctx, post.ID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, models.NewValidationError("Post already liked")
	}

	if err := s.posts.Like(ctx, post.ID, userID); err != nil {
		return nil, err
	}

	updated, err := s.posts.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return updated.Likes, nil
}

// Unlike removes the acting user's like from a post. Unliking a post the
// user has not liked is a validation error.
func (s *PostService) Unlike(ctx context.Context, postID, userID uint) ([]models.Like, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.posts.Unlike(ctx, post.ID, userID); err != nil {
		return nil, err
	}

	updated, err := s.posts.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return updated.Likes, nil
}
