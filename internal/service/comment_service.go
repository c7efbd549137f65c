package service

import (
	"context"
	"strings"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// CommentService implements comment operations on posts.
type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	users    repository.UserRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, users repository.UserRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users}
}

// Create adds a comment to a post, denormalizing the commenter's name and
// avatar, and returns the post's comments newest first.
func (s *CommentService) Create(ctx context.Context, postID, userID uint, text string) ([]models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewFieldErrors("Text is required")
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		Text:   text,
		Name:   user.Name,
		Avatar: user.Avatar,
		UserID: user.ID,
		PostID: post.ID,
	}
	if err := s.comments.Create(ctx, &comment); err != nil {
		return nil, err
	}

	updated, err := s.posts.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return updated.Comments, nil
}

// Delete removes one comment from a post. Only the comment's author may
// delete it. A comment id that does not belong to the given post is treated
// as absent.
func (s *CommentService) Delete(ctx context.Context, postID, commentID, userID uint) ([]models.Comment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != post.ID {
		return nil, models.NewNotFoundError("Comment")
	}
	if err := RequireOwner(comment.UserID, userID); err != nil {
		return nil, err
	}

	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		return nil, err
	}

	updated, err := s.posts.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return updated.Comments, nil
}
