package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	cfg := &config.Config{
		JWTSecret: "test-secret-key-for-handler-tests",
		Port:      "0",
		Env:       "test",
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	s := &Server{
		config:      cfg,
		db:          db,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
	s.profileService = service.NewProfileService(profileRepo)
	s.postService = service.NewPostService(postRepo, userRepo)
	s.commentService = service.NewCommentService(commentRepo, postRepo, userRepo)
	s.accountService = service.NewAccountService(db)
	return s
}

// newTestApp registers the API routes on a bare Fiber app, replacing the
// token check with a middleware that trusts the userID supplied per request
// via the X-Test-User header.
func newTestApp(s *Server) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if h := c.Get("X-Test-User"); h != "" {
			id, err := strconv.ParseUint(h, 10, 32)
			if err != nil {
				panic("malformed X-Test-User header: " + h)
			}
			c.Locals("userID", uint(id))
		}
		return c.Next()
	})

	app.Post("/api/users", s.Register)
	app.Post("/api/auth", s.Login)
	app.Get("/api/auth", s.CurrentUser)

	app.Get("/api/profiles", s.GetProfiles)
	app.Get("/api/profiles/user/:userId", s.GetProfileByUser)
	app.Get("/api/profiles/me", s.GetMyProfile)
	app.Post("/api/profiles", s.UpsertProfile)
	app.Delete("/api/profiles", s.DeleteAccount)
	app.Put("/api/profiles/experience", s.AddExperience)
	app.Delete("/api/profiles/experience/:expId", s.DeleteExperience)
	app.Put("/api/profiles/education", s.AddEducation)
	app.Delete("/api/profiles/education/:eduId", s.DeleteEducation)

	app.Post("/api/posts", s.CreatePost)
	app.Get("/api/posts", s.GetPosts)
	app.Post("/api/posts/:id/like", s.LikePost)
	app.Delete("/api/posts/:id/like", s.UnlikePost)
	app.Post("/api/posts/:id/comments", s.CreateComment)
	app.Delete("/api/posts/:id/comments/:commentId", s.DeleteComment)
	app.Get("/api/posts/:id", s.GetPost)
	app.Delete("/api/posts/:id", s.DeletePost)

	return app
}

func createTestUser(t *testing.T, s *Server, name, email string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Avatar:   "https://www.gravatar.com/avatar/test",
	}
	if err := s.db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, userID string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Test-User", userID)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	_ = resp.Body.Close()
	return resp, raw
}
