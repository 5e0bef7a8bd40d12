package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/saurabh1105/Socail-Connect/internal/auth"
	"github.com/saurabh1105/Socail-Connect/internal/model"
	"github.com/saurabh1105/Socail-Connect/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser injects an authenticated principal the way RequireAuth would.
func asUser(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(auth.WithUserID(c.Request.Context(), uid))
		c.Next()
	}
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(rec *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		return nil
	}
	return out
}

type stubUserService struct {
	registerFn func(ctx context.Context, name, email, password string) (string, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
	loadFn     func(ctx context.Context, userID string) (*model.User, error)
	deleteFn   func(ctx context.Context, userID string) error
}

func (s *stubUserService) Register(ctx context.Context, name, email, password string) (string, error) {
	return s.registerFn(ctx, name, email, password)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) Load(ctx context.Context, userID string) (*model.User, error) {
	return s.loadFn(ctx, userID)
}

func (s *stubUserService) DeleteAccount(ctx context.Context, userID string) error {
	return s.deleteFn(ctx, userID)
}

type stubProfileService struct {
	getByUserFn  func(ctx context.Context, userID string) (*model.Profile, error)
	getAllFn     func(ctx context.Context) ([]model.Profile, error)
	saveFn       func(ctx context.Context, userID string, input service.ProfileInput) (*model.Profile, error)
	addExpFn     func(ctx context.Context, userID string, input service.ExperienceInput) (*model.Profile, error)
	removeExpFn  func(ctx context.Context, userID, entryID string) (*model.Profile, error)
	addEduFn     func(ctx context.Context, userID string, input service.EducationInput) (*model.Profile, error)
	removeEduFn  func(ctx context.Context, userID, entryID string) (*model.Profile, error)
}

func (s *stubProfileService) GetByUser(ctx context.Context, userID string) (*model.Profile, error) {
	return s.getByUserFn(ctx, userID)
}

func (s *stubProfileService) GetAll(ctx context.Context) ([]model.Profile, error) {
	return s.getAllFn(ctx)
}

func (s *stubProfileService) Save(ctx context.Context, userID string, input service.ProfileInput) (*model.Profile, error) {
	return s.saveFn(ctx, userID, input)
}

func (s *stubProfileService) AddExperience(ctx context.Context, userID string, input service.ExperienceInput) (*model.Profile, error) {
	return s.addExpFn(ctx, userID, input)
}

func (s *stubProfileService) RemoveExperience(ctx context.Context, userID, entryID string) (*model.Profile, error) {
	return s.removeExpFn(ctx, userID, entryID)
}

func (s *stubProfileService) AddEducation(ctx context.Context, userID string, input service.EducationInput) (*model.Profile, error) {
	return s.addEduFn(ctx, userID, input)
}

func (s *stubProfileService) RemoveEducation(ctx context.Context, userID, entryID string) (*model.Profile, error) {
	return s.removeEduFn(ctx, userID, entryID)
}

type stubGithubService struct {
	reposFn func(ctx context.Context, username string) (json.RawMessage, error)
}

func (s *stubGithubService) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	return s.reposFn(ctx, username)
}

type stubPostService struct {
	createFn        func(ctx context.Context, userID, text string) (*model.Post, error)
	getFn           func(ctx context.Context, postID string) (*model.Post, error)
	getAllFn        func(ctx context.Context) ([]model.Post, error)
	deleteFn        func(ctx context.Context, userID, postID string) error
	addLikeFn       func(ctx context.Context, userID, postID string) ([]model.Like, error)
	removeLikeFn    func(ctx context.Context, userID, postID string) ([]model.Like, error)
	addCommentFn    func(ctx context.Context, userID, postID, text string) ([]model.Comment, error)
	removeCommentFn func(ctx context.Context, userID, postID, commentID string) ([]model.Comment, error)
}

func (s *stubPostService) Create(ctx context.Context, userID, text string) (*model.Post, error) {
	return s.createFn(ctx, userID, text)
}

func (s *stubPostService) Get(ctx context.Context, postID string) (*model.Post, error) {
	return s.getFn(ctx, postID)
}

func (s *stubPostService) GetAll(ctx context.Context) ([]model.Post, error) {
	return s.getAllFn(ctx)
}

func (s *stubPostService) Delete(ctx context.Context, userID, postID string) error {
	return s.deleteFn(ctx, userID, postID)
}

func (s *stubPostService) AddLike(ctx context.Context, userID, postID string) ([]model.Like, error) {
	return s.addLikeFn(ctx, userID, postID)
}

func (s *stubPostService) RemoveLike(ctx context.Context, userID, postID string) ([]model.Like, error) {
	return s.removeLikeFn(ctx, userID, postID)
}

func (s *stubPostService) AddComment(ctx context.Context, userID, postID, text string) ([]model.Comment, error) {
	return s.addCommentFn(ctx, userID, postID, text)
}

func (s *stubPostService) RemoveComment(ctx context.Context, userID, postID, commentID string) ([]model.Comment, error) {
	return s.removeCommentFn(ctx, userID, postID, commentID)
}
