package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saurabh1105/Socail-Connect/internal/model"
	"github.com/saurabh1105/Socail-Connect/internal/repo"
	"github.com/saurabh1105/Socail-Connect/internal/service"
)

func profileRouter(profiles service.ProfileService, users service.UserService, github service.GithubService) *gin.Engine {
	h := NewProfileHandler(profiles, users, github)
	router := gin.New()
	grp := router.Group("/api/profile")
	grp.GET("/me", asUser("u1"), h.Me)
	grp.GET("", h.GetAll)
	grp.GET("/user/:userId", h.GetByUser)
	grp.POST("", asUser("u1"), h.Save)
	grp.PUT("/experience", asUser("u1"), h.AddExperience)
	grp.DELETE("/experience/:expId", asUser("u1"), h.RemoveExperience)
	grp.PUT("/education", asUser("u1"), h.AddEducation)
	grp.DELETE("/education/:eduId", asUser("u1"), h.RemoveEducation)
	grp.GET("/github/:username", h.GithubRepos)
	return router
}

func TestMe_NoProfile(t *testing.T) {
	profiles := &stubProfileService{
		getByUserFn: func(ctx context.Context, userID string) (*model.Profile, error) {
			assert.Equal(t, "u1", userID)
			return nil, repo.ErrNotFound
		},
	}
	router := profileRouter(profiles, nil, nil)

	rec := doJSON(router, http.MethodGet, "/api/profile/me", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "there is no profile for this user", decodeBody(rec)["msg"])
}

func TestSave_ValidationErrors(t *testing.T) {
	router := profileRouter(&stubProfileService{}, nil, nil)

	rec := doJSON(router, http.MethodPost, "/api/profile", `{"company":"acme"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, FieldError{Param: "status", Msg: "status is required"})
	assert.Contains(t, body.Errors, FieldError{Param: "skills", Msg: "skills is required"})
}

func TestSave_ForwardsInput(t *testing.T) {
	var got service.ProfileInput
	profiles := &stubProfileService{
		saveFn: func(ctx context.Context, userID string, input service.ProfileInput) (*model.Profile, error) {
			got = input
			return &model.Profile{Status: input.Status}, nil
		},
	}
	router := profileRouter(profiles, nil, nil)

	rec := doJSON(router, http.MethodPost, "/api/profile",
		`{"status":"developer","skills":"go, js","githubusername":"gopher","twitter":"@g"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "developer", got.Status)
	assert.Equal(t, "go, js", got.Skills)
	assert.Equal(t, "gopher", got.GithubUsername)
	assert.Equal(t, "@g", got.Twitter)
}

func TestAddExperience_MissingTitle(t *testing.T) {
	router := profileRouter(&stubProfileService{}, nil, nil)

	rec := doJSON(router, http.MethodPut, "/api/profile/experience",
		`{"company":"acme","from":"2020-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, FieldError{Param: "title", Msg: "title is required"})
}

func TestAddExperience_OK(t *testing.T) {
	var got service.ExperienceInput
	profiles := &stubProfileService{
		addExpFn: func(ctx context.Context, userID string, input service.ExperienceInput) (*model.Profile, error) {
			got = input
			return &model.Profile{}, nil
		},
	}
	router := profileRouter(profiles, nil, nil)

	rec := doJSON(router, http.MethodPut, "/api/profile/experience",
		`{"title":"dev","company":"acme","from":"2020-01-01T00:00:00Z","current":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev", got.Title)
	assert.Equal(t, "acme", got.Company)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), got.From)
	assert.True(t, got.Current)
	assert.Nil(t, got.To)
}

func TestAddEducation_FriendlyFieldName(t *testing.T) {
	router := profileRouter(&stubProfileService{}, nil, nil)

	rec := doJSON(router, http.MethodPut, "/api/profile/education",
		`{"school":"mit","degree":"bs","from":"2018-09-01T00:00:00Z"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, FieldError{Param: "fieldofstudy", Msg: "field of study is required"})
}

func TestRemoveExperience_UnknownEntry(t *testing.T) {
	profiles := &stubProfileService{
		removeExpFn: func(ctx context.Context, userID, entryID string) (*model.Profile, error) {
			assert.Equal(t, "exp-404", entryID)
			return nil, service.ErrEntryNotFound
		},
	}
	router := profileRouter(profiles, nil, nil)

	rec := doJSON(router, http.MethodDelete, "/api/profile/experience/exp-404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGithubRepos_Passthrough(t *testing.T) {
	github := &stubGithubService{
		reposFn: func(ctx context.Context, username string) (json.RawMessage, error) {
			assert.Equal(t, "gopher", username)
			return json.RawMessage(`[{"name":"repo-one"}]`), nil
		},
	}
	router := profileRouter(&stubProfileService{}, nil, github)

	rec := doJSON(router, http.MethodGet, "/api/profile/github/gopher", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"repo-one"}]`, rec.Body.String())
}

func TestGithubRepos_NoProfile(t *testing.T) {
	github := &stubGithubService{
		reposFn: func(ctx context.Context, username string) (json.RawMessage, error) {
			return nil, service.ErrNoRepos
		},
	}
	router := profileRouter(&stubProfileService{}, nil, github)

	rec := doJSON(router, http.MethodGet, "/api/profile/github/nobody", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no github profile found", decodeBody(rec)["msg"])
}

func TestDeleteAccount(t *testing.T) {
	deleted := ""
	users := &stubUserService{
		deleteFn: func(ctx context.Context, userID string) error {
			deleted = userID
			return nil
		},
	}
	h := NewProfileHandler(&stubProfileService{}, users, nil)
	router := gin.New()
	router.DELETE("/api/profile", asUser("u1"), h.DeleteAccount)

	rec := doJSON(router, http.MethodDelete, "/api/profile", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", deleted)
	assert.Equal(t, "user deleted", decodeBody(rec)["msg"])
}
