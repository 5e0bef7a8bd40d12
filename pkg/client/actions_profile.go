package client

import (
	"context"
	"encoding/json"
	"net/http"
)

// ProfileForm carries the profile editor's fields. Empty strings are
// simply not applied server-side.
type ProfileForm struct {
	Company        string `json:"company,omitempty"`
	Website        string `json:"website,omitempty"`
	Location       string `json:"location,omitempty"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Bio            string `json:"bio,omitempty"`
	GithubUsername string `json:"githubusername,omitempty"`
	Youtube        string `json:"youtube,omitempty"`
	Twitter        string `json:"twitter,omitempty"`
	Facebook       string `json:"facebook,omitempty"`
	Linkedin       string `json:"linkedin,omitempty"`
	Instagram      string `json:"instagram,omitempty"`
}

type ExperienceForm struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type EducationForm struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// GetCurrentProfile loads the authenticated user's profile. The state
// is cleared first so a stale profile never flashes while loading.
func (c *Client) GetCurrentProfile(ctx context.Context) (*Profile, error) {
	c.emit(EventClearProfile, nil)

	var profile Profile
	if apiErr := c.do(ctx, http.MethodGet, "/api/profile/me", nil, &profile); apiErr != nil {
		c.fail(EventProfileError, apiErr)
		return nil, apiErr
	}

	c.emit(EventGetProfile, &profile)
	return &profile, nil
}

// GetProfiles loads every profile.
func (c *Client) GetProfiles(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	if apiErr := c.do(ctx, http.MethodGet, "/api/profile", nil, &profiles); apiErr != nil {
		c.fail(EventProfileError, apiErr)
		return nil, apiErr
	}

	c.emit(EventGetProfiles, profiles)
	return profiles, nil
}

// GetProfileByID loads another user's profile.
func (c *Client) GetProfileByID(ctx context.Context, userID string) (*Profile, error) {
	var profile Profile
	if apiErr := c.do(ctx, http.MethodGet, "/api/profile/user/"+userID, nil, &profile); apiErr != nil {
		c.fail(EventProfileError, apiErr)
		return nil, apiErr
	}

	c.emit(EventGetProfile, &profile)
	return &profile, nil
}

// GetGithubRepos loads the user's recent public repositories through
// the server-side proxy.
func (c *Client) GetGithubRepos(ctx context.Context, username string) (json.RawMessage, error) {
	var repos json.RawMessage
	if apiErr := c.do(ctx, http.MethodGet, "/api/profile/github/"+username, nil, &repos); apiErr != nil {
		c.fail(EventProfileError, apiErr)
		return nil, apiErr
	}

	c.emit(EventGetRepos, repos)
	return repos, nil
}

// CreateProfile creates or updates the profile. onSuccess, when
// non-nil, runs after a successful create — callers use it to navigate
// away from the editor.
func (c *Client) CreateProfile(ctx context.Context, form ProfileForm, edit bool, onSuccess func()) (*Profile, error) {
	var profile Profile
	if apiErr := c.do(ctx, http.MethodPost, "/api/profile", form, &profile); apiErr != nil {
		c.fail(EventProfileError, apiErr)
		return nil, apiErr
	}

	c.emit(EventGetProfile, &profile)
	if edit {
		c.alerts.Push("Profile Updated", SeveritySuccess)
	} else {
		c.alerts.Push("Profile Created", SeveritySuccess)
		if onSuccess != nil {
			onSuccess()
		}
	}
	return &profile, nil
}

// AddExperience prepends a work history entry.
func (c *Client) AddExperience(ctx context.Context, form ExperienceForm, onSuccess func()) (*Profile, error) {
	var profile Profile
	if apiErr := c.do(ctx, http.MethodPut, "/api/profile/experience", form, &profile); apiErr != nil {
		c.fail(EventProfileError, apiErr)
		return nil, apiErr
	}

	c.emit(EventUpdateProfile, &profile)
	c.alerts.Push("Experience Added", SeveritySuccess)
	if onSuccess != nil {
		onSuccess()
	}
	return &profile, nil
}

// AddEducation prepends a study history entry.
func (c *Client) AddEducation(ctx context.Context, form EducationForm, onSuccess func()) (*Profile, error) {
	var profile Profile
	if apiErr := c.do(ctx, http.MethodPut, "/api/profile/education", form, &profile); apiErr != nil {
		c.fail(EventProfileError, apiErr)
		return nil, apiErr
	}

	c.emit(EventUpdateProfile, &profile)
	c.alerts.Push("Education Added", SeveritySuccess)
	if onSuccess != nil {
		onSuccess()
	}
	return &profile, nil
}

// DeleteExperience removes a work history entry by id.
func (c *Client) DeleteExperience(ctx context.Context, id string) (*Profile, error) {
	var profile Profile
	if apiErr := c.do(ctx, http.MethodDelete, "/api/profile/experience/"+id, nil, &profile); apiErr != nil {
		c.fail(EventProfileError, apiErr)
		return nil, apiErr
	}

	c.emit(EventUpdateProfile, &profile)
	c.alerts.Push("Experience Removed", SeveritySuccess)
	return &profile, nil
}

// DeleteEducation removes a study history entry by id.
func (c *Client) DeleteEducation(ctx context.Context, id string) (*Profile, error) {
	var profile Profile
	if apiErr := c.do(ctx, http.MethodDelete, "/api/profile/education/"+id, nil, &profile); apiErr != nil {
		c.fail(EventProfileError, apiErr)
		return nil, apiErr
	}

	c.emit(EventUpdateProfile, &profile)
	c.alerts.Push("Education Removed", SeveritySuccess)
	return &profile, nil
}
