package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saurabh1105/Socail-Connect/internal/repo"
	"github.com/saurabh1105/Socail-Connect/internal/service"
)

type ProfileHandler interface {
	Me(c *gin.Context)
	GetAll(c *gin.Context)
	GetByUser(c *gin.Context)
	Save(c *gin.Context)
	DeleteAccount(c *gin.Context)
	AddExperience(c *gin.Context)
	RemoveExperience(c *gin.Context)
	AddEducation(c *gin.Context)
	RemoveEducation(c *gin.Context)
	GithubRepos(c *gin.Context)
}

type profileHandler struct {
	profiles service.ProfileService
	users    service.UserService
	github   service.GithubService
}

func NewProfileHandler(profiles service.ProfileService, users service.UserService, github service.GithubService) ProfileHandler {
	return &profileHandler{
		profiles: profiles,
		users:    users,
		github:   github,
	}
}

func (h *profileHandler) Me(c *gin.Context) {
	profile, err := h.profiles.GetByUser(c.Request.Context(), userID(c))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "there is no profile for this user"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *profileHandler) GetAll(c *gin.Context) {
	profiles, err := h.profiles.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
		return
	}

	c.JSON(http.StatusOK, profiles)
}

func (h *profileHandler) GetByUser(c *gin.Context) {
	profile, err := h.profiles.GetByUser(c.Request.Context(), c.Param("userId"))
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "there is no profile for this user"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

type profileRequest struct {
	Status         string `json:"status" validate:"required"`
	Skills         string `json:"skills" validate:"required"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

func (h *profileHandler) Save(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	if errs := checkRequest(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	profile, err := h.profiles.Save(c.Request.Context(), userID(c), service.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         req.Skills,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *profileHandler) DeleteAccount(c *gin.Context) {
	if err := h.users.DeleteAccount(c.Request.Context(), userID(c)); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "user deleted"})
}

type experienceRequest struct {
	Title       string     `json:"title" validate:"required"`
	Company     string     `json:"company" validate:"required"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from" validate:"required"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

func (h *profileHandler) AddExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	if errs := checkRequest(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	profile, err := h.profiles.AddExperience(c.Request.Context(), userID(c), service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	h.respondProfile(c, profile, err)
}

func (h *profileHandler) RemoveExperience(c *gin.Context) {
	profile, err := h.profiles.RemoveExperience(c.Request.Context(), userID(c), c.Param("expId"))
	h.respondProfile(c, profile, err)
}

type educationRequest struct {
	School       string     `json:"school" validate:"required"`
	Degree       string     `json:"degree" validate:"required"`
	FieldOfStudy string     `json:"fieldofstudy" validate:"required"`
	From         time.Time  `json:"from" validate:"required"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

func (h *profileHandler) AddEducation(c *gin.Context) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	if errs := checkRequest(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	profile, err := h.profiles.AddEducation(c.Request.Context(), userID(c), service.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	h.respondProfile(c, profile, err)
}

func (h *profileHandler) RemoveEducation(c *gin.Context) {
	profile, err := h.profiles.RemoveEducation(c.Request.Context(), userID(c), c.Param("eduId"))
	h.respondProfile(c, profile, err)
}

func (h *profileHandler) GithubRepos(c *gin.Context) {
	body, err := h.github.Repos(c.Request.Context(), c.Param("username"))
	if errors.Is(err, service.ErrNoRepos) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "no github profile found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

func (h *profileHandler) respondProfile(c *gin.Context, profile interface{}, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "there is no profile for this user"})
	case errors.Is(err, service.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "entry not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
	default:
		c.JSON(http.StatusOK, profile)
	}
}
