package service

import (
	"context"
	"strings"
	"time"

	"github.com/saurabh1105/Socail-Connect/internal/model"
	"github.com/saurabh1105/Socail-Connect/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
)

// ProfileInput carries the optional profile form fields. Empty strings
// mean "not provided" and are left out of the update document.
type ProfileInput struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type ExperienceInput struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationInput struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

type ProfileService interface {
	GetByUser(ctx context.Context, userID string) (*model.Profile, error)
	GetAll(ctx context.Context) ([]model.Profile, error)
	Save(ctx context.Context, userID string, input ProfileInput) (*model.Profile, error)
	AddExperience(ctx context.Context, userID string, input ExperienceInput) (*model.Profile, error)
	RemoveExperience(ctx context.Context, userID, entryID string) (*model.Profile, error)
	AddEducation(ctx context.Context, userID string, input EducationInput) (*model.Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID string) (*model.Profile, error)
}

type profileService struct {
	profiles repo.ProfileRepository
}

func NewProfileService(profiles repo.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) GetByUser(ctx context.Context, userID string) (*model.Profile, error) {
	return s.profiles.FindByUser(ctx, userID)
}

func (s *profileService) GetAll(ctx context.Context) ([]model.Profile, error) {
	return s.profiles.FindAll(ctx)
}

func (s *profileService) Save(ctx context.Context, userID string, input ProfileInput) (*model.Profile, error) {
	return s.profiles.Upsert(ctx, userID, buildProfileUpdate(input))
}

// buildProfileUpdate turns the optional form fields into a partial
// update document: only present fields are applied, and the skills
// string is split on commas with whitespace trimmed.
func buildProfileUpdate(input ProfileInput) bson.M {
	fields := bson.M{}

	set := func(key, value string) {
		if value != "" {
			fields[key] = value
		}
	}
	set("company", input.Company)
	set("website", input.Website)
	set("location", input.Location)
	set("status", input.Status)
	set("bio", input.Bio)
	set("githubusername", input.GithubUsername)
	set("social.youtube", input.Youtube)
	set("social.twitter", input.Twitter)
	set("social.facebook", input.Facebook)
	set("social.linkedin", input.Linkedin)
	set("social.instagram", input.Instagram)

	if input.Skills != "" {
		fields["skills"] = SplitSkills(input.Skills)
	}

	return fields
}

// SplitSkills turns a comma separated skills string into a trimmed list.
func SplitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (s *profileService) AddExperience(ctx context.Context, userID string, input ExperienceInput) (*model.Profile, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := model.Experience{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}
	list := InsertFront(profile.Experience, entry, func(e *model.Experience, id string) { e.ID = id })
	return s.profiles.SaveExperience(ctx, userID, list)
}

func (s *profileService) RemoveExperience(ctx context.Context, userID, entryID string) (*model.Profile, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	list, err := RemoveByID(profile.Experience, entryID, func(e model.Experience) string { return e.ID })
	if err != nil {
		return nil, err
	}
	return s.profiles.SaveExperience(ctx, userID, list)
}

func (s *profileService) AddEducation(ctx context.Context, userID string, input EducationInput) (*model.Profile, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := model.Education{
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}
	list := InsertFront(profile.Education, entry, func(e *model.Education, id string) { e.ID = id })
	return s.profiles.SaveEducation(ctx, userID, list)
}

func (s *profileService) RemoveEducation(ctx context.Context, userID, entryID string) (*model.Profile, error) {
	profile, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	list, err := RemoveByID(profile.Education, entryID, func(e model.Education) string { return e.ID })
	if err != nil {
		return nil, err
	}
	return s.profiles.SaveEducation(ctx, userID, list)
}
