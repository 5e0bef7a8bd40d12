package service

import (
	"context"
	"sync"

	"github.com/saurabh1105/Socail-Connect/internal/event"
	"github.com/saurabh1105/Socail-Connect/internal/model"
	"github.com/saurabh1105/Socail-Connect/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes for service tests.

type fakeProfileRepo struct {
	profiles map[string]*model.Profile // keyed by user id hex
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*model.Profile)}
}

func (f *fakeProfileRepo) FindByUser(_ context.Context, userID string) (*model.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) FindAll(_ context.Context) ([]model.Profile, error) {
	out := make([]model.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, userID string, fields bson.M) (*model.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		oid, _ := primitive.ObjectIDFromHex(userID)
		p = &model.Profile{User: oid, Experience: []model.Experience{}, Education: []model.Education{}}
		f.profiles[userID] = p
	}
	for k, v := range fields {
		switch k {
		case "status":
			p.Status = v.(string)
		case "company":
			p.Company = v.(string)
		case "location":
			p.Location = v.(string)
		case "bio":
			p.Bio = v.(string)
		case "skills":
			p.Skills = v.([]string)
		}
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) SaveExperience(_ context.Context, userID string, list []model.Experience) (*model.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	p.Experience = list
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) SaveEducation(_ context.Context, userID string, list []model.Education) (*model.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	p.Education = list
	cp := *p
	return &cp, nil
}

type fakeUserRepo struct {
	users map[string]*model.User // keyed by id hex
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) add(name string) *model.User {
	u := &model.User{ID: primitive.NewObjectID(), Name: name, Email: name + "@example.com", Avatar: "//gravatar/" + name}
	f.users[u.ID.Hex()] = u
	return u
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, repo.ErrEmailTaken
		}
	}
	user.ID = primitive.NewObjectID()
	f.users[user.ID.Hex()] = user
	return user, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) DeleteCascade(_ context.Context, userID string) error {
	if _, ok := f.users[userID]; !ok {
		return repo.ErrNotFound
	}
	delete(f.users, userID)
	return nil
}

type fakePostRepo struct {
	posts map[string]*model.Post // keyed by id hex
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*model.Post)}
}

func (f *fakePostRepo) Create(_ context.Context, post *model.Post) (*model.Post, error) {
	post.ID = primitive.NewObjectID()
	if post.Likes == nil {
		post.Likes = []model.Like{}
	}
	if post.Comments == nil {
		post.Comments = []model.Comment{}
	}
	f.posts[post.ID.Hex()] = post
	cp := *post
	return &cp, nil
}

func (f *fakePostRepo) FindByID(_ context.Context, id string) (*model.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) FindAll(_ context.Context) ([]model.Post, error) {
	out := make([]model.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePostRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) SaveLikes(_ context.Context, postID string, likes []model.Like) (*model.Post, error) {
	p, ok := f.posts[postID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	p.Likes = likes
	cp := *p
	return &cp, nil
}

func (f *fakePostRepo) SaveComments(_ context.Context, postID string, comments []model.Comment) (*model.Post, error) {
	p, ok := f.posts[postID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	p.Comments = comments
	cp := *p
	return &cp, nil
}

// capturingFeed records published feed events.
type capturingFeed struct {
	mu     sync.Mutex
	events []event.FeedEvent
}

func (c *capturingFeed) Publish(ev event.FeedEvent) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
}

func (c *capturingFeed) names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.events))
	for i, ev := range c.events {
		out[i] = ev.Event
	}
	return out
}
