package service

import (
	"context"
	"testing"

	"github.com/saurabh1105/Socail-Connect/internal/event"
	"github.com/saurabh1105/Socail-Connect/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newPostFixture(t *testing.T) (PostService, *fakeUserRepo, *fakePostRepo, *capturingFeed) {
	t.Helper()
	users := newFakeUserRepo()
	posts := newFakePostRepo()
	feed := &capturingFeed{}
	return NewPostService(posts, users, feed), users, posts, feed
}

func TestPostService_Create(t *testing.T) {
	svc, users, _, feed := newPostFixture(t)
	author := users.add("alice")

	post, err := svc.Create(context.Background(), author.ID.Hex(), "hello world")

	require.NoError(t, err)
	assert.Equal(t, "hello world", post.Text)
	assert.Equal(t, "alice", post.Name)
	assert.Equal(t, author.Avatar, post.Avatar)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, []string{event.EventPostCreated}, feed.names())
}

func TestPostService_AddLike_RejectsDuplicate(t *testing.T) {
	svc, users, _, _ := newPostFixture(t)
	author := users.add("alice")
	liker := users.add("bob")
	post, err := svc.Create(context.Background(), author.ID.Hex(), "hi")
	require.NoError(t, err)

	likes, err := svc.AddLike(context.Background(), liker.ID.Hex(), post.ID.Hex())
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, liker.ID, likes[0].User)

	_, err = svc.AddLike(context.Background(), liker.ID.Hex(), post.ID.Hex())
	assert.ErrorIs(t, err, ErrAlreadyLiked)
}

func TestPostService_RemoveLike(t *testing.T) {
	svc, users, _, _ := newPostFixture(t)
	author := users.add("alice")
	liker := users.add("bob")
	post, err := svc.Create(context.Background(), author.ID.Hex(), "hi")
	require.NoError(t, err)

	// removing before liking is rejected
	_, err = svc.RemoveLike(context.Background(), liker.ID.Hex(), post.ID.Hex())
	assert.ErrorIs(t, err, ErrNotLiked)

	_, err = svc.AddLike(context.Background(), liker.ID.Hex(), post.ID.Hex())
	require.NoError(t, err)

	likes, err := svc.RemoveLike(context.Background(), liker.ID.Hex(), post.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestPostService_LikesIndependentPerUser(t *testing.T) {
	svc, users, _, _ := newPostFixture(t)
	author := users.add("alice")
	post, err := svc.Create(context.Background(), author.ID.Hex(), "hi")
	require.NoError(t, err)

	u1 := users.add("bob")
	u2 := users.add("carol")
	_, err = svc.AddLike(context.Background(), u1.ID.Hex(), post.ID.Hex())
	require.NoError(t, err)
	likes, err := svc.AddLike(context.Background(), u2.ID.Hex(), post.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, likes, 2)

	likes, err = svc.RemoveLike(context.Background(), u1.ID.Hex(), post.ID.Hex())
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, u2.ID, likes[0].User)
}

func TestPostService_Delete_AuthorOnly(t *testing.T) {
	svc, users, posts, feed := newPostFixture(t)
	author := users.add("alice")
	other := users.add("bob")
	post, err := svc.Create(context.Background(), author.ID.Hex(), "hi")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), other.ID.Hex(), post.ID.Hex())
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Len(t, posts.posts, 1)

	err = svc.Delete(context.Background(), author.ID.Hex(), post.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, posts.posts)
	assert.Contains(t, feed.names(), event.EventPostDeleted)
}

func TestPostService_Comments(t *testing.T) {
	svc, users, _, _ := newPostFixture(t)
	author := users.add("alice")
	commenter := users.add("bob")
	post, err := svc.Create(context.Background(), author.ID.Hex(), "hi")
	require.NoError(t, err)

	comments, err := svc.AddComment(context.Background(), commenter.ID.Hex(), post.ID.Hex(), "first!")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "first!", comments[0].Text)
	assert.Equal(t, "bob", comments[0].Name)
	assert.NotEmpty(t, comments[0].ID)

	// newest comment first
	comments, err = svc.AddComment(context.Background(), author.ID.Hex(), post.ID.Hex(), "second")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)

	// only the comment author can remove it
	_, err = svc.RemoveComment(context.Background(), author.ID.Hex(), post.ID.Hex(), comments[1].ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	comments, err = svc.RemoveComment(context.Background(), commenter.ID.Hex(), post.ID.Hex(), comments[1].ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestPostService_RemoveComment_Unknown(t *testing.T) {
	svc, users, _, _ := newPostFixture(t)
	author := users.add("alice")
	post, err := svc.Create(context.Background(), author.ID.Hex(), "hi")
	require.NoError(t, err)

	_, err = svc.RemoveComment(context.Background(), author.ID.Hex(), post.ID.Hex(), "bogus")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestPostService_UnknownPost(t *testing.T) {
	svc, users, _, _ := newPostFixture(t)
	u := users.add("alice")

	_, err := svc.AddLike(context.Background(), u.ID.Hex(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
