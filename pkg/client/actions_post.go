package client

import (
	"context"
	"net/http"
)

// GetPosts loads the feed, newest first.
func (c *Client) GetPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if apiErr := c.do(ctx, http.MethodGet, "/api/posts", nil, &posts); apiErr != nil {
		c.fail(EventPostError, apiErr)
		return nil, apiErr
	}

	c.emit(EventGetPosts, posts)
	return posts, nil
}

// GetPost loads a single post.
func (c *Client) GetPost(ctx context.Context, postID string) (*Post, error) {
	var post Post
	if apiErr := c.do(ctx, http.MethodGet, "/api/posts/"+postID, nil, &post); apiErr != nil {
		c.fail(EventPostError, apiErr)
		return nil, apiErr
	}

	c.emit(EventGetPost, &post)
	return &post, nil
}

// AddPost publishes a post.
func (c *Client) AddPost(ctx context.Context, text string) (*Post, error) {
	var post Post
	if apiErr := c.do(ctx, http.MethodPost, "/api/posts", map[string]string{"text": text}, &post); apiErr != nil {
		c.fail(EventPostError, apiErr)
		return nil, apiErr
	}

	c.emit(EventAddPost, &post)
	c.alerts.Push("Post Created", SeveritySuccess)
	return &post, nil
}

// DeletePost removes one of the caller's posts.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	if apiErr := c.do(ctx, http.MethodDelete, "/api/posts/"+postID, nil, nil); apiErr != nil {
		c.fail(EventPostError, apiErr)
		return apiErr
	}

	c.emit(EventDeletePost, postID)
	c.alerts.Push("Post Removed", SeveritySuccess)
	return nil
}

// AddLike likes a post and reports the post's new likes array.
func (c *Client) AddLike(ctx context.Context, postID string) ([]Like, error) {
	var likes []Like
	if apiErr := c.do(ctx, http.MethodPut, "/api/posts/like/"+postID, nil, &likes); apiErr != nil {
		c.fail(EventPostError, apiErr)
		return nil, apiErr
	}

	c.emit(EventUpdateLikes, LikesUpdate{PostID: postID, Likes: likes})
	return likes, nil
}

// RemoveLike withdraws a like.
func (c *Client) RemoveLike(ctx context.Context, postID string) ([]Like, error) {
	var likes []Like
	if apiErr := c.do(ctx, http.MethodPut, "/api/posts/unlike/"+postID, nil, &likes); apiErr != nil {
		c.fail(EventPostError, apiErr)
		return nil, apiErr
	}

	c.emit(EventUpdateLikes, LikesUpdate{PostID: postID, Likes: likes})
	return likes, nil
}

// AddComment comments on a post and reports the post's new comments.
func (c *Client) AddComment(ctx context.Context, postID, text string) ([]Comment, error) {
	var comments []Comment
	if apiErr := c.do(ctx, http.MethodPost, "/api/posts/comment/"+postID, map[string]string{"text": text}, &comments); apiErr != nil {
		c.fail(EventPostError, apiErr)
		return nil, apiErr
	}

	c.emit(EventAddComment, CommentsUpdate{PostID: postID, Comments: comments})
	c.alerts.Push("Comment Added", SeveritySuccess)
	return comments, nil
}

// DeleteComment removes one of the caller's comments.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID string) ([]Comment, error) {
	var comments []Comment
	if apiErr := c.do(ctx, http.MethodDelete, "/api/posts/comment/"+postID+"/"+commentID, nil, &comments); apiErr != nil {
		c.fail(EventPostError, apiErr)
		return nil, apiErr
	}

	c.emit(EventRemoveComment, CommentsUpdate{PostID: postID, Comments: comments})
	c.alerts.Push("Comment Removed", SeveritySuccess)
	return comments, nil
}
