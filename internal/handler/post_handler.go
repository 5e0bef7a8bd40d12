package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saurabh1105/Socail-Connect/internal/hub"
	"github.com/saurabh1105/Socail-Connect/internal/repo"
	"github.com/saurabh1105/Socail-Connect/internal/service"
)

type PostHandler interface {
	Create(c *gin.Context)
	GetAll(c *gin.Context)
	Get(c *gin.Context)
	Delete(c *gin.Context)
	Like(c *gin.Context)
	Unlike(c *gin.Context)
	AddComment(c *gin.Context)
	RemoveComment(c *gin.Context)
	LiveFeed(c *gin.Context)
}

type postHandler struct {
	posts service.PostService
	feed  *hub.Hub
}

func NewPostHandler(posts service.PostService, feed *hub.Hub) PostHandler {
	return &postHandler{
		posts: posts,
		feed:  feed,
	}
}

type postRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *postHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	if errs := checkRequest(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), userID(c), req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *postHandler) GetAll(c *gin.Context) {
	posts, err := h.posts.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *postHandler) Get(c *gin.Context) {
	post, err := h.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *postHandler) Delete(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "post removed"})
}

func (h *postHandler) Like(c *gin.Context) {
	likes, err := h.posts.AddLike(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

func (h *postHandler) Unlike(c *gin.Context) {
	likes, err := h.posts.RemoveLike(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

func (h *postHandler) AddComment(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body"})
		return
	}
	if errs := checkRequest(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	comments, err := h.posts.AddComment(c.Request.Context(), userID(c), c.Param("id"), req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *postHandler) RemoveComment(c *gin.Context) {
	comments, err := h.posts.RemoveComment(c.Request.Context(), userID(c), c.Param("id"), c.Param("commentId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// LiveFeed upgrades the request to a websocket subscribed to post
// mutation events.
func (h *postHandler) LiveFeed(c *gin.Context) {
	h.feed.ServeWS(c.Writer, c.Request, userID(c))
}

func (h *postHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
	case errors.Is(err, service.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "comment does not exist"})
	case errors.Is(err, service.ErrAlreadyLiked):
		c.JSON(http.StatusConflict, gin.H{"msg": "post already liked"})
	case errors.Is(err, service.ErrNotLiked):
		c.JSON(http.StatusConflict, gin.H{"msg": "post has not yet been liked"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "user not authorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
	}
}
