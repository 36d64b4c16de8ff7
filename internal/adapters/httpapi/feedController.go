package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	feedapp "mart/internal/core/feed/service"
)

type FeedController struct{ fc FeedUseCase }

func NewFeedController(fc FeedUseCase) *FeedController { return &FeedController{fc: fc} }

// GetFeed returns the caller's home timeline.
func (ctl *FeedController) GetFeed(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	posts, err := ctl.fc.FeedFor(c.Request.Context(), userID.(string), limit, offset)
	switch {
	case errors.Is(err, feedapp.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch feed"})
	default:
		c.JSON(http.StatusOK, gin.H{"posts": posts})
	}
}

// GetExplore returns the global timeline.
func (ctl *FeedController) GetExplore(c *gin.Context) {
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	posts, err := ctl.fc.Explore(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetAuthorFeed returns one user's posts for their profile page.
func (ctl *FeedController) GetAuthorFeed(c *gin.Context) {
	limit, offset, ok := pageParams(c)
	if !ok {
		return
	}

	posts, err := ctl.fc.AuthorFeed(c.Request.Context(), c.Param("username"), limit, offset)
	switch {
	case errors.Is(err, feedapp.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch posts"})
	default:
		c.JSON(http.StatusOK, gin.H{"posts": posts})
	}
}

func pageParams(c *gin.Context) (limit, offset int, ok bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return 0, 0, false
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return 0, 0, false
	}
	return limit, offset, true
}
