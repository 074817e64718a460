package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillswaphq/skillswap/internal/model"
)

// ListPosts serves the feed, newest first.
func ListPosts(posts PostService) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, posts.List())
	}
}

// CreatePost publishes a swap advert under the signed-in member's profile.
func CreatePost(posts PostService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.CreatePostParams{}
		if err := c.Bind(params); err != nil {
			return err
		}

		post, err := posts.Create(currentUserID(c), params)
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusCreated, post)
	}
}

// LikePost bumps a post's like counter.
func LikePost(posts PostService) echo.HandlerFunc {
	return func(c echo.Context) error {
		post, err := posts.Like(model.PostID(c.Param("postID")))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, post)
	}
}
