package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skillswaphq/skillswap/internal/model"
	"github.com/skillswaphq/skillswap/internal/query"
)

const defaultPageSize = 12

type browsePage struct {
	Users []model.User `json:"users"`
	Stats query.Stats  `json:"stats"`
	Page  int          `json:"page"`
	Total int          `json:"total"`
}

// BrowseUsers serves the directory: search over names and skills, an
// availability filter, and 1-indexed pagination. The signed-in member never
// appears in their own results.
func BrowseUsers(identity IdentityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		search := c.QueryParam("search")
		availability := model.Availability(c.QueryParam("availability"))
		page := intParam(c, "page", 1)
		size := intParam(c, "size", defaultPageSize)

		matched := query.FilterUsers(identity.Users(), search, availability, currentUserID(c))

		return c.JSON(http.StatusOK, browsePage{
			Users: query.Paginate(matched, page, size),
			Stats: query.DirectoryStats(matched),
			Page:  page,
			Total: len(matched),
		})
	}
}

// GetUser serves one member's public card.
func GetUser(identity IdentityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := identity.FindByID(model.UserID(c.Param("userID")))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, user)
	}
}

func intParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
