package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillswaphq/skillswap/internal/model"
)

type loginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func setSessionCookie(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	})
}

// Login signs a member in, provisioning a fresh account when the email has
// never been seen.
func Login(identity IdentityService, sessions SessionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &loginParams{}
		if err := c.Bind(params); err != nil {
			return err
		}

		user, err := identity.AuthenticateOrProvision(params.Email, params.Password)
		if err != nil {
			return toHTTPError(err)
		}

		sessionID, err := sessions.Start(user.ID)
		if err != nil {
			return toHTTPError(err)
		}
		setSessionCookie(c, sessionID)

		return c.JSON(http.StatusOK, user)
	}
}

// Register creates a member from the sign-up form.
func Register(identity IdentityService, sessions SessionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.CreateUserParams{}
		if err := c.Bind(params); err != nil {
			return err
		}

		user, err := identity.Create(params)
		if err != nil {
			return toHTTPError(err)
		}

		sessionID, err := sessions.Start(user.ID)
		if err != nil {
			return toHTTPError(err)
		}
		setSessionCookie(c, sessionID)

		return c.JSON(http.StatusCreated, user)
	}
}

func Logout(sessions SessionService) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookie)
		if err == nil {
			if err := sessions.End(cookie.Value); err != nil {
				return toHTTPError(err)
			}
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// CurrentUser returns the signed-in member's own record.
func CurrentUser(identity IdentityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := identity.FindByID(currentUserID(c))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, user)
	}
}

// UpdateProfile merges a partial edit into the signed-in member's record.
// Members can only edit themselves; there is no path to another profile.
func UpdateProfile(identity IdentityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.UpdateUserParams{}
		if err := c.Bind(params); err != nil {
			return err
		}

		user, err := identity.Update(currentUserID(c), params)
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, user)
	}
}
