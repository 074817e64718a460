// Package handlers exposes the core stores to the browser UI as a JSON API.
// Handlers hold no state of their own: each is a constructor taking the
// narrow service interface it consumes.
package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillswaphq/skillswap/internal/model"
)

const SessionCookie = "skillswap_session"

type IdentityService interface {
	FindByID(id model.UserID) (*model.User, error)
	Create(params *model.CreateUserParams) (*model.User, error)
	Update(id model.UserID, params *model.UpdateUserParams) (*model.User, error)
	AuthenticateOrProvision(email, password string) (*model.User, error)
	Users() []model.User
}

type SessionService interface {
	Start(userID model.UserID) (string, error)
	Resolve(sessionID string) (model.UserID, error)
	End(sessionID string) error
}

type SwapService interface {
	Create(fromID, toID model.UserID, skillOffered, skillWanted, message string) (*model.SwapRequest, error)
	Transition(id model.SwapRequestID, newStatus model.SwapStatus, actingUserID model.UserID) (*model.SwapRequest, error)
	ListForUser(userID model.UserID) []model.SwapRequest
}

type MessageService interface {
	Send(fromID, toID model.UserID, content string) (*model.Message, error)
	MarkRead(id model.MessageID, actingUserID model.UserID) (*model.Message, error)
	ConversationBetween(a, b model.UserID) []model.Message
	Messages() []model.Message
}

type PostService interface {
	Create(authorID model.UserID, params *model.CreatePostParams) (*model.Post, error)
	Like(id model.PostID) (*model.Post, error)
	List() []model.Post
}

// RequireSession resolves the session cookie and stashes the member id in
// the request context under "userID".
func RequireSession(sessions SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
			}
			userID, err := sessions.Resolve(cookie.Value)
			if err != nil {
				return toHTTPError(err)
			}
			c.Set("userID", userID)
			return next(c)
		}
	}
}

func currentUserID(c echo.Context) model.UserID {
	userID, _ := c.Get("userID").(model.UserID)
	return userID
}

// toHTTPError maps the core's sentinel failures onto HTTP statuses. Anything
// unrecognized bubbles up to echo's recoverer as a 500.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
	case errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrRequestNotFound),
		errors.Is(err, model.ErrMessageNotFound),
		errors.Is(err, model.ErrPostNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, model.ErrInvalidTransition),
		errors.Is(err, model.ErrDuplicateEmail):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrUnknownUser),
		errors.Is(err, model.ErrEmptyContent):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
