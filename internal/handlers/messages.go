package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillswaphq/skillswap/internal/model"
	"github.com/skillswaphq/skillswap/internal/query"
)

type sendMessageParams struct {
	ToUserID model.UserID `json:"toUserId"`
	Content  string       `json:"content"`
}

// ListConversations serves the inbox: one entry per correspondent, most
// recent first, with unread counts, optionally narrowed by a name search.
func ListConversations(messages MessageService, identity IdentityService) echo.HandlerFunc {
	return func(c echo.Context) error {
		conversations := query.ListConversations(messages.Messages(), identity.Users(), currentUserID(c))
		if search := c.QueryParam("search"); search != "" {
			conversations = query.FilterConversations(conversations, search)
		}
		return c.JSON(http.StatusOK, conversations)
	}
}

// GetThread serves the full exchange with one member, oldest first.
func GetThread(messages MessageService) echo.HandlerFunc {
	return func(c echo.Context) error {
		otherID := model.UserID(c.Param("userID"))
		thread := messages.ConversationBetween(currentUserID(c), otherID)
		return c.JSON(http.StatusOK, thread)
	}
}

// SendMessage writes a new unread message from the signed-in member.
func SendMessage(messages MessageService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &sendMessageParams{}
		if err := c.Bind(params); err != nil {
			return err
		}

		message, err := messages.Send(currentUserID(c), params.ToUserID, params.Content)
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusCreated, message)
	}
}

// MarkMessageRead flips the read flag on a message addressed to the
// signed-in member. Re-marking is a harmless no-op.
func MarkMessageRead(messages MessageService) echo.HandlerFunc {
	return func(c echo.Context) error {
		message, err := messages.MarkRead(model.MessageID(c.Param("messageID")), currentUserID(c))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, message)
	}
}
