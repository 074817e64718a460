package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/skillswaphq/skillswap/internal/model"
	"github.com/skillswaphq/skillswap/internal/store"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	identity := store.NewIdentity()
	sessions, err := store.NewSessionCache()
	if err != nil {
		t.Fatalf("creating session cache: %v", err)
	}
	t.Cleanup(func() { sessions.Close() })

	swaps := store.NewSwapLedger(identity)
	messages := store.NewMessageLedger(identity)
	posts := store.NewPostLedger(identity)

	server := echo.New()
	server.POST("/api/auth/login", Login(identity, sessions))
	server.POST("/api/auth/register", Register(identity, sessions))
	server.POST("/api/auth/logout", Logout(sessions))

	api := server.Group("/api", RequireSession(sessions))
	api.GET("/me", CurrentUser(identity))
	api.PUT("/me", UpdateProfile(identity))
	api.GET("/users", BrowseUsers(identity))
	api.GET("/swaps", ListSwaps(swaps))
	api.POST("/swaps", CreateSwap(swaps))
	api.PUT("/swaps/:requestID/status", TransitionSwap(swaps))
	api.GET("/conversations", ListConversations(messages, identity))
	api.GET("/conversations/:userID", GetThread(messages))
	api.POST("/messages", SendMessage(messages))
	api.PUT("/messages/:messageID/read", MarkMessageRead(messages))
	api.GET("/posts", ListPosts(posts))
	api.POST("/posts", CreatePost(posts))
	api.POST("/posts/:postID/like", LikePost(posts))

	return server
}

func doJSON(server *echo.Echo, method, target, body, sessionCookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sessionCookie})
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func sessionFrom(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookie {
			return cookie.Value
		}
	}
	t.Fatalf("no session cookie in response")
	return ""
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestSwapScenario(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)

	rec := doJSON(server, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@y.com","skillsOffered":["Guitar"]}`, "")
	assert.Equal(http.StatusCreated, rec.Code)
	alice := decode[model.User](t, rec)
	aliceSession := sessionFrom(t, rec)

	rec = doJSON(server, http.MethodPost, "/api/auth/register",
		`{"name":"Bob","email":"bob@y.com","skillsWanted":["Guitar"]}`, "")
	assert.Equal(http.StatusCreated, rec.Code)
	bob := decode[model.User](t, rec)
	bobSession := sessionFrom(t, rec)

	t.Run("Alice proposes a swap", func(t *testing.T) {
		rec := doJSON(server, http.MethodPost, "/api/swaps",
			`{"toUserId":"`+string(bob.ID)+`","skillOffered":"Guitar","skillWanted":"Piano","message":"trade?"}`,
			aliceSession)
		assert.Equal(http.StatusCreated, rec.Code)
		request := decode[model.SwapRequest](t, rec)
		assert.Equal(model.SwapStatusPending, request.Status)

		t.Run("Alice cannot accept her own request", func(t *testing.T) {
			rec := doJSON(server, http.MethodPut, "/api/swaps/"+string(request.ID)+"/status",
				`{"status":"accepted"}`, aliceSession)
			assert.Equal(http.StatusForbidden, rec.Code)
		})

		t.Run("Bob accepts", func(t *testing.T) {
			rec := doJSON(server, http.MethodPut, "/api/swaps/"+string(request.ID)+"/status",
				`{"status":"accepted"}`, bobSession)
			assert.Equal(http.StatusOK, rec.Code)
			assert.Equal(model.SwapStatusAccepted, decode[model.SwapRequest](t, rec).Status)
		})

		t.Run("Double decision conflicts", func(t *testing.T) {
			rec := doJSON(server, http.MethodPut, "/api/swaps/"+string(request.ID)+"/status",
				`{"status":"rejected"}`, bobSession)
			assert.Equal(http.StatusConflict, rec.Code)
		})
	})

	t.Run("Messaging", func(t *testing.T) {
		rec := doJSON(server, http.MethodPost, "/api/messages",
			`{"toUserId":"`+string(bob.ID)+`","content":"   "}`, aliceSession)
		assert.Equal(http.StatusBadRequest, rec.Code)

		rec = doJSON(server, http.MethodPost, "/api/messages",
			`{"toUserId":"`+string(bob.ID)+`","content":"see you Saturday"}`, aliceSession)
		assert.Equal(http.StatusCreated, rec.Code)
		message := decode[model.Message](t, rec)

		rec = doJSON(server, http.MethodGet, "/api/conversations", "", bobSession)
		assert.Equal(http.StatusOK, rec.Code)
		conversations := decode[[]model.Conversation](t, rec)
		if assert.Len(conversations, 1) {
			assert.Equal(alice.ID, conversations[0].User.ID)
			assert.Equal(1, conversations[0].UnreadCount)
		}

		rec = doJSON(server, http.MethodPut, "/api/messages/"+string(message.ID)+"/read", "", bobSession)
		assert.Equal(http.StatusOK, rec.Code)

		rec = doJSON(server, http.MethodGet, "/api/conversations", "", bobSession)
		conversations = decode[[]model.Conversation](t, rec)
		if assert.Len(conversations, 1) {
			assert.Equal(0, conversations[0].UnreadCount)
		}
	})

	t.Run("Posts", func(t *testing.T) {
		rec := doJSON(server, http.MethodPost, "/api/posts",
			`{"title":"Guitar for Piano","skillsOffered":["Guitar"],"skillsWanted":["Piano"]}`, aliceSession)
		assert.Equal(http.StatusCreated, rec.Code)
		post := decode[model.Post](t, rec)
		assert.Equal(alice.ID, post.UserID)

		rec = doJSON(server, http.MethodPost, "/api/posts/"+string(post.ID)+"/like", "", bobSession)
		assert.Equal(http.StatusOK, rec.Code)
		assert.Equal(1, decode[model.Post](t, rec).Likes)
	})
}

func TestAuthFlow(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)

	t.Run("No session is unauthorized", func(t *testing.T) {
		rec := doJSON(server, http.MethodGet, "/api/me", "", "")
		assert.Equal(http.StatusUnauthorized, rec.Code)
	})

	t.Run("Login provisions unseen emails", func(t *testing.T) {
		rec := doJSON(server, http.MethodPost, "/api/auth/login",
			`{"email":"new@y.com","password":"whatever"}`, "")
		assert.Equal(http.StatusOK, rec.Code)
		user := decode[model.User](t, rec)
		assert.Equal("new", user.Name)

		session := sessionFrom(t, rec)
		rec = doJSON(server, http.MethodGet, "/api/me", "", session)
		assert.Equal(http.StatusOK, rec.Code)

		t.Run("Logout invalidates the session", func(t *testing.T) {
			rec := doJSON(server, http.MethodPost, "/api/auth/logout", "", session)
			assert.Equal(http.StatusNoContent, rec.Code)

			rec = doJSON(server, http.MethodGet, "/api/me", "", session)
			assert.Equal(http.StatusUnauthorized, rec.Code)
		})
	})

	t.Run("Duplicate registration conflicts", func(t *testing.T) {
		body := `{"name":"Dora","email":"dora@y.com"}`
		rec := doJSON(server, http.MethodPost, "/api/auth/register", body, "")
		assert.Equal(http.StatusCreated, rec.Code)

		rec = doJSON(server, http.MethodPost, "/api/auth/register", body, "")
		assert.Equal(http.StatusConflict, rec.Code)
	})

	t.Run("Profile update cannot touch id or email", func(t *testing.T) {
		rec := doJSON(server, http.MethodPost, "/api/auth/register",
			`{"name":"Eve","email":"eve@y.com"}`, "")
		eve := decode[model.User](t, rec)
		session := sessionFrom(t, rec)

		rec = doJSON(server, http.MethodPut, "/api/me",
			`{"name":"Eve Updated","location":"Berlin"}`, session)
		assert.Equal(http.StatusOK, rec.Code)
		updated := decode[model.User](t, rec)
		assert.Equal("Eve Updated", updated.Name)
		assert.Equal("Berlin", updated.Location)
		assert.Equal(eve.ID, updated.ID)
		assert.Equal(eve.Email, updated.Email)
	})
}

func TestBrowseUsers(t *testing.T) {
	assert := assert.New(t)
	server := newTestServer(t)

	rec := doJSON(server, http.MethodPost, "/api/auth/register",
		`{"name":"Sarah","email":"sarah@y.com","skillsOffered":["Python"],"availability":"evenings"}`, "")
	assert.Equal(http.StatusCreated, rec.Code)

	rec = doJSON(server, http.MethodPost, "/api/auth/register",
		`{"name":"Marc","email":"marc@y.com","skillsWanted":["Python"],"availability":"weekends"}`, "")
	assert.Equal(http.StatusCreated, rec.Code)

	rec = doJSON(server, http.MethodPost, "/api/auth/register",
		`{"name":"Mia","email":"mia@y.com","skillsOffered":["Figma"]}`, "")
	assert.Equal(http.StatusCreated, rec.Code)
	session := sessionFrom(t, rec)

	t.Run("Search over skills, excluding self", func(t *testing.T) {
		rec := doJSON(server, http.MethodGet, "/api/users?search=python", "", session)
		assert.Equal(http.StatusOK, rec.Code)
		page := decode[struct {
			Users []model.User `json:"users"`
			Total int          `json:"total"`
		}](t, rec)
		assert.Equal(2, page.Total)
	})

	t.Run("Availability filter", func(t *testing.T) {
		rec := doJSON(server, http.MethodGet, "/api/users?availability=evenings", "", session)
		page := decode[struct {
			Users []model.User `json:"users"`
		}](t, rec)
		if assert.Len(page.Users, 1) {
			assert.Equal("Sarah", page.Users[0].Name)
		}
	})

	t.Run("Out-of-range page is empty, not an error", func(t *testing.T) {
		rec := doJSON(server, http.MethodGet, "/api/users?page=99", "", session)
		assert.Equal(http.StatusOK, rec.Code)
		page := decode[struct {
			Users []model.User `json:"users"`
			Total int          `json:"total"`
		}](t, rec)
		assert.Empty(page.Users)
		assert.Equal(2, page.Total)
	})
}
