package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillswaphq/skillswap/internal/model"
	"github.com/skillswaphq/skillswap/internal/query"
)

// The requests view shows five per page, matching the UI.
const requestsPerPage = 5

type createSwapParams struct {
	ToUserID     model.UserID `json:"toUserId"`
	SkillOffered string       `json:"skillOffered"`
	SkillWanted  string       `json:"skillWanted"`
	Message      string       `json:"message"`
}

type transitionParams struct {
	Status model.SwapStatus `json:"status"`
}

type requestsPage struct {
	Requests []model.SwapRequest `json:"requests"`
	Page     int                 `json:"page"`
	Total    int                 `json:"total"`
}

// CreateSwap files a pending swap proposal from the signed-in member.
func CreateSwap(swaps SwapService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &createSwapParams{}
		if err := c.Bind(params); err != nil {
			return err
		}

		request, err := swaps.Create(currentUserID(c), params.ToUserID,
			params.SkillOffered, params.SkillWanted, params.Message)
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusCreated, request)
	}
}

// ListSwaps serves the signed-in member's requests, filtered by status
// (all|pending|accepted|rejected) and paginated five per page.
func ListSwaps(swaps SwapService) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := c.QueryParam("status")
		page := intParam(c, "page", 1)

		matched := query.FilterRequests(swaps.ListForUser(currentUserID(c)), status)

		return c.JSON(http.StatusOK, requestsPage{
			Requests: query.Paginate(matched, page, requestsPerPage),
			Page:     page,
			Total:    len(matched),
		})
	}
}

// TransitionSwap lets the recipient accept or reject a pending request.
func TransitionSwap(swaps SwapService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &transitionParams{}
		if err := c.Bind(params); err != nil {
			return err
		}

		request, err := swaps.Transition(model.SwapRequestID(c.Param("requestID")),
			params.Status, currentUserID(c))
		if err != nil {
			return toHTTPError(err)
		}
		return c.JSON(http.StatusOK, request)
	}
}
