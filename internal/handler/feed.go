// internal/handler/feed.go
package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/service"
)

type FeedHandler struct {
	feed *service.FeedService
}

func NewFeedHandler(feed *service.FeedService) *FeedHandler {
	return &FeedHandler{feed: feed}
}

type FeedResponse struct {
	BaseResponse
	Posts      []*model.Post `json:"posts"`
	PagesCount int           `json:"pages_count"`
}

func feedResponse(page *service.PostPage) FeedResponse {
	return FeedResponse{
		BaseResponse: BaseResponse{Ok: true},
		Posts:        page.Posts,
		PagesCount:   page.PagesCount,
	}
}

// GetFeedHandler serves one page of published posts of a given type.
func (h *FeedHandler) GetFeedHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedEmployee(w, r); !ok {
		return
	}

	postType := model.PostType(r.URL.Query().Get("type"))
	page, ok := pageParam(w, r)
	if !ok {
		return
	}

	var subunitID *uuid.UUID
	if raw := r.URL.Query().Get("subunit"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid subunit")
			return
		}
		subunitID = &id
	}

	result, err := h.feed.GetFeed(r.Context(), postType, page, subunitID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, feedResponse(result))
}

// GetArchiveHandler serves one page of archived posts, oldest archives
// first by publication date.
func (h *FeedHandler) GetArchiveHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedEmployee(w, r); !ok {
		return
	}
	page, ok := pageParam(w, r)
	if !ok {
		return
	}

	result, err := h.feed.GetArchive(r.Context(), page)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, feedResponse(result))
}

// GetBiggestHandler returns the largest post published on a given day.
// Size counts title, body and attachment payloads.
func (h *FeedHandler) GetBiggestHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedEmployee(w, r); !ok {
		return
	}

	day, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid date: expected YYYY-MM-DD")
		return
	}
	includeArchived, ok := boolParam(w, r, "include_archived", false)
	if !ok {
		return
	}

	post, err := h.feed.GetBiggest(r.Context(), day, includeArchived)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PostResponse{
		BaseResponse: BaseResponse{Ok: true},
		Post:         post,
	})
}

// GetMyPostsHandler returns every post authored by the caller, all
// statuses included.
func (h *FeedHandler) GetMyPostsHandler(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := authedEmployee(w, r)
	if !ok {
		return
	}

	posts, err := h.feed.GetEmployeePosts(r.Context(), employeeID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"posts": posts,
	})
}

// GetModerationQueueHandler serves posts awaiting moderation decisions.
// The statuses query parameter is a comma separated status list.
func (h *FeedHandler) GetModerationQueueHandler(w http.ResponseWriter, r *http.Request) {
	actorID, ok := authedEmployee(w, r)
	if !ok {
		return
	}
	page, ok := pageParam(w, r)
	if !ok {
		return
	}
	oldestFirst, ok := boolParam(w, r, "oldest_first", true)
	if !ok {
		return
	}

	rawStatuses := r.URL.Query().Get("statuses")
	if rawStatuses == "" {
		rawStatuses = string(model.StatusUnderConsideration)
	}
	var statuses []model.PostStatus
	for _, s := range strings.Split(rawStatuses, ",") {
		statuses = append(statuses, model.PostStatus(strings.TrimSpace(s)))
	}

	result, err := h.feed.GetModerationQueue(r.Context(), actorID, page, statuses, oldestFirst)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, feedResponse(result))
}
