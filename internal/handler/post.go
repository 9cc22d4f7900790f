// internal/handler/post.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/service"
)

type PostHandler struct {
	posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

type PostResponse struct {
	BaseResponse
	Post *model.Post `json:"post"`
}

func (h *PostHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := authedEmployee(w, r)
	if !ok {
		return
	}

	var input service.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	post, err := h.posts.Create(r.Context(), creatorID, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, PostResponse{
		BaseResponse: BaseResponse{Ok: true},
		Post:         post,
	})
}

func (h *PostHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedEmployee(w, r); !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PostResponse{
		BaseResponse: BaseResponse{Ok: true},
		Post:         post,
	})
}

func (h *PostHandler) EditHandler(w http.ResponseWriter, r *http.Request) {
	editorID, ok := authedEmployee(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var input service.EditPostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	post, err := h.posts.Edit(r.Context(), editorID, id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PostResponse{
		BaseResponse: BaseResponse{Ok: true},
		Post:         post,
	})
}

func (h *PostHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	actorID, ok := authedEmployee(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	withAttachments, ok := boolParam(w, r, "with_attachments", false)
	if !ok {
		return
	}

	if err := h.posts.Delete(r.Context(), actorID, id, withAttachments); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// ApproveHandler publishes a post to the feed.
func (h *PostHandler) ApproveHandler(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.StatusPosted)
}

// RejectHandler declines a post permanently.
func (h *PostHandler) RejectHandler(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.StatusRejected)
}

// ReturnHandler sends a post back to its author for changes.
func (h *PostHandler) ReturnHandler(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.StatusReturned)
}

// ArchiveHandler moves a post to the archive immediately.
func (h *PostHandler) ArchiveHandler(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.StatusArchived)
}

// UnarchiveHandler restores an archived post to the feed.
func (h *PostHandler) UnarchiveHandler(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, model.StatusPosted)
}

func (h *PostHandler) setStatus(w http.ResponseWriter, r *http.Request, status model.PostStatus) {
	actorID, ok := authedEmployee(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	post, err := h.posts.SetStatus(r.Context(), actorID, id, status)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PostResponse{
		BaseResponse: BaseResponse{Ok: true},
		Post:         post,
	})
}
