// internal/handler/attachment.go
package handler

import (
	"net/http"

	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/service"
)

// maxUploadBytes caps a single attachment upload at 32 MiB.
const maxUploadBytes = 32 << 20

type AttachmentHandler struct {
	attachments *service.AttachmentService
}

func NewAttachmentHandler(attachments *service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachments: attachments}
}

type AttachmentResponse struct {
	BaseResponse
	Attachment *model.Attachment `json:"attachment"`
}

func (h *AttachmentHandler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	authorID, ok := authedEmployee(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart payload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	attachment, err := h.attachments.Upload(r.Context(), authorID, header.Filename, file)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, AttachmentResponse{
		BaseResponse: BaseResponse{Ok: true},
		Attachment:   attachment,
	})
}

func (h *AttachmentHandler) DownloadHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedEmployee(w, r); !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	attachment, path, err := h.attachments.FilePath(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=\""+attachment.Filename+"\"")
	http.ServeFile(w, r, path)
}

func (h *AttachmentHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedEmployee(w, r); !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	attachment, err := h.attachments.Get(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AttachmentResponse{
		BaseResponse: BaseResponse{Ok: true},
		Attachment:   attachment,
	})
}

func (h *AttachmentHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	actorID, ok := authedEmployee(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.attachments.Delete(r.Context(), actorID, id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// ListMineHandler pages through the caller's own uploads.
func (h *AttachmentHandler) ListMineHandler(w http.ResponseWriter, r *http.Request) {
	authorID, ok := authedEmployee(w, r)
	if !ok {
		return
	}
	page, ok := pageParam(w, r)
	if !ok {
		return
	}

	result, err := h.attachments.ListByAuthor(r.Context(), authorID, page)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":          true,
		"attachments": result.Attachments,
		"pages_count": result.PagesCount,
	})
}
