// internal/handler/subunit.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/service"
)

type SubunitHandler struct {
	subunits  *service.SubunitService
	employees *service.EmployeeService
}

func NewSubunitHandler(subunits *service.SubunitService, employees *service.EmployeeService) *SubunitHandler {
	return &SubunitHandler{subunits: subunits, employees: employees}
}

type SubunitResponse struct {
	BaseResponse
	Subunit *model.Subunit `json:"subunit"`
}

func (h *SubunitHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := authedEmployee(w, r)
	if !ok {
		return
	}

	var input service.CreateSubunitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	subunit, err := h.subunits.Create(r.Context(), creatorID, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SubunitResponse{
		BaseResponse: BaseResponse{Ok: true},
		Subunit:      subunit,
	})
}

func (h *SubunitHandler) EditHandler(w http.ResponseWriter, r *http.Request) {
	editorID, ok := authedEmployee(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var input service.EditSubunitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	subunit, err := h.subunits.Edit(r.Context(), editorID, id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SubunitResponse{
		BaseResponse: BaseResponse{Ok: true},
		Subunit:      subunit,
	})
}

func (h *SubunitHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedEmployee(w, r); !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	subunit, err := h.subunits.Get(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SubunitResponse{
		BaseResponse: BaseResponse{Ok: true},
		Subunit:      subunit,
	})
}

func (h *SubunitHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedEmployee(w, r); !ok {
		return
	}

	subunits, err := h.subunits.ListAll(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"subunits": subunits,
	})
}

// FiredModeratorsHandler lists fired employees of a subunit who still
// hold moderation rights, so their accounts can be cleaned up.
func (h *SubunitHandler) FiredModeratorsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedEmployee(w, r); !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	moderators, err := h.employees.FiredModerators(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"employees": moderators,
	})
}
