// internal/handler/employee.go
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/service"
)

type EmployeeHandler struct {
	employees *service.EmployeeService
}

func NewEmployeeHandler(employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

type EmployeeResponse struct {
	BaseResponse
	Employee *model.Employee `json:"employee"`
}

func (h *EmployeeHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	registrarID, ok := authedEmployee(w, r)
	if !ok {
		return
	}

	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	employee, err := h.employees.Register(r.Context(), registrarID, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, EmployeeResponse{
		BaseResponse: BaseResponse{Ok: true},
		Employee:     employee,
	})
}

type EmployeeListResponse struct {
	BaseResponse
	Employees []*model.Employee `json:"employees"`
}

// ListHandler resolves a batch of employee IDs given as a comma-separated
// ids query parameter.
func (h *EmployeeHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedEmployee(w, r); !ok {
		return
	}

	raw := r.URL.Query().Get("ids")
	if raw == "" {
		respondWithError(w, http.StatusBadRequest, "Missing ids parameter")
		return
	}

	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid employee ID: "+part)
			return
		}
		ids = append(ids, id)
	}

	employees, err := h.employees.GetMany(r.Context(), ids)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, EmployeeListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Employees:    employees,
	})
}

func (h *EmployeeHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedEmployee(w, r); !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	employee, err := h.employees.Get(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, EmployeeResponse{
		BaseResponse: BaseResponse{Ok: true},
		Employee:     employee,
	})
}

func (h *EmployeeHandler) EditHandler(w http.ResponseWriter, r *http.Request) {
	editorID, ok := authedEmployee(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var input service.EditEmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	employee, err := h.employees.Edit(r.Context(), editorID, id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, EmployeeResponse{
		BaseResponse: BaseResponse{Ok: true},
		Employee:     employee,
	})
}
