// internal/handler/stats.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/openorg/orgfeed/internal/service"
)

type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

type StatisticsResponse struct {
	BaseResponse
	Statistics service.Statistics `json:"statistics"`
}

// GetStatisticsHandler returns publication counts grouped by month,
// subunit and employee over an inclusive month range.
func (h *StatsHandler) GetStatisticsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := authedEmployee(w, r); !ok {
		return
	}

	startYear, ok := intQueryParam(w, r, "start_year")
	if !ok {
		return
	}
	startMonth, ok := intQueryParam(w, r, "start_month")
	if !ok {
		return
	}
	endYear, ok := intQueryParam(w, r, "end_year")
	if !ok {
		return
	}
	endMonth, ok := intQueryParam(w, r, "end_month")
	if !ok {
		return
	}

	statistics, err := h.stats.GetStatistics(r.Context(), startYear, startMonth, endYear, endMonth)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, StatisticsResponse{
		BaseResponse: BaseResponse{Ok: true},
		Statistics:   statistics,
	})
}

func intQueryParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return value, true
}
