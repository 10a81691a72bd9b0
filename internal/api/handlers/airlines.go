package handlers

import (
	"flight-analytics-service/internal/api/dto"
	"flight-analytics-service/internal/services"
	"net/http"
	"time"
)

type AirlineHandler struct {
	Analytics *services.Analytics
}

// Occupancy lists airlines by average occupancy over an optional date window.
func (h *AirlineHandler) Occupancy(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r.URL.Query(), time.Now().UTC(), false)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	pq, err := parsePage(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	items, total, err := h.Analytics.OccupancyByAirline(r.Context(), window, pq.Page, pq.PageSize)
	if err != nil {
		writeServiceError(w, r, "occupancy average", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewOccupancyList(window, items, pagination(pq, total)))
}

// ConsecutiveRuns lists airlines ranked by consecutive high-occupancy runs.
func (h *AirlineHandler) ConsecutiveRuns(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r.URL.Query(), time.Now().UTC(), false)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	pq, err := parsePage(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	items, total, err := h.Analytics.ConsecutiveHighOccupancy(r.Context(), window, pq.Page, pq.PageSize)
	if err != nil {
		writeServiceError(w, r, "consecutive high occupancy", err)
		return
	}

	threshold := h.Analytics.Thresholds.OccupancyThreshold
	writeJSON(w, r, http.StatusOK, dto.NewConsecutiveRunsList(window, threshold, items, pagination(pq, total)))
}
