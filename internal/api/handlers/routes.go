package handlers

import (
	"flight-analytics-service/internal/api/dto"
	"flight-analytics-service/internal/services"
	"net/http"
	"time"
)

type RouteHandler struct {
	Analytics *services.Analytics
	// Now supplies the default date; nil means time.Now.
	Now func() time.Time
}

func (h *RouteHandler) today() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}

// MostFlownByCountry lists the top routes per origin country. Dates default to today.
func (h *RouteHandler) MostFlownByCountry(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r.URL.Query(), h.today(), true)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	pq, err := parsePage(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	items, total, err := h.Analytics.MostFlownByCountry(r.Context(), window, services.DefaultTopRoutes, pq.Page, pq.PageSize)
	if err != nil {
		writeServiceError(w, r, "most flown by country", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewMostFlownList(window, items, pagination(pq, total)))
}

// DomesticAltitudeDelta reports domestic flights meeting the occupancy and
// altitude thresholds. Dates default to today.
func (h *RouteHandler) DomesticAltitudeDelta(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r.URL.Query(), h.today(), true)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	pq, err := parsePage(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.Analytics.DomesticAltitudeDelta(r.Context(), window, pq.Page, pq.PageSize)
	if err != nil {
		writeServiceError(w, r, "domestic altitude delta", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewDomesticAltitude(window, report, pagination(pq, report.FlightsMeetingCriteria)))
}
