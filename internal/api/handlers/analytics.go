package handlers

import (
	"flight-analytics-service/internal/api/dto"
	"flight-analytics-service/internal/services"
	"net/http"
	"time"
)

type AnalyticsHandler struct {
	Analytics *services.Analytics
}

// DomesticFlights summarizes how domestic the high-occupancy traffic is.
// Dates are optional; start_date and end_date are accepted as aliases.
func (h *AnalyticsHandler) DomesticFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	for alias, name := range map[string]string{"start_date": "date_from", "end_date": "date_to"} {
		if q.Get(name) == "" && q.Get(alias) != "" {
			q.Set(name, q.Get(alias))
		}
	}

	window, err := parseWindow(q, time.Now().UTC(), false)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Analytics.AnalyzeDomesticFlights(r.Context(), window)
	if err != nil {
		writeServiceError(w, r, "analyze domestic flights", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewDomesticFlightAnalysis(res))
}
