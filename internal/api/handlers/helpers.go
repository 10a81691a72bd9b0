package handlers

import (
	"encoding/json"
	"errors"
	"flight-analytics-service/internal/api/dto"
	"flight-analytics-service/internal/domain"
	"flight-analytics-service/internal/services"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var queryValidate = validator.New()

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	setErrorDetail(r, msg)
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError logs err and maps it to a response status: storage read
// failures become 503, anything else 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Printf("%s failed: method=%s path=%s err=%v", op, r.Method, r.URL.Path, err)

	if errors.Is(err, services.ErrDataUnavailable) {
		writeError(w, r, http.StatusServiceUnavailable, "service unavailable, try again later")
		return
	}
	writeError(w, r, http.StatusInternalServerError, "internal error")
}

// parseWindow reads date_from and date_to. When todayDefault is set a missing
// bound falls back to today's date; otherwise it stays open.
func parseWindow(q url.Values, today time.Time, todayDefault bool) (domain.DateRange, error) {
	var window domain.DateRange

	for _, p := range []struct {
		name string
		dst  *time.Time
	}{
		{"date_from", &window.From},
		{"date_to", &window.To},
	} {
		raw := strings.TrimSpace(q.Get(p.name))
		if raw == "" {
			if todayDefault {
				*p.dst = domain.DateOf(today)
			}
			continue
		}
		d, err := domain.ParseDate(raw)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", p.name)
		}
		*p.dst = d
	}

	if !window.From.IsZero() && !window.To.IsZero() && window.From.After(window.To) {
		return domain.DateRange{}, errors.New("date_from must not be after date_to")
	}
	return window, nil
}

func parsePage(r *http.Request) (dto.PageQuery, error) {
	q := dto.PageQuery{Page: 1, PageSize: services.DefaultPageSize}

	if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return dto.PageQuery{}, errors.New("page must be an integer")
		}
		q.Page = v
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("page_size")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return dto.PageQuery{}, errors.New("page_size must be an integer")
		}
		q.PageSize = v
	}

	if err := queryValidate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "Page" {
			return dto.PageQuery{}, errors.New("page must be at least 1")
		}
		return dto.PageQuery{}, fmt.Errorf("page_size must be between 1 and %d", services.MaxPageSize)
	}
	return q, nil
}

func pagination(q dto.PageQuery, total int) dto.Pagination {
	return dto.Pagination{
		Page:       q.Page,
		PageSize:   q.PageSize,
		Total:      total,
		TotalPages: services.TotalPages(total, q.PageSize),
	}
}
