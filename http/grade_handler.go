package http

import (
	"net/http"

	"gpa-calculator/domain"
	"gpa-calculator/service"
)

type GradeHandler struct {
	service *service.GradeService
}

func NewGradeHandler(service *service.GradeService) *GradeHandler {
	return &GradeHandler{service: service}
}

type coursesRequest struct {
	Courses []domain.CourseRow `json:"courses"`
}

type calculateResponse struct {
	Result domain.AggregateResult `json:"result"`
	Advice domain.Advice          `json:"advice"`
}

func (h *GradeHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if !requireJSON(w, r) {
		return
	}

	var req coursesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.service.Calculate(r.Context(), req.Courses)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, calculateResponse{
		Result: result,
		Advice: h.service.Advise(r.Context(), result),
	})
}

func (h *GradeHandler) Advise(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if !requireJSON(w, r) {
		return
	}

	var input domain.AdviceInput
	if !decodeJSON(w, r, &input) {
		return
	}

	advice, err := h.service.AdviseTotals(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, advice)
}

// Courses serves the saved course list of one profile.
func (h *GradeHandler) Courses(w http.ResponseWriter, r *http.Request) {
	profile := r.PathValue("profile")

	switch r.Method {
	case http.MethodGet:
		snapshot, err := h.service.Load(r.Context(), profile)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, snapshot)

	case http.MethodPut:
		if !requireJSON(w, r) {
			return
		}
		var req coursesRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		snapshot, err := h.service.Save(r.Context(), profile, req.Courses)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, snapshot)

	case http.MethodDelete:
		if err := h.service.Clear(r.Context(), profile); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}
