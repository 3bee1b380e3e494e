package http

import (
	"net/http"

	"gpa-calculator/service"
)

type ThemeHandler struct {
	service *service.ThemeService
}

func NewThemeHandler(service *service.ThemeService) *ThemeHandler {
	return &ThemeHandler{service: service}
}

type themeBody struct {
	Theme string `json:"theme"`
}

// systemPrefersDark reads the client's color-scheme preference from
// ?system=dark.
func systemPrefersDark(r *http.Request) bool {
	return r.URL.Query().Get("system") == service.ThemeDark
}

func (h *ThemeHandler) Theme(w http.ResponseWriter, r *http.Request) {
	profile := r.PathValue("profile")

	switch r.Method {
	case http.MethodGet:
		theme, err := h.service.Resolve(r.Context(), profile, systemPrefersDark(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, themeBody{Theme: theme})

	case http.MethodPut:
		if !requireJSON(w, r) {
			return
		}
		var body themeBody
		if !decodeJSON(w, r, &body) {
			return
		}
		theme, err := h.service.Set(r.Context(), profile, body.Theme)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, themeBody{Theme: theme})

	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPut)
	}
}

func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	theme, err := h.service.Toggle(r.Context(), r.PathValue("profile"), systemPrefersDark(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, themeBody{Theme: theme})
}
