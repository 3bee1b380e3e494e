package http

import (
	"net/http"

	"go.uber.org/zap"

	"gpa-calculator/service"
)

type RouterConfig struct {
	Grades  *service.GradeService
	Themes  *service.ThemeService
	Limiter *RateLimiter
	Metrics *Metrics
	Logger  *zap.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	gradeHandler := NewGradeHandler(cfg.Grades)
	themeHandler := NewThemeHandler(cfg.Themes)

	mux := http.NewServeMux()
	route := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern,
			RequestLogger(cfg.Logger,
				cfg.Metrics.Instrument(pattern,
					RateLimitMiddleware(cfg.Limiter, h),
				),
			),
		)
	}

	route("/gpa/calculate", gradeHandler.Calculate)
	route("/gpa/advise", gradeHandler.Advise)
	route("/courses/{profile}", gradeHandler.Courses)
	route("/preferences/{profile}/theme", themeHandler.Theme)
	route("/preferences/{profile}/theme/toggle", themeHandler.Toggle)

	mux.Handle("/metrics", cfg.Metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	return mux
}
