package router

import (
	"net/http"

	mem "maternity-journal/internal/adapters/storage/memory"
	"maternity-journal/internal/domain/gestation"
	"maternity-journal/internal/domain/schedule"
	"maternity-journal/internal/middleware"
	"maternity-journal/internal/platform/logger"
	"maternity-journal/internal/ports/auth"

	_ "maternity-journal/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Repos inyectados desde main. Si vienen nil, se usan los in-memory.
	Anchors gestation.Repository
	Entries schedule.Repository

	Logger logger.Logger

	// 0 => defaults del módulo schedule
	UpcomingDays   int
	MaxOccurrences int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	anchorRepo := opts.Anchors
	if anchorRepo == nil {
		anchorRepo = mem.NewAnchorRepo()
	}
	entryRepo := opts.Entries
	if entryRepo == nil {
		entryRepo = mem.NewEntryRepo()
	}

	// Services por módulo
	gestationSvc := gestation.NewService(anchorRepo, log)
	scheduleSvc := schedule.NewService(entryRepo, log, opts.MaxOccurrences)

	// Rutas por módulo
	gestation.RegisterRoutes(r, gestationSvc)
	schedule.RegisterRoutes(r, scheduleSvc, opts.UpcomingDays)

	return r
}
