package router

import (
	"context"
	"net/http"
	"time"

	_ "dog-walking/docs"
	mem "dog-walking/internal/adapters/storage/memory"
	"dog-walking/internal/domain/bookings"
	"dog-walking/internal/domain/dogs"
	"dog-walking/internal/domain/owners"
	"dog-walking/internal/middleware"
	"dog-walking/internal/platform/logger"
	"dog-walking/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Repos; si alguno es nil se usa el store in-memory para los tres.
	Owners   owners.Repository
	Dogs     dogs.Repository
	Bookings bookings.Repository

	// Ready se consulta en /readyz (p.ej. ping a Mongo). nil = siempre listo,
	// salvo con el store in-memory, que usa su propio Ping.
	Ready func(ctx context.Context) error

	Logger  logger.Logger    // nil = Nop
	Metrics *metrics.Metrics // nil = registry nuevo
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	ownerRepo, dogRepo, bookingRepo := opts.Owners, opts.Dogs, opts.Bookings
	ready := opts.Ready
	if ownerRepo == nil || dogRepo == nil || bookingRepo == nil {
		// Modo dev/test: el join necesita que los tres compartan store.
		store := mem.NewStore()
		ownerRepo = mem.NewOwnerRepo(store)
		dogRepo = mem.NewDogRepo(store)
		bookingRepo = mem.NewBookingRepo(store)
		if ready == nil {
			ready = store.Ping
		}
		log.Warn("using in-memory store", nil)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, m))
	r.Use(middleware.Recover(log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Hello, world!"))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ready(ctx); err != nil {
				log.Warn("readiness check failed", map[string]any{"error": err})
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	ownersSvc := owners.NewService(ownerRepo)
	dogsSvc := dogs.NewService(dogRepo)
	bookingsSvc := bookings.NewService(bookingRepo)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc, log)
	dogs.RegisterRoutes(r, dogsSvc, log)
	bookings.RegisterRoutes(r, bookingsSvc, log)

	return r
}
