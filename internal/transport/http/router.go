package http

import (
	"net/http"
	"time"

	httpmw "github.com/hannahenterprises/constructly-server/internal/transport/http/middleware"
	"github.com/hannahenterprises/constructly-server/internal/transport/ws"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(h *Handler, wsServer *ws.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewareChi.RequestID)
	r.Use(middlewareChi.RealIP)
	r.Use(httpmw.RequestLogger)
	r.Use(middlewareChi.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-User-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// WS endpoint: joining room {id} = project {id}
	r.Get("/ws/rooms/{id}", wsServer.HandleWS)

	// All API routes require a bearer token and X-User-ID
	r.Route("/api", func(pr chi.Router) {
		pr.Use(httpmw.AuthMiddleware)
		pr.Use(middlewareChi.Timeout(30 * time.Second))

		pr.Route("/builders", func(br chi.Router) {
			br.Get("/", h.ListBuilders)
			br.Post("/", h.RegisterBuilder)
		})

		pr.Route("/projects", func(pjr chi.Router) {
			pjr.Get("/", h.ListProjects)
			pjr.Post("/", h.CreateProject)

			pjr.Route("/{id}", func(rr chi.Router) {
				rr.Patch("/hire", h.HireProject)
				rr.Get("/quotations", h.ListQuotations)
			})
		})

		pr.Post("/quotations", h.SubmitQuotation)

		pr.Route("/houses", func(hr chi.Router) {
			hr.Get("/", h.ListHouses)
			hr.Post("/", h.CreateHouse)
		})
	})

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
