package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /api/calculator prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/api/calculator", func(r chi.Router) {
		r.Post("/calculate", HandleCalculate)
		r.Post("/chain", HandleChain)
		r.Get("/health", HandleHealth)
	})
}
