package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	// the size limit sits after withGZip so it counts inflated bytes
	router.Use(h.withTraceID, h.withLogging, withGZip, middleware.RequestSize(h.maxBodySize()))

	// peer protocol
	router.Group(func(r chi.Router) {
		if h.app.PeerSecret != "" {
			r.Use(h.peerAuth)
		}

		r.Get("/syncpoints", h.getSyncpoints)
		r.Get("/changes", h.getChanges)
		r.With(h.changesHashing).Post("/changes", h.receiveChanges)
		r.Get("/file", h.getFile)
		r.Get("/thumbnail", h.getThumbnail)
		r.Get("/file_detail", h.getFileDetail)
	})

	// local control
	router.Group(func(r chi.Router) {
		r.Get("/sync", h.startSync)
		r.Get("/sync_progress", h.getSyncProgress)
	})

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Post("/files", h.addFile)
		r.Route("/files/{id}", func(r chi.Router) {
			r.Get("/", h.getCatalogFile)
			r.Delete("/", h.removeFile)
			r.Post("/tags", h.addTag)
			r.Delete("/tags/{tag}", h.removeTag)
			r.Put("/creation_date", h.setCreationDate)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
