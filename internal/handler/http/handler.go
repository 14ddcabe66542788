package http

import (
	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/service"
)

type Handler struct {
	services *service.Services

	// foreignServers builds the file source for the origin of a change
	// push. Nil disables fetching bytes back from the pushing peer.
	foreignServers adapter.ForeignServerFactory

	app config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, foreignServers adapter.ForeignServerFactory, app config.App, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("peer_auth", app.PeerSecret != "").
		Bool("hashing", app.HashKey != "").
		Msg("http handler created")

	return &Handler{
		services:       services,
		foreignServers: foreignServers,
		app:            app,
		logger:         logger,
	}
}
