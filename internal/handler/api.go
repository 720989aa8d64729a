package handler

import (
	"github.com/creatorpage/internal/service"
	"go.uber.org/zap"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	directory *service.Directory
	log       *zap.Logger
}

// NewAPI constructs a handler set on top of the content directory.
func NewAPI(directory *service.Directory, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{directory: directory, log: log}
}
