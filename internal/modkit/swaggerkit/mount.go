// Package swaggerkit provides helpers to mount Swagger UI and JSON spec
package swaggerkit

import (
	"net/http"

	phttp "patchgate/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options controls the docs mount
type Options struct {
	Enabled     bool
	TitleSuffix string
}

// Mount the Swagger UI and JSON spec if enabled
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(o.TitleSuffix))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
