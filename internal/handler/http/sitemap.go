package http

import (
	"net/http"
	"regexp"
	"slices"

	"github.com/MKhiriev/go-starwars-favorites/models"
	"github.com/go-chi/chi/v5"
)

// routeParamPattern matches a chi URL parameter with a regexp constraint,
// e.g. "{id:[0-9]+}".
var routeParamPattern = regexp.MustCompile(`\{([^:{}]+):[^{}]*\}`)

// sitemap lists every route registered on routes together with its methods.
func (h *Handler) sitemap(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sitemap, err := buildSitemap(routes)
		if err != nil {
			writeError(w, r, err, "*Handler.sitemap")
			return
		}

		writeJSON(w, r, sitemap, http.StatusOK, "*Handler.sitemap")
	}
}

func buildSitemap(routes chi.Routes) (models.Sitemap, error) {
	sitemap := make(models.Sitemap)

	walkFn := func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		pattern := routeParamPattern.ReplaceAllString(route, "{$1}")
		if !slices.Contains(sitemap[pattern], method) {
			sitemap[pattern] = append(sitemap[pattern], method)
		}
		return nil
	}
	if err := chi.Walk(routes, walkFn); err != nil {
		return nil, err
	}

	for pattern := range sitemap {
		slices.Sort(sitemap[pattern])
	}

	return sitemap, nil
}
