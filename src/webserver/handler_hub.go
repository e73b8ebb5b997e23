package webserver

import (
	"net/http"

	"github.com/ironsmile/melodyhub/src/catalog"
	"github.com/ironsmile/melodyhub/src/enrich"
	"github.com/ironsmile/melodyhub/src/webserver/webutils"
)

// HubHandler serves the whole catalog with enriched album covers.
type HubHandler struct {
	store    catalog.Store
	enricher *enrich.Enricher
}

// NewHubHandler returns a new HubHandler. The enricher may be nil.
func NewHubHandler(store catalog.Store, enricher *enrich.Enricher) http.Handler {
	return HandlerFuncWithError((&HubHandler{
		store:    store,
		enricher: enricher,
	}).hub)
}

func (h *HubHandler) hub(w http.ResponseWriter, req *http.Request) error {
	cat, err := h.store.Load(req.Context())
	if err != nil {
		return err
	}

	h.enricher.Catalog(req.Context(), cat)

	webutils.JSON(w, http.StatusOK, cat)
	return nil
}
