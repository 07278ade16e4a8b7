package http

import (
	"net/http"

	"github.com/MKhiriev/work-notes/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.appInfo.GetAppInfo(r.Context()), http.StatusOK)
}
