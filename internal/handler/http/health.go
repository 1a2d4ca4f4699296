package http

import (
	"net/http"

	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/utils"
	"github.com/redproduct/hotelkeeper/models"
)

// health reports whether the database is reachable.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.db.PingContext(ctx); err != nil {
		log.Err(err).Msg("database ping failed")
		utils.WriteJSON(w, models.Response{
			Status:  "error",
			Message: "database is unreachable",
		}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.Response{
		Status:  "success",
		Message: "database is reachable",
	}, http.StatusOK)
}
