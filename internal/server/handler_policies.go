package server

import (
	"net/http"

	"github.com/me/goseek/pkg/model"
	"github.com/me/goseek/pkg/sched"
)

func (s *Server) handleListPolicies(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	policies := sched.Policies()
	infos := make([]model.PolicyInfo, 0, len(policies))
	for _, p := range policies {
		infos = append(infos, model.PolicyInfo{
			Name:        string(p),
			DisplayName: p.DisplayName(),
			Description: p.Description(),
		})
	}

	respondOK(w, reqID, infos)
}
