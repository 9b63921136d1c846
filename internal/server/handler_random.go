package server

import (
	"net/http"

	"github.com/me/goseek/internal/config"
	"github.com/me/goseek/internal/request"
	"github.com/me/goseek/pkg/model"
)

func (s *Server) handleRandomQueue(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	diskSize := config.DefaultDiskSize
	count := config.DefaultSampleCount

	var errs []model.FieldError
	if v := r.URL.Query().Get("disk_size"); v != "" {
		n, ferr := request.ParseInt("disk_size", v)
		if ferr != nil {
			errs = append(errs, *ferr)
		} else {
			diskSize = n
		}
	}
	if v := r.URL.Query().Get("count"); v != "" {
		n, ferr := request.ParseInt("count", v)
		if ferr != nil {
			errs = append(errs, *ferr)
		} else {
			count = n
		}
	}
	if len(errs) > 0 {
		respondError(w, reqID, http.StatusBadRequest,
			model.NewValidationError("Invalid query parameters", errs...))
		return
	}

	if apiErr := s.validator.Sample(count, diskSize); apiErr != nil {
		respondError(w, reqID, http.StatusBadRequest, apiErr)
		return
	}

	respondOK(w, reqID, model.QueueSample{
		DiskSize: diskSize,
		Count:    count,
		Requests: s.sampler.Draw(count, diskSize),
	})
}
