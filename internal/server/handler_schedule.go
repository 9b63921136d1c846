package server

import (
	"encoding/json"
	"net/http"

	"github.com/me/goseek/internal/request"
	"github.com/me/goseek/pkg/model"
	"github.com/me/goseek/pkg/sched"
)

type comparisonResponse struct {
	Schedules []sched.Schedule `json:"schedules"`
	Best      string           `json:"best"`
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req model.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "Invalid JSON body: " + err.Error(),
		})
		return
	}

	policy, err := sched.ParsePolicy(req.Policy)
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, model.NewValidationError(
			"Invalid simulation input",
			model.FieldError{Field: "policy", Reason: model.ReasonUnknownPolicy, Message: err.Error()},
		))
		return
	}

	dir, queue, apiErr := s.checkWorkload(req.Direction, req.Head, req.DiskSize, req.Requests)
	if apiErr != nil {
		respondError(w, reqID, http.StatusBadRequest, apiErr)
		return
	}

	schedule, err := sched.Run(policy, sched.Cylinder(req.Head), queue, req.DiskSize, dir)
	if err != nil {
		respondError(w, reqID, http.StatusInternalServerError, &model.APIError{
			Code:    model.ErrInternal,
			Message: err.Error(),
		})
		return
	}

	s.logger.Debug("schedule computed",
		"policy", policy, "total_seek", schedule.TotalSeek, "request_id", reqID)
	respondOK(w, reqID, schedule)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req model.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest, &model.APIError{
			Code:    model.ErrValidation,
			Message: "Invalid JSON body: " + err.Error(),
		})
		return
	}

	dir, queue, apiErr := s.checkWorkload(req.Direction, req.Head, req.DiskSize, req.Requests)
	if apiErr != nil {
		respondError(w, reqID, http.StatusBadRequest, apiErr)
		return
	}

	schedules := sched.Compare(sched.Cylinder(req.Head), queue, req.DiskSize, dir)
	best := schedules[sched.Best(schedules)]

	s.logger.Debug("comparison computed",
		"best", best.Policy, "total_seek", best.TotalSeek, "request_id", reqID)
	respondOK(w, reqID, comparisonResponse{
		Schedules: schedules,
		Best:      string(best.Policy),
	})
}

// checkWorkload resolves the sweep direction and range-checks the workload
// shared by the schedule and compare endpoints.
func (s *Server) checkWorkload(direction string, head, diskSize int, requests []int) (sched.Direction, []sched.Cylinder, *model.APIError) {
	dir, err := sched.ParseDirection(direction)
	if err != nil {
		return "", nil, model.NewValidationError(
			"Invalid simulation input",
			model.FieldError{Field: "direction", Reason: model.ReasonUnknownDirection, Message: err.Error()},
		)
	}
	if apiErr := s.validator.Workload(head, diskSize, requests); apiErr != nil {
		return "", nil, apiErr
	}
	return dir, request.Cylinders(requests), nil
}
