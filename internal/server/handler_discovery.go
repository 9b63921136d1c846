package server

import "net/http"

type endpointInfo struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

type discoveryResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   []endpointInfo `json:"endpoints"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, discoveryResponse{
		Name:        "GoSeek API",
		Version:     "v1",
		Description: "GoSeek Disk Scheduling Simulator — seek sequences and total seek distance for the classic disk-arm policies",
		Endpoints: []endpointInfo{
			{"/api/v1/policies", []string{"GET"}, "List available scheduling policies"},
			{"/api/v1/schedule", []string{"POST"}, "Run one policy over a request queue"},
			{"/api/v1/compare", []string{"POST"}, "Run every policy over the same queue and rank them"},
			{"/api/v1/random", []string{"GET"}, "Draw a random request queue (?disk_size=, ?count=)"},
			{"/api/v1/health", []string{"GET"}, "Server health and version"},
		},
	})
}
