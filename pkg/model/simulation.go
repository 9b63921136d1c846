package model

// ScheduleRequest asks for a single policy run over a request queue.
type ScheduleRequest struct {
	Policy    string `json:"policy"`
	Head      int    `json:"head"`
	DiskSize  int    `json:"disk_size"`
	Requests  []int  `json:"requests"`
	Direction string `json:"direction,omitempty"`
}

// CompareRequest asks for every policy to be run over the same queue.
type CompareRequest struct {
	Head      int    `json:"head"`
	DiskSize  int    `json:"disk_size"`
	Requests  []int  `json:"requests"`
	Direction string `json:"direction,omitempty"`
}

// PolicyInfo describes one scheduling policy for discovery responses.
type PolicyInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// QueueSample is a randomly drawn request queue. Only the queue itself is
// generated; head position stays whatever the caller already has.
type QueueSample struct {
	DiskSize int   `json:"disk_size"`
	Count    int   `json:"count"`
	Requests []int `json:"requests"`
}
