package model

const (
	FrameCandidate = "candidate"
	FrameResult    = "result"
	FrameNotFound  = "not_found"
	FrameError     = "error"
)

type (
	ShiftRequest struct {
		Message string `json:"message"`
		Key     int    `json:"key"`
	}

	ShiftResponse struct {
		Message string `json:"message"`
	}

	CrackRequest struct {
		Ciphertext string `json:"ciphertext"`
		Marker     string `json:"marker,omitempty"`
	}

	// StreamFrame is a single websocket message of a streamed crack.
	StreamFrame struct {
		Type      string     `json:"type"`
		Candidate *Candidate `json:"candidate,omitempty"`
		Recovery  *Recovery  `json:"recovery,omitempty"`
		Error     string     `json:"error,omitempty"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}
)
