package model

type (
	// Candidate is one brute-force trial: the key and the text it decrypts to.
	Candidate struct {
		Key  int    `json:"key" bson:"key"`
		Text string `json:"text" bson:"text"`
	}
)
