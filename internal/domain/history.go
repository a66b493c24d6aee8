package domain

// CallHistoryEntry is a locally persisted record of a previously placed call.
// Entries are created on successful call placement and never mutated; the
// only lifecycle transitions are individual deletion and a full clear.
type CallHistoryEntry struct {
	CallID       string `json:"callId"`
	AgentID      string `json:"agentId"`
	AgentName    string `json:"agentName"`
	Language     string `json:"language"`
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	// Timestamp is the placement time in RFC 3339 form.
	Timestamp string `json:"timestamp"`
	Recorded  bool   `json:"recorded"`
}
