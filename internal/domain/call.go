package domain

// CallRequest is the body of POST /api/call.
type CallRequest struct {
	PhoneNumber  string `json:"phoneNumber"`
	SystemPrompt string `json:"systemPrompt"`
	Record       bool   `json:"record"`
}

// CallResponse is the calling API's answer to a placement request.
type CallResponse struct {
	Success bool   `json:"success"`
	CallSid string `json:"callSid"`
}

// Recording is a server-held audio artifact associated with a call. It is
// fetched on demand and never persisted locally.
type Recording struct {
	Sid            string `json:"sid"`
	Duration       string `json:"duration"`
	Status         string `json:"status"`
	DateCreated    string `json:"dateCreated"`
	DownloadURLMP3 string `json:"downloadUrlMp3"`
	DownloadURLWav string `json:"downloadUrlWav"`
}

// RecordingsResponse is the answer to GET /api/call/{callId}/recordings.
type RecordingsResponse struct {
	Success    bool        `json:"success"`
	CallSid    string      `json:"callSid"`
	Recordings []Recording `json:"recordings"`
}
