package request_models

type HybridSearchRequest struct {
	Query     string `json:"query"`
	SessionID string `json:"session_id"`
}

type AssistantRequest struct {
	Message string `json:"message"`
}
