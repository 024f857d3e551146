package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TopicsResponse lists the selectable interest topics.
type TopicsResponse struct {
	Topics []string `json:"topics"`
}
