package common

// SuccessResponse is the envelope for single-object replies.
type SuccessResponse struct {
	Data any `json:"data"`
}

func NewSuccessResponse(data any) *SuccessResponse {
	return &SuccessResponse{Data: data}
}
