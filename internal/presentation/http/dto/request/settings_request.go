package request

// SetSettingRequest is the request body for setting a key/value pair.
type SetSettingRequest struct {
	Value string `json:"value" binding:"required"`
}
