package request

type UpdateSettingRequest struct {
	Value *string `json:"value" binding:"required"`
}
