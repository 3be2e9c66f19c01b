package response

import (
	"time"

	"study-booking/internal/domain/setting"
	"study-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SettingResponse struct {
	Key       string     `json:"key"`
	Value     string     `json:"value"`
	IsDefault bool       `json:"isDefault"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func FromSettingView(v *queries.SettingView) *SettingResponse {
	var out SettingResponse
	_ = copier.Copy(&out, v)
	return &out
}

func FromSettingViews(vs []*queries.SettingView) []*SettingResponse {
	out := make([]*SettingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromSettingView(v)
	}
	return out
}

func FromSetting(s *setting.Setting) *SettingResponse {
	updatedAt := s.UpdatedAt()
	return &SettingResponse{
		Key:       s.Key().String(),
		Value:     s.Value(),
		UpdatedAt: &updatedAt,
	}
}
