//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"study-booking/internal/domain/setting"
	reqdto "study-booking/internal/handler/dto/request"
	"study-booking/internal/pkg/clock"
	"study-booking/internal/usecase/commands"
	"study-booking/tests/common/builder"
	"study-booking/tests/common/memuow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingCommands_Update(t *testing.T) {
	now := builder.NewBookingBuilder().Now
	ptr := func(s string) *string { return &s }

	tests := []struct {
		name      string
		key       string
		req       reqdto.UpdateSettingRequest
		failWrite error
		wantErr   bool
		wantValue string
	}{
		{name: "stores the value", key: "confirmation_body", req: reqdto.UpdateSettingRequest{Value: ptr("See you at {{slot}}")}, wantValue: "See you at {{slot}}"},
		{name: "empty value is kept", key: "consent_html", req: reqdto.UpdateSettingRequest{Value: ptr("")}, wantValue: ""},
		{name: "unknown key", key: "theme", req: reqdto.UpdateSettingRequest{Value: ptr("dark")}, wantErr: true},
		{name: "missing value", key: "email_body", req: reqdto.UpdateSettingRequest{}, wantErr: true},
		{name: "value too long", key: "email_body", req: reqdto.UpdateSettingRequest{Value: ptr(strings.Repeat("x", setting.MaxValueLength+1))}, wantErr: true},
		{name: "storage failure", key: "email_body", req: reqdto.UpdateSettingRequest{Value: ptr("hi")}, failWrite: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memuow.New()
			store.FailWrites = tt.failWrite
			cmds := commands.NewSettingCommands(store, clock.NewFixedClock(now))

			got, err := cmds.Update(context.Background(), tt.key, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				if tt.failWrite == nil {
					assert.ErrorIs(t, err, commands.ErrInvalidInput)
				}
				_, stored := store.Setting(setting.Key(tt.key))
				assert.False(t, stored)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, got.Value())
			assert.True(t, got.UpdatedAt().Equal(now))
			value, stored := store.Setting(setting.Key(tt.key))
			assert.True(t, stored)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
