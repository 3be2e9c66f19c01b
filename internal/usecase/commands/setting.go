package commands

import (
	"context"
	"log/slog"

	"study-booking/internal/domain/setting"
	reqdto "study-booking/internal/handler/dto/request"
	"study-booking/internal/pkg/clock"
	"study-booking/internal/pkg/errs"
	"study-booking/internal/usecase/shared"
)

type SettingCommands interface {
	Update(ctx context.Context, key string, req reqdto.UpdateSettingRequest) (*setting.Setting, error)
}

type settingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSettingCommands(uow shared.UnitOfWork, clk clock.Clock) SettingCommands {
	return &settingCommandsImpl{uow: uow, clock: clk}
}

func (s *settingCommandsImpl) Update(ctx context.Context, key string, req reqdto.UpdateSettingRequest) (*setting.Setting, error) {
	k, err := setting.ParseKey(key)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	if req.Value == nil {
		return nil, ErrInvalidInput
	}

	entity, err := setting.NewSetting(k, *req.Value, s.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().Upsert(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("setting updated", "key", k.String(), "length", len(entity.Value()))
	return entity, nil
}
