package hold_actions

import (
	"context"

	createHold "github.com/m04kA/KBS-ReservationService/internal/usecase/create_hold"
	extendHold "github.com/m04kA/KBS-ReservationService/internal/usecase/extend_hold"
	releaseHold "github.com/m04kA/KBS-ReservationService/internal/usecase/release_hold"
)

type CreateHoldUseCase interface {
	Execute(ctx context.Context, req *createHold.Request) (*createHold.Response, error)
}

type ExtendHoldUseCase interface {
	Execute(ctx context.Context, req *extendHold.Request) (*extendHold.Response, error)
}

type ReleaseHoldUseCase interface {
	Execute(ctx context.Context, req *releaseHold.Request) (*releaseHold.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
