package components

import (
	"lab-reservation/internal/pkg/clock"
	"lab-reservation/internal/pkg/config"
	"lab-reservation/internal/usecase/commands"
	"lab-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewAdmissionSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
	),
)

func NewAdmissionSettings(cfg config.Config) commands.AdmissionSettings {
	return commands.AdmissionSettings{
		DeviceArbitration: commands.DeviceArbitration(cfg.Admission.DeviceArbitration),
		Location:          cfg.Admission.Location(),
	}
}
