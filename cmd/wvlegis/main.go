package main

import (
	"context"

	"wvlegis-backend/cmd/wvlegis/commands"
	"wvlegis-backend/lib/serviceutil"
	"wvlegis-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	// telemetry is best-effort for the CLI, running without a
	// telemetry.json5 is fine
	t, _ := telemetry.SetupFromEnv(ctx, "wvlegis-cli")
	defer t.Shutdown(context.Background())
	telemetry.InitSlog(true)
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
