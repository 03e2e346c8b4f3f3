package main

import (
	"context"

	"autobyte/cmd/autobyte/commands"
	"autobyte/lib/telemetry"
	"autobyte/lib/util/serviceutil"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(false)
	telemetry.SetupFromEnv(ctx, "autobyte")
	telemetry.InstrumentPerfStats(ctx)
	defer telemetry.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
