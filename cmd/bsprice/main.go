package main

import (
	"context"
	"log/slog"
	"os"

	"bsprice-client/cmd/bsprice/commands"
	"bsprice-client/lib/telemetry"
)

func main() {
	ctx := context.Background()

	telemetry.InitSlog(os.Getenv("BSPRICE_DEBUG") != "")

	tel, err := telemetry.SetupFromEnv(ctx, "bsprice")
	if err == nil {
		defer tel.Shutdown(ctx)
		telemetry.InstrumentPerfStats(ctx)
	} else if !os.IsNotExist(err) {
		slog.Warn("failed to set up telemetry", "err", err)
	}

	commands.ExecuteContext(ctx)
}
