package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"porygon/external"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	external.WritePrometheusTextfile()
	if err != nil {
		log.Errorf("%s", err)
		external.ReportError(err)
	}
	closeLogs()
	if err != nil {
		os.Exit(1)
	}
}
