package external

import (
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"porygon/config"
)

func InitSentry() {
	if config.Config.Sentry.DSN != "" {
		log.Infof("Sentry init")

		err := sentry.Init(sentry.ClientOptions{
			Dsn:        config.Config.Sentry.DSN,
			Debug:      false,
			SampleRate: config.Config.Sentry.SampleRate,
		})
		if err != nil {
			log.Errorf("Sentry Init Failed: %s", err)
		}
	}
}

// ReportError sends err to Sentry when it is configured and waits briefly
// for delivery, since the process is about to exit.
func ReportError(err error) {
	if config.Config.Sentry.DSN == "" || err == nil {
		return
	}
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
}
