package campaigns

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

// ReportExit warns operators about campaigns that ended unsuccessfully.
// Clean exits and superseded runs are already logged by the supervisor.
func ReportExit(exit Exit) {
	if exit.Superseded {
		return
	}

	switch state := exit.State.(type) {
	case entities.StoppedState:
		if state.Status.Success {
			return
		}
	case entities.ErrorState:
	default:
		return
	}

	logger.WithField("campaign", exit.Name).
		Warnf("Campaign ended unsuccessfully: %s", entities.FormatCampaignState(exit.State))
}
