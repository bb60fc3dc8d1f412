package get_eligible_applicants

import (
	"context"

	"github.com/m04kA/ADM-SchedulingService/internal/integrations/admissions"
)

type AdmissionsClient interface {
	ListEligibleApplicants(ctx context.Context, programID *int64) ([]admissions.Applicant, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
