package stats

import (
	"time"

	"github.com/ether/delta-go/lib/document"
	"github.com/gofiber/fiber/v2"
)

type DocumentsChecker struct {
	manager *document.Manager
}

func (d DocumentsChecker) Name() string {
	return "documents"
}

func (d DocumentsChecker) Check() Check {
	if d.manager == nil {
		return Check{
			Status: StatusFail,
			Output: "document manager not initialised",
		}
	}

	return Check{
		Status:     StatusPass,
		Component:  "memory",
		Observed:   len(d.manager.List()),
		ObservedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Handler godoc
// @Summary Health check endpoint
// @Description Returns the health status of the service (RFC Health Check Draft)
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} HealthResponse "Service is unhealthy"
// @Router /health [get]
func Handler(
	version string,
	releaseID string,
	serviceID string,
	checkers []Checker,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp := HealthResponse{
			Status:    StatusPass,
			Version:   version,
			ReleaseID: releaseID,
			ServiceID: serviceID,
			Checks:    map[string][]Check{},
		}

		httpStatus := fiber.StatusOK

		for _, checker := range checkers {
			check := checker.Check()
			resp.Checks[checker.Name()] = []Check{check}

			switch check.Status {
			case StatusFail:
				resp.Status = StatusFail
				httpStatus = fiber.StatusServiceUnavailable
			case StatusWarn:
				if resp.Status != StatusFail {
					resp.Status = StatusWarn
				}
			}
		}

		return c.Status(httpStatus).JSON(resp)
	}
}
