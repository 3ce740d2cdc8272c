package stats

type HealthStatus string

const (
	StatusPass HealthStatus = "pass"
	StatusWarn HealthStatus = "warn"
	StatusFail HealthStatus = "fail"
)

type Check struct {
	Status     HealthStatus `json:"status"`
	Component  string       `json:"component,omitempty"`
	Observed   any          `json:"observedValue,omitempty"`
	ObservedAt string       `json:"observedAt,omitempty"`
	Output     string       `json:"output,omitempty"`
}

type HealthResponse struct {
	Status    HealthStatus       `json:"status"`
	Version   string             `json:"version,omitempty"`
	ReleaseID string             `json:"releaseId,omitempty"`
	ServiceID string             `json:"serviceId,omitempty"`
	Checks    map[string][]Check `json:"checks,omitempty"`
}

// Checker contributes one entry to the health response.
type Checker interface {
	Name() string
	Check() Check
}

// CheckerFunc adapts a plain function to a Checker.
type CheckerFunc struct {
	CheckName string
	Fn        func() Check
}

func (f CheckerFunc) Name() string {
	return f.CheckName
}

func (f CheckerFunc) Check() Check {
	return f.Fn()
}
