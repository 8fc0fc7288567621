package pathplot

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoTrajectory is returned by transform calls made before the first Plot
	ErrNoTrajectory = errors.New("trajectory is empty: transform is undefined before first plot")
)

// ConfigurationError reports invalid PathPlotter construction parameters
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("pathplot: invalid %s: %s", e.Field, e.Reason)
}

func spanReason(axis string, lower, upper float64) string {
	return fmt.Sprintf("%s span must be positive (lower=%v, upper=%v)", axis, lower, upper)
}
