package flowcast

import "fmt"

// Config holds the process-wide modelling constants. It is passed
// explicitly to every constructor so that construction stays pure and
// testable in isolation; there is no package-level state.
type Config struct {
	// YearsInModel is the number of years the model runs over.
	YearsInModel int
	// PeriodsInYear is the number of periods per year (4 for quarters).
	PeriodsInYear int
}

// DefaultConfig is the standard 3-year quarterly model.
func DefaultConfig() Config { return Config{YearsInModel: 3, PeriodsInYear: 4} }

// Horizon returns the total number of periods in the model.
func (c Config) Horizon() int { return c.YearsInModel * c.PeriodsInYear }

// Validate checks that both constants are strictly positive.
func (c Config) Validate() error {
	if c.YearsInModel <= 0 {
		return fmt.Errorf("%w: years in model must be positive, got %d", ErrInvalidParameter, c.YearsInModel)
	}
	if c.PeriodsInYear <= 0 {
		return fmt.Errorf("%w: periods in year must be positive, got %d", ErrInvalidParameter, c.PeriodsInYear)
	}
	return nil
}

// Year returns the 0-based year a period falls in.
func (c Config) Year(period int) int { return period / c.PeriodsInYear }

// Label returns the human-readable label for a period, e.g. "Y1Q3" for
// period 2 of a quarterly model. Labels key the flat export record of a
// flow, so they must be unique and stable across the horizon.
func (c Config) Label(period int) string {
	return fmt.Sprintf("Y%dQ%d", c.Year(period)+1, period%c.PeriodsInYear+1)
}

// Labels returns the labels of all periods in the horizon, in order.
func (c Config) Labels() []string {
	labels := make([]string, c.Horizon())
	for t := range labels {
		labels[t] = c.Label(t)
	}
	return labels
}
