package observability

import "go.uber.org/zap"

// NewLogger builds the process-wide structured logger. Development mode uses
// the human-readable console encoder; everything else logs JSON.
func NewLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
