package scoring

import (
	"errors"

	"github.com/sindhuatluri/LOC/internal/domain/model"
)

// Unavailable satisfies every scorer port by failing. It is installed when
// the artifacts cannot be loaded, so the service keeps serving health
// checks while every decision reports scoring as unavailable.
type Unavailable struct {
	err error
}

// NewUnavailable creates a failing scorer that reports err as the cause.
func NewUnavailable(err error) *Unavailable {
	if err == nil {
		err = errors.New("scoring artifacts not loaded")
	}
	return &Unavailable{err: err}
}

func (u *Unavailable) ScoreApproval(model.FeatureVector) (bool, error) { return false, u.err }
func (u *Unavailable) ScoreLimit(model.FeatureVector) (float64, error) { return 0, u.err }
func (u *Unavailable) ScoreRate(model.FeatureVector) (float64, error)  { return 0, u.err }
