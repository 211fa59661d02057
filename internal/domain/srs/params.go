package srs

// Params defines all configurable parameters for the SRS algorithm
type Params struct {
	// Ease factor limits
	MinEaseFactor float64
	MaxEaseFactor float64

	// FailurePenalty is subtracted from the ease factor on a failed review.
	FailurePenalty float64

	// PassingQuality is the lowest quality rating that counts as a success.
	PassingQuality Quality

	// Intervals in days
	FirstInterval   int
	SecondInterval  int
	FailureInterval int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance.
// Zero values keep the defaults.
type ParamsConfig struct {
	MinEaseFactor  float64
	MaxEaseFactor  float64
	FailurePenalty float64

	PassingQuality Quality

	FirstInterval   int
	SecondInterval  int
	FailureInterval int
}

// NewDefaultParams creates a new Params instance with the standard SM-2 values
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:   1.3,
		MaxEaseFactor:   2.5,
		FailurePenalty:  0.2,
		PassingQuality:  QualityCorrectDifficult,
		FirstInterval:   1,
		SecondInterval:  6,
		FailureInterval: 1,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.MaxEaseFactor > 0 {
		params.MaxEaseFactor = config.MaxEaseFactor
	}
	if config.FailurePenalty > 0 {
		params.FailurePenalty = config.FailurePenalty
	}
	if config.PassingQuality > 0 && config.PassingQuality <= QualityPerfect {
		params.PassingQuality = config.PassingQuality
	}
	if config.FirstInterval > 0 {
		params.FirstInterval = config.FirstInterval
	}
	if config.SecondInterval > 0 {
		params.SecondInterval = config.SecondInterval
	}
	if config.FailureInterval > 0 {
		params.FailureInterval = config.FailureInterval
	}

	// Keep the limits ordered even if only one of them was overridden.
	if params.MaxEaseFactor < params.MinEaseFactor {
		params.MaxEaseFactor = params.MinEaseFactor
	}

	return params
}
