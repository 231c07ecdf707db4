package errors

// MaxStepSize is the largest step size that still yields one step per side.
const MaxStepSize = 100

// ValidateStepSize checks that step is usable as a perimeter grid step.
//
// The step must lie in [1, 100]. When strict is set it must also divide 100
// evenly; otherwise callers floor 100/step and the last grid cell on each
// side is simply wider than the rest.
func ValidateStepSize(step int, strict bool) error {
	if step <= 0 {
		return New(ErrCodeInvalidStepSize, "step size must be positive, got %d", step)
	}
	if step > MaxStepSize {
		return New(ErrCodeInvalidStepSize, "step size must be at most %d, got %d", MaxStepSize, step)
	}
	if strict && MaxStepSize%step != 0 {
		return New(ErrCodeInvalidStepSize, "step size %d does not divide %d", step, MaxStepSize)
	}
	return nil
}

// ValidateMean checks that mean is a usable target vertex count.
func ValidateMean(mean int) error {
	if mean < 0 {
		return New(ErrCodeInvalidMean, "mean amount of vertices cannot be negative, got %d", mean)
	}
	return nil
}
