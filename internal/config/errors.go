package config

import "gitlab.com/tozd/go/errors"

var (
	// ErrFieldUnset reports a field absent from both the specific layer and
	// its fallback during a merge. This is a configuration error: the
	// fallback layer must be complete for every field the merge touches.
	ErrFieldUnset = errors.Base("field unset in both specific and fallback configuration")

	// ErrNoLanguageTemplate reports that no template applies to the detected
	// language under strict matching. It marks a deliberate skip, not a
	// failure.
	ErrNoLanguageTemplate = errors.Base("no template configured for language")
)
