package api

import "errors"

var (
	// ErrNoState is returned when the surface was built without a session.
	ErrNoState = errors.New("session state not available")
	// ErrInvalidSkill is returned when an update carries a skill without a name.
	ErrInvalidSkill = errors.New("skill name is required")
)
