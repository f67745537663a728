package loo

import (
	"github.com/pkg/errors"
)

var (
	// ErrTooFewItems signals a configuration error: a leave-one-out cover
	// needs at least two items, otherwise a background set would be empty.
	ErrTooFewItems = errors.New("item set must contain at least two items")
	// ErrDuplicateItem signals a configuration error: items must be distinct.
	ErrDuplicateItem = errors.New("item set contains a duplicate")

	// ErrJobLaunch marks a job whose executable could not be started.
	ErrJobLaunch = errors.New("unable to launch job")
	// ErrJobExit marks a job that terminated with a nonzero status.
	ErrJobExit = errors.New("job exited with nonzero status")

	// ErrArtifactMissing signals that a search job left no artifact behind.
	ErrArtifactMissing = errors.New("artifact does not exist")
	// ErrArtifactMalformed signals a data record with no fields.
	ErrArtifactMalformed = errors.New("artifact record has no fields")
)
