package client

import "errors"

var (
	errInvalidID     = errors.New("id must be a positive integer")
	errUnknownTarget = errors.New("favorite target must be \"people\" or \"planet\"")
	errUnknownFormat = errors.New("output format must be \"json\" or \"yaml\"")
	errNoUser        = errors.New("--user is required")
)
