package service

import "errors"

var (
	ErrRendererRequired = errors.New("landing renderer is required")
	ErrRenderFailed     = errors.New("landing render failed")
)
