package service

import (
	"context"
	"fmt"
	"io"

	"github.com/vibast-solutions/ms-go-landing/app/entity"
)

type pageRenderer interface {
	Page() entity.Page
	Render(w io.Writer) error
	Bytes() []byte
}

// LandingService serves page content and markup from the same renderer, so
// the two views can't describe different pages.
type LandingService struct {
	renderer pageRenderer
}

func NewLandingService(renderer pageRenderer) (*LandingService, error) {
	if renderer == nil {
		return nil, ErrRendererRequired
	}
	return &LandingService{renderer: renderer}, nil
}

func (s *LandingService) Page() entity.Page {
	return s.renderer.Page()
}

// Render writes the landing document unless ctx is already done.
func (s *LandingService) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.renderer.Render(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return nil
}

func (s *LandingService) HTML() []byte {
	return s.renderer.Bytes()
}
