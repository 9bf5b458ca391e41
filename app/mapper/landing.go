package mapper

import (
	"fmt"

	"github.com/vibast-solutions/ms-go-landing/app/dto"
	"github.com/vibast-solutions/ms-go-landing/app/entity"
	"google.golang.org/protobuf/types/known/structpb"
)

func PageToResponse(page entity.Page) *dto.LandingPageResponse {
	plans := make([]string, len(page.Plans))
	copy(plans, page.Plans)

	return &dto.LandingPageResponse{
		Title:         page.Title,
		Description:   page.Description,
		SampleHeading: page.SampleHeading,
		Plans:         plans,
	}
}

func PageToProto(page entity.Page) (*structpb.Struct, error) {
	plans := make([]any, 0, len(page.Plans))
	for _, plan := range page.Plans {
		plans = append(plans, plan)
	}

	out, err := structpb.NewStruct(map[string]any{
		"title":          page.Title,
		"description":    page.Description,
		"sample_heading": page.SampleHeading,
		"plans":          plans,
	})
	if err != nil {
		return nil, fmt.Errorf("map landing page to proto: %w", err)
	}
	return out, nil
}
