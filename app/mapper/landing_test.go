package mapper

import (
	"testing"

	"github.com/vibast-solutions/ms-go-landing/app/entity"
)

func TestPageToResponse(t *testing.T) {
	page := entity.LandingPage()
	resp := PageToResponse(page)

	if resp.Title != page.Title || resp.Description != page.Description || resp.SampleHeading != page.SampleHeading {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Plans) != 3 || resp.Plans[2] != "Persist in localStorage" {
		t.Fatalf("unexpected plans: %v", resp.Plans)
	}

	resp.Plans[0] = "mutated"
	if page.Plans[0] == "mutated" {
		t.Fatal("response shares plans with page")
	}
}

func TestPageToProto(t *testing.T) {
	out, err := PageToProto(entity.LandingPage())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	fields := out.GetFields()
	if fields["title"].GetStringValue() != "Diffium To‑Do" {
		t.Fatalf("unexpected title: %v", fields["title"])
	}
	if fields["sample_heading"].GetStringValue() != "Sample" {
		t.Fatalf("unexpected sample heading: %v", fields["sample_heading"])
	}

	plans := fields["plans"].GetListValue().GetValues()
	want := entity.PlannedFeatures()
	if len(plans) != len(want) {
		t.Fatalf("expected %d plans, got %d", len(want), len(plans))
	}
	for i := range want {
		if plans[i].GetStringValue() != want[i] {
			t.Fatalf("plan %d: expected %q, got %q", i, want[i], plans[i].GetStringValue())
		}
	}
}
