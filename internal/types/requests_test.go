package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateSiteRequest_Validate(t *testing.T) {
	req := &CreateSiteRequest{Domain: "acme.com"}
	assert.NoError(t, req.Validate())

	req = &CreateSiteRequest{}
	assert.Error(t, req.Validate())

	req = &CreateSiteRequest{Domain: "ab"}
	assert.Error(t, req.Validate())
}

func TestSprintRequestInput_Validate(t *testing.T) {
	input := &SprintRequestInput{Email: "owner@acme.com"}
	assert.NoError(t, input.Validate())

	input = &SprintRequestInput{Email: "not-an-email"}
	assert.Error(t, input.Validate())

	input = &SprintRequestInput{}
	assert.Error(t, input.Validate())
}

func TestReadinessReport_Blockers(t *testing.T) {
	report := &ReadinessReport{
		Requirements: []RequirementResult{
			{Key: "https", Label: "HTTPS enabled", Passed: true},
			{Key: "phone", Label: "Phone visible on site", Passed: false},
			{Key: "testimonials", Label: "Testimonials shown", Passed: false},
		},
	}

	assert.Equal(t, []string{"Phone visible on site", "Testimonials shown"}, report.Blockers())

	empty := &ReadinessReport{}
	assert.Nil(t, empty.Blockers())
}
