package services

import (
	"testing"

	"cloud.google.com/go/recaptchaenterprise/v2/apiv1/recaptchaenterprisepb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAssessment(t *testing.T) {
	valid := &recaptchaenterprisepb.Assessment{
		TokenProperties: &recaptchaenterprisepb.TokenProperties{Valid: true, Action: "login"},
		RiskAnalysis: &recaptchaenterprisepb.RiskAnalysis{
			Score:   0.9,
			Reasons: []recaptchaenterprisepb.RiskAnalysis_ClassificationReason{recaptchaenterprisepb.RiskAnalysis_AUTOMATION},
		},
	}

	res, err := evaluateAssessment(valid, "login")
	require.NoError(t, err)
	assert.Equal(t, "login", res.Action)
	assert.InDelta(t, 0.9, res.Score, 0.0001)
	assert.Equal(t, []string{"AUTOMATION"}, res.Reasons)

	_, err = evaluateAssessment(valid, "register")
	assert.ErrorIs(t, err, ErrCaptchaRejected)

	invalid := &recaptchaenterprisepb.Assessment{
		TokenProperties: &recaptchaenterprisepb.TokenProperties{Valid: false, InvalidReason: recaptchaenterprisepb.TokenProperties_EXPIRED},
	}
	_, err = evaluateAssessment(invalid, "")
	assert.ErrorIs(t, err, ErrCaptchaRejected)

	_, err = evaluateAssessment(&recaptchaenterprisepb.Assessment{}, "")
	assert.ErrorIs(t, err, ErrCaptchaRejected)
}
