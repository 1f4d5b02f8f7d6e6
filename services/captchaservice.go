package services

import (
	"context"
	"errors"
	"fmt"

	recaptcha "cloud.google.com/go/recaptchaenterprise/v2/apiv1"
	"cloud.google.com/go/recaptchaenterprise/v2/apiv1/recaptchaenterprisepb"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"ppdb/dto"
)

var ErrCaptchaRejected = errors.New("reCAPTCHA verification failed")

// CaptchaVerifier scores a client-side reCAPTCHA token.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, action, userIP, userAgent string) (*dto.AssessmentResult, error)
}

type RecaptchaVerifier struct {
	client    *recaptcha.Client
	projectID string
	siteKey   string
}

// NewRecaptchaVerifier dials reCAPTCHA Enterprise once; an empty
// credentialsPath falls back to application default credentials.
func NewRecaptchaVerifier(ctx context.Context, projectID, siteKey, credentialsPath string) (*RecaptchaVerifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}
	client, err := recaptcha.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create recaptcha client: %w", err)
	}
	return &RecaptchaVerifier{client: client, projectID: projectID, siteKey: siteKey}, nil
}

func (v *RecaptchaVerifier) Close() error {
	return v.client.Close()
}

func (v *RecaptchaVerifier) Verify(ctx context.Context, token, action, userIP, userAgent string) (*dto.AssessmentResult, error) {
	req := &recaptchaenterprisepb.CreateAssessmentRequest{
		Parent: fmt.Sprintf("projects/%s", v.projectID),
		Assessment: &recaptchaenterprisepb.Assessment{
			Event: &recaptchaenterprisepb.Event{
				Token:         token,
				SiteKey:       v.siteKey,
				UserIpAddress: userIP,
				UserAgent:     userAgent,
			},
		},
	}
	resp, err := v.client.CreateAssessment(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	return evaluateAssessment(resp, action)
}

func evaluateAssessment(resp *recaptchaenterprisepb.Assessment, action string) (*dto.AssessmentResult, error) {
	props := resp.GetTokenProperties()
	if props == nil {
		log.Warn().Msg("recaptcha: token properties missing")
		return nil, ErrCaptchaRejected
	}
	if !props.GetValid() {
		log.Warn().Str("reason", props.GetInvalidReason().String()).Msg("recaptcha: token invalid")
		return nil, ErrCaptchaRejected
	}
	if action != "" && props.GetAction() != action {
		log.Warn().Str("expected", action).Str("got", props.GetAction()).Msg("recaptcha: action mismatch")
		return nil, ErrCaptchaRejected
	}

	result := &dto.AssessmentResult{Action: props.GetAction()}
	if risk := resp.GetRiskAnalysis(); risk != nil {
		result.Score = risk.GetScore()
		for _, reason := range risk.GetReasons() {
			result.Reasons = append(result.Reasons, reason.String())
		}
	}
	return result, nil
}
