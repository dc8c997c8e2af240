// internal/workers/content/send-review-notification/handler_test.go
package sendreviewnotification

import (
	"context"
	"errors"
	"testing"
	"time"

	"carkeypro-workers/internal/common/logger"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (m *mockSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.inputs = append(m.inputs, params)
	return &ses.SendEmailOutput{}, nil
}

type mockSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (m *mockSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.inputs = append(m.inputs, params)
	return &sns.PublishOutput{}, nil
}

func createTestHandler(t *testing.T, cfg *Config, sesClient SESService, snsClient SNSService) *Handler {
	t.Helper()
	return &Handler{
		config:    cfg,
		logger:    logger.NewTestLogger(t),
		sesClient: sesClient,
		snsClient: snsClient,
	}
}

func createTestInput() *Input {
	return &Input{
		JobID:           "job-1042",
		PostDraftID:     "draft-abc",
		ServiceType:     "automotive",
		CampaignID:      "gbp-automotive-2026-03-14",
		FranchiseeName:  "Andrea",
		FranchiseeEmail: "andrea@example.com",
		FranchiseePhone: "+17055551234",
	}
}

func TestExecute_EmailAndSMS(t *testing.T) {
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	handler := createTestHandler(t, &Config{
		EmailEnabled: true,
		SMSEnabled:   true,
		FromEmail:    "noreply@carkeypro.ca",
		DashboardURL: "https://dashboard.carkeypro.ca",
		Timeout:      5 * time.Second,
	}, sesMock, snsMock)

	output, err := handler.Execute(context.Background(), createTestInput())

	require.NoError(t, err)
	assert.Equal(t, StatusSent, output.Status)
	assert.NotEmpty(t, output.NotificationID)

	_, err = time.Parse(time.RFC3339, output.SentAt)
	assert.NoError(t, err)

	require.Len(t, sesMock.inputs, 1)
	email := sesMock.inputs[0]
	assert.Equal(t, []string{"andrea@example.com"}, email.Destination.ToAddresses)
	assert.Contains(t, *email.Message.Body.Text.Data, "job job-1042")
	assert.Contains(t, *email.Message.Body.Text.Data, "https://dashboard.carkeypro.ca/drafts/draft-abc")
	assert.Contains(t, *email.Message.Body.Text.Data, "Hi Andrea,")

	require.Len(t, snsMock.inputs, 1)
	assert.Equal(t, "+17055551234", *snsMock.inputs[0].PhoneNumber)
}

func TestExecute_EmailOnly(t *testing.T) {
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	handler := createTestHandler(t, &Config{
		EmailEnabled: true,
		SMSEnabled:   false,
		Timeout:      5 * time.Second,
	}, sesMock, snsMock)

	output, err := handler.Execute(context.Background(), createTestInput())

	require.NoError(t, err)
	assert.Equal(t, StatusSent, output.Status)
	assert.Len(t, sesMock.inputs, 1)
	assert.Empty(t, snsMock.inputs)
}

func TestExecute_AllChannelsDisabled(t *testing.T) {
	handler := createTestHandler(t, &Config{Timeout: 5 * time.Second}, &mockSES{}, &mockSNS{})

	output, err := handler.Execute(context.Background(), createTestInput())

	require.NoError(t, err)
	assert.Equal(t, StatusDisabled, output.Status)
}

func TestExecute_NoContactInfo(t *testing.T) {
	handler := createTestHandler(t, &Config{
		EmailEnabled: true,
		SMSEnabled:   true,
		Timeout:      5 * time.Second,
	}, &mockSES{}, &mockSNS{})

	input := createTestInput()
	input.FranchiseeEmail = ""
	input.FranchiseePhone = ""

	output, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, StatusDisabled, output.Status)
}

func TestExecute_EmailFailure(t *testing.T) {
	sesMock := &mockSES{err: errors.New("ses throttled")}
	handler := createTestHandler(t, &Config{
		EmailEnabled: true,
		Timeout:      5 * time.Second,
	}, sesMock, &mockSNS{})

	output, err := handler.Execute(context.Background(), createTestInput())

	require.NoError(t, err)
	assert.Equal(t, StatusFailed, output.Status)
}

func TestExecute_SMSFailure(t *testing.T) {
	snsMock := &mockSNS{err: errors.New("sns unavailable")}
	handler := createTestHandler(t, &Config{
		SMSEnabled: true,
		Timeout:    5 * time.Second,
	}, &mockSES{}, snsMock)

	output, err := handler.Execute(context.Background(), createTestInput())

	require.NoError(t, err)
	assert.Equal(t, StatusFailed, output.Status)
}

func TestExecute_MissingDraftID(t *testing.T) {
	handler := createTestHandler(t, &Config{Timeout: 5 * time.Second}, &mockSES{}, &mockSNS{})

	output, err := handler.Execute(context.Background(), &Input{JobID: "job-1"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputValidationFailed))
	assert.Nil(t, output)
}

func TestBuildMessages_DefaultsAndOmissions(t *testing.T) {
	handler := createTestHandler(t, &Config{Timeout: 5 * time.Second}, &mockSES{}, &mockSNS{})

	subject, emailBody, smsBody := handler.buildMessages(&Input{
		JobID:       "job-9",
		PostDraftID: "draft-9",
	})

	assert.Equal(t, "New Google Business Profile drafts ready for review", subject)
	assert.Contains(t, emailBody, "Hi there,")
	assert.NotContains(t, emailBody, "Service category:")
	assert.NotContains(t, emailBody, "Campaign:")
	assert.NotContains(t, emailBody, "Review and approve")
	assert.Equal(t, "GBP post drafts for job job-9 are ready for review.", smsBody)
}
