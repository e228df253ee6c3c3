package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tradeport/app/models"
)

func newOnboardingService() (*OnboardingService, *fakeProgressStore, *fakeProfileStore, *fakeUserStore) {
	progress := newFakeProgressStore()
	profile := newFakeProfileStore()
	users := newFakeUserStore()
	return NewOnboardingService(progress, profile, users), progress, profile, users
}

func TestProgressImplicitRecord(t *testing.T) {
	svc, progress, _, _ := newOnboardingService()

	p, err := svc.Progress(context.Background(), "seller-1")
	require.NoError(t, err)

	assert.Empty(t, p.CompletedSteps)
	assert.Equal(t, string(models.StepBusiness), p.CurrentStep)
	assert.Zero(t, progress.upserts, "reading progress must not write")
}

func TestAdvanceCreatesOnFirstWrite(t *testing.T) {
	svc, progress, _, _ := newOnboardingService()
	ctx := context.Background()

	p, err := svc.Advance(ctx, "seller-1", models.StepBusiness)
	require.NoError(t, err)

	assert.Equal(t, []models.Step{models.StepBusiness}, p.CompletedSteps)
	assert.Equal(t, string(models.StepContact), p.CurrentStep)
	assert.Equal(t, 1, progress.upserts)

	stored, err := svc.Progress(ctx, "seller-1")
	require.NoError(t, err)
	assert.Equal(t, p.CompletedSteps, stored.CompletedSteps)
}

func TestAdvanceRejectsUnknownStep(t *testing.T) {
	svc, progress, _, _ := newOnboardingService()

	_, err := svc.Advance(context.Background(), "seller-1", "warehouse")
	assert.ErrorIs(t, err, models.ErrInvalidStep)
	assert.Zero(t, progress.upserts)
}

func TestAdvanceRepeatKeepsSetStable(t *testing.T) {
	svc, _, _, _ := newOnboardingService()
	ctx := context.Background()

	_, err := svc.Advance(ctx, "seller-1", models.StepBusiness)
	require.NoError(t, err)
	p, err := svc.Advance(ctx, "seller-1", models.StepBusiness)
	require.NoError(t, err)

	assert.Equal(t, []models.Step{models.StepBusiness}, p.CompletedSteps)
	assert.Equal(t, string(models.StepContact), p.CurrentStep)
}

func TestSaveBusinessStoresDocumentAndAdvances(t *testing.T) {
	svc, _, profile, _ := newOnboardingService()
	ctx := context.Background()

	p, err := svc.SaveBusiness(ctx, "seller-1", &models.BusinessDetails{
		LegalEntityName: "Kite Traders Pvt Ltd",
		TradeName:       "Kite Traders",
		GSTIN:           "22AAAAA0000A1Z5",
	})
	require.NoError(t, err)

	require.NotNil(t, profile.business["seller-1"])
	assert.Equal(t, "seller-1", profile.business["seller-1"].SellerID)
	assert.Equal(t, string(models.StepContact), p.CurrentStep)
}

func TestSaveDocumentsLandsOnReview(t *testing.T) {
	svc, _, profile, _ := newOnboardingService()
	ctx := context.Background()

	p, err := svc.SaveDocuments(ctx, "seller-1", &models.DocumentSet{
		PANCardURL:    "https://files.test/pan.pdf",
		AadharCardURL: "https://files.test/aadhar.pdf",
	})
	require.NoError(t, err)

	require.NotNil(t, profile.documents["seller-1"])
	assert.True(t, p.HasCompleted(models.StepDocuments))
	assert.Equal(t, models.StepReview, p.CurrentStep)
}

func TestSaveDocumentsAndComplete(t *testing.T) {
	svc, _, _, users := newOnboardingService()
	ctx := context.Background()

	p, err := svc.SaveDocumentsAndComplete(ctx, "seller-1", &models.DocumentSet{
		PANCardURL: "https://files.test/pan.pdf",
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, models.StepOrder, p.CompletedSteps)
	assert.Equal(t, string(models.StepDocuments), p.CurrentStep)
	assert.Equal(t, models.ProgressReview, p.Status)
	assert.True(t, p.IsCompleted)
	assert.Equal(t, models.OnboardingFullCompleted, users.statuses["seller-1"])

	// Replaying the terminal write changes nothing.
	again, err := svc.SaveDocumentsAndComplete(ctx, "seller-1", &models.DocumentSet{})
	require.NoError(t, err)
	assert.Equal(t, p.CompletedSteps, again.CompletedSteps)
	assert.True(t, again.IsCompleted)
}

func TestSubmitForReviewDoesNotRequireCompletion(t *testing.T) {
	svc, _, _, users := newOnboardingService()
	ctx := context.Background()

	_, err := svc.Advance(ctx, "seller-1", models.StepBusiness)
	require.NoError(t, err)

	p, err := svc.SubmitForReview(ctx, "seller-1")
	require.NoError(t, err)

	assert.Equal(t, models.ProgressReview, p.Status)
	require.NotNil(t, p.SubmittedAt)
	assert.False(t, p.IsCompleted)
	assert.Equal(t, models.OnboardingFullCompleted, users.statuses["seller-1"])
}

func TestProfileDataBundlesSavedSteps(t *testing.T) {
	svc, _, _, _ := newOnboardingService()
	ctx := context.Background()

	_, err := svc.SaveBusiness(ctx, "seller-1", &models.BusinessDetails{TradeName: "Kite Traders"})
	require.NoError(t, err)
	_, err = svc.SaveBank(ctx, "seller-1", &models.BankDetails{BankName: "HDFC"})
	require.NoError(t, err)

	data, err := svc.ProfileData(ctx, "seller-1")
	require.NoError(t, err)

	require.NotNil(t, data.Business)
	require.NotNil(t, data.Bank)
	assert.Nil(t, data.Contact)
	require.NotNil(t, data.Progress)
	assert.True(t, data.Progress.HasCompleted(models.StepBank))
}

func TestReviewApprove(t *testing.T) {
	svc, _, _, users := newOnboardingService()
	ctx := context.Background()

	_, err := svc.SubmitForReview(ctx, "seller-1")
	require.NoError(t, err)

	require.NoError(t, svc.Review(ctx, "seller-1", true))
	assert.Equal(t, models.OnboardingApproved, users.statuses["seller-1"])

	p, err := svc.Progress(ctx, "seller-1")
	require.NoError(t, err)
	assert.Equal(t, models.ProgressCompleted, p.Status)
}

func TestReviewReject(t *testing.T) {
	svc, _, _, users := newOnboardingService()
	ctx := context.Background()

	_, err := svc.SubmitForReview(ctx, "seller-1")
	require.NoError(t, err)

	require.NoError(t, svc.Review(ctx, "seller-1", false))
	assert.Equal(t, models.OnboardingRejected, users.statuses["seller-1"])

	p, err := svc.Progress(ctx, "seller-1")
	require.NoError(t, err)
	assert.Equal(t, models.ProgressDraft, p.Status)
}
