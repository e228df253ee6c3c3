package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessor(t *testing.T) {
	next, ok := Successor(StepBusiness)
	require.True(t, ok)
	assert.Equal(t, StepContact, next)

	next, ok = Successor(StepBank)
	require.True(t, ok)
	assert.Equal(t, StepDocuments, next)

	_, ok = Successor(StepDocuments)
	assert.False(t, ok, "documents is the last step")

	_, ok = Successor(Step("bogus"))
	assert.False(t, ok)
}

func TestAdvanceInOrder(t *testing.T) {
	p := NewOnboardingProgress("s1")

	steps := []Step{StepBusiness, StepContact, StepCategory, StepAddresses, StepBank}
	for i, step := range steps {
		p.Advance(step)

		assert.Equal(t, StepOrder[:i+1], p.CompletedSteps,
			"completed set must equal the prefix after advancing %s", step)
		assert.Equal(t, string(StepOrder[i+1]), p.CurrentStep,
			"current step must be the successor of %s", step)
	}
}

func TestAdvanceDocumentsStays(t *testing.T) {
	p := NewOnboardingProgress("s1")
	for _, step := range StepOrder {
		p.Advance(step)
	}

	assert.Equal(t, string(StepDocuments), p.CurrentStep,
		"the last step has no successor, currentStep must not move")
	assert.True(t, p.HasCompleted(StepDocuments))
}

func TestAdvanceIdempotent(t *testing.T) {
	p := NewOnboardingProgress("s1")
	p.Advance(StepBusiness)
	p.Advance(StepBusiness)

	assert.Equal(t, []Step{StepBusiness}, p.CompletedSteps)
	assert.Equal(t, string(StepContact), p.CurrentStep)
}

func TestAdvanceOutOfOrderNeverRegresses(t *testing.T) {
	p := NewOnboardingProgress("s1")
	p.Advance(StepBank)
	p.Advance(StepBusiness)

	assert.True(t, p.HasCompleted(StepBank), "earlier completion must survive a later out-of-order save")
	assert.True(t, p.HasCompleted(StepBusiness))
	assert.Equal(t, string(StepContact), p.CurrentStep)
}

func TestLazyCreateScenario(t *testing.T) {
	// Seller with no existing record advances business.
	p := NewOnboardingProgress("s1")
	p.Advance(StepBusiness)

	assert.Equal(t, []Step{StepBusiness}, p.CompletedSteps)
	assert.Equal(t, string(StepContact), p.CurrentStep)
}

func TestRecordDocuments(t *testing.T) {
	p := NewOnboardingProgress("s1")
	p.RecordDocuments()

	assert.Equal(t, []Step{StepDocuments}, p.CompletedSteps)
	assert.Equal(t, StepReview, p.CurrentStep, "document upload parks seller on review")

	p.RecordDocuments()
	assert.Equal(t, []Step{StepDocuments}, p.CompletedSteps, "repeat record must not duplicate")
}

func TestMarkCompleteIdempotent(t *testing.T) {
	p := NewOnboardingProgress("s1")
	p.Advance(StepBusiness)

	p.MarkComplete()
	first := *p
	p.MarkComplete()

	assert.Equal(t, first.CompletedSteps, p.CompletedSteps)
	assert.Equal(t, StepOrder, p.CompletedSteps)
	assert.Equal(t, string(StepDocuments), p.CurrentStep)
	assert.Equal(t, ProgressReview, p.Status)
	assert.True(t, p.IsCompleted)
}

func TestSubmitForReviewUnguarded(t *testing.T) {
	// Submission does not require completed steps.
	p := NewOnboardingProgress("s1")
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p.SubmitForReview(at)

	assert.Equal(t, ProgressReview, p.Status)
	require.NotNil(t, p.SubmittedAt)
	assert.Equal(t, at, *p.SubmittedAt)
	assert.Empty(t, p.CompletedSteps)
	assert.False(t, p.IsCompleted)
}

func TestValidStep(t *testing.T) {
	for _, s := range StepOrder {
		assert.True(t, ValidStep(s))
	}
	assert.False(t, ValidStep(Step("review")))
	assert.False(t, ValidStep(Step("")))
}
