package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Step is one stage of the seller onboarding flow.
type Step string

const (
	StepBusiness  Step = "business"
	StepContact   Step = "contact"
	StepCategory  Step = "category"
	StepAddresses Step = "addresses"
	StepBank      Step = "bank"
	StepDocuments Step = "documents"
)

// StepReview is not an onboarding step; it is the terminal currentStep value
// set once the document set has been recorded.
const StepReview = "review"

// StepOrder is the fixed sequence sellers move through.
var StepOrder = []Step{
	StepBusiness, StepContact, StepCategory, StepAddresses, StepBank, StepDocuments,
}

// Progress status values.
const (
	ProgressDraft     = "draft"
	ProgressReview    = "review"
	ProgressCompleted = "completed"
)

// Successor returns the step that follows s in StepOrder.
// The last step (and any unknown step) has no successor.
func Successor(s Step) (Step, bool) {
	for i, step := range StepOrder {
		if step == s && i < len(StepOrder)-1 {
			return StepOrder[i+1], true
		}
	}
	return "", false
}

// ValidStep reports whether s is one of the six onboarding steps.
func ValidStep(s Step) bool {
	for _, step := range StepOrder {
		if step == s {
			return true
		}
	}
	return false
}

// OnboardingProgress tracks which onboarding steps a seller has completed
// and which one they are on. One document per seller, created lazily on the
// first step submission and never hard-deleted.
type OnboardingProgress struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SellerID       string             `bson:"sellerId" json:"sellerId"`
	CompletedSteps []Step             `bson:"completedSteps" json:"completedSteps"`
	CurrentStep    string             `bson:"currentStep" json:"currentStep"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
	IsCompleted    bool               `bson:"isCompleted" json:"isCompleted"`
	SubmittedAt    *time.Time         `bson:"submittedAt,omitempty" json:"submittedAt,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NewOnboardingProgress returns the implicit empty record for a seller who
// has not submitted any step yet.
func NewOnboardingProgress(sellerID string) *OnboardingProgress {
	now := time.Now().UTC()
	return &OnboardingProgress{
		SellerID:       sellerID,
		CompletedSteps: []Step{},
		CurrentStep:    string(StepBusiness),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// HasCompleted reports whether step is in the completed set.
func (p *OnboardingProgress) HasCompleted(step Step) bool {
	for _, s := range p.CompletedSteps {
		if s == step {
			return true
		}
	}
	return false
}

// Advance records that step was completed and moves currentStep forward.
// Adding an already-completed step is a no-op on the set (idempotent), and
// out-of-order completions never regress the set. The last step has no
// successor, so completing documents leaves currentStep at documents.
func (p *OnboardingProgress) Advance(step Step) {
	if !p.HasCompleted(step) {
		p.CompletedSteps = append(p.CompletedSteps, step)
	}

	if next, ok := Successor(step); ok {
		p.CurrentStep = string(next)
	} else {
		p.CurrentStep = string(step)
	}
	p.UpdatedAt = time.Now().UTC()
}

// RecordDocuments marks the documents step done and parks the seller on the
// review screen. Unlike Advance, the document-upload flow always lands on
// review regardless of which other steps are still open.
func (p *OnboardingProgress) RecordDocuments() {
	if !p.HasCompleted(StepDocuments) {
		p.CompletedSteps = append(p.CompletedSteps, StepDocuments)
	}
	p.CurrentStep = StepReview
	p.UpdatedAt = time.Now().UTC()
}

// MarkComplete forces the terminal record: every step completed, the profile
// flagged done and queued for review. Idempotent.
func (p *OnboardingProgress) MarkComplete() {
	p.CompletedSteps = append([]Step{}, StepOrder...)
	p.CurrentStep = string(StepDocuments)
	p.Status = ProgressReview
	p.IsCompleted = true
	p.UpdatedAt = time.Now().UTC()
}

// SubmitForReview stamps the record as submitted. Step completion is not
// checked here; gating submission on a finished profile is a product-policy
// decision the tracker stays out of.
func (p *OnboardingProgress) SubmitForReview(at time.Time) {
	p.Status = ProgressReview
	p.SubmittedAt = &at
	p.UpdatedAt = time.Now().UTC()
}
