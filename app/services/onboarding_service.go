package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/tradeport/app/models"
	"github.com/shashiranjanraj/tradeport/pkg/cache"
	"github.com/shashiranjanraj/tradeport/pkg/event"
	"github.com/shashiranjanraj/tradeport/pkg/logger"
	"github.com/shashiranjanraj/tradeport/pkg/metrics"
)

// ProgressStore is the persistence the onboarding service needs for the
// progress record.
type ProgressStore interface {
	FindBySeller(ctx context.Context, sellerID string) (*models.OnboardingProgress, error)
	Upsert(ctx context.Context, p *models.OnboardingProgress) error
}

// ProfileStore is the persistence for the per-step profile documents.
type ProfileStore interface {
	FindBusiness(ctx context.Context, sellerID string) (*models.BusinessDetails, error)
	UpsertBusiness(ctx context.Context, d *models.BusinessDetails) error
	FindContact(ctx context.Context, sellerID string) (*models.ContactDetails, error)
	UpsertContact(ctx context.Context, d *models.ContactDetails) error
	FindCategory(ctx context.Context, sellerID string) (*models.CategoryBrand, error)
	UpsertCategory(ctx context.Context, d *models.CategoryBrand) error
	FindAddresses(ctx context.Context, sellerID string) (*models.AddressDetails, error)
	UpsertAddresses(ctx context.Context, d *models.AddressDetails) error
	FindBank(ctx context.Context, sellerID string) (*models.BankDetails, error)
	UpsertBank(ctx context.Context, d *models.BankDetails) error
	FindDocuments(ctx context.Context, sellerID string) (*models.DocumentSet, error)
	UpsertDocuments(ctx context.Context, d *models.DocumentSet) error
}

// UserStore is the slice of the user repository the onboarding flow touches.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateOnboardingStatus(ctx context.Context, id, status string) error
	ListSellers(ctx context.Context, onboardingStatus string) ([]models.User, error)
}

// OnboardingService drives the seller onboarding flow: saving step documents,
// tracking progress, and submitting the profile for review.
type OnboardingService struct {
	progress ProgressStore
	profile  ProfileStore
	users    UserStore
}

func NewOnboardingService(progress ProgressStore, profile ProfileStore, users UserStore) *OnboardingService {
	return &OnboardingService{progress: progress, profile: profile, users: users}
}

func profileCacheKey(sellerID string) string {
	return "profile:" + sellerID
}

// Progress returns the seller's progress record. Sellers who have never
// saved a step get the implicit empty record without a write.
func (s *OnboardingService) Progress(ctx context.Context, sellerID string) (*models.OnboardingProgress, error) {
	p, err := s.progress.FindBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return models.NewOnboardingProgress(sellerID), nil
	}
	return p, nil
}

// Advance marks step completed for the seller and moves currentStep forward,
// creating the progress record on first use.
func (s *OnboardingService) Advance(ctx context.Context, sellerID string, step models.Step) (*models.OnboardingProgress, error) {
	if !models.ValidStep(step) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidStep, step)
	}

	p, err := s.Progress(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	p.Advance(step)
	if err := s.progress.Upsert(ctx, p); err != nil {
		return nil, err
	}

	metrics.OnboardingAdvances.WithLabelValues(string(step)).Inc()
	cache.Forget(profileCacheKey(sellerID))
	return p, nil
}

// SaveBusiness persists the business step and advances progress.
func (s *OnboardingService) SaveBusiness(ctx context.Context, sellerID string, d *models.BusinessDetails) (*models.OnboardingProgress, error) {
	d.SellerID = sellerID
	if err := s.profile.UpsertBusiness(ctx, d); err != nil {
		return nil, err
	}
	return s.Advance(ctx, sellerID, models.StepBusiness)
}

// SaveContact persists the contact step and advances progress.
func (s *OnboardingService) SaveContact(ctx context.Context, sellerID string, d *models.ContactDetails) (*models.OnboardingProgress, error) {
	d.SellerID = sellerID
	if err := s.profile.UpsertContact(ctx, d); err != nil {
		return nil, err
	}
	return s.Advance(ctx, sellerID, models.StepContact)
}

// SaveCategory persists the category step and advances progress.
func (s *OnboardingService) SaveCategory(ctx context.Context, sellerID string, d *models.CategoryBrand) (*models.OnboardingProgress, error) {
	d.SellerID = sellerID
	if err := s.profile.UpsertCategory(ctx, d); err != nil {
		return nil, err
	}
	return s.Advance(ctx, sellerID, models.StepCategory)
}

// SaveAddresses persists the addresses step and advances progress.
func (s *OnboardingService) SaveAddresses(ctx context.Context, sellerID string, d *models.AddressDetails) (*models.OnboardingProgress, error) {
	d.SellerID = sellerID
	if err := s.profile.UpsertAddresses(ctx, d); err != nil {
		return nil, err
	}
	return s.Advance(ctx, sellerID, models.StepAddresses)
}

// SaveBank persists the bank step and advances progress.
func (s *OnboardingService) SaveBank(ctx context.Context, sellerID string, d *models.BankDetails) (*models.OnboardingProgress, error) {
	d.SellerID = sellerID
	if err := s.profile.UpsertBank(ctx, d); err != nil {
		return nil, err
	}
	return s.Advance(ctx, sellerID, models.StepBank)
}

// SaveDocuments persists the document set and parks the seller on the review
// screen. The document flow always lands on review, unlike the other steps.
func (s *OnboardingService) SaveDocuments(ctx context.Context, sellerID string, d *models.DocumentSet) (*models.OnboardingProgress, error) {
	d.SellerID = sellerID
	if err := s.profile.UpsertDocuments(ctx, d); err != nil {
		return nil, err
	}

	p, err := s.Progress(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	p.RecordDocuments()
	if err := s.progress.Upsert(ctx, p); err != nil {
		return nil, err
	}

	metrics.OnboardingAdvances.WithLabelValues(string(models.StepDocuments)).Inc()
	cache.Forget(profileCacheKey(sellerID))
	return p, nil
}

// SaveDocumentsAndComplete persists the document set, forces the terminal
// progress record, and stamps the user account as fully onboarded. Used by
// the final wizard screen where documents are the last action. Idempotent.
func (s *OnboardingService) SaveDocumentsAndComplete(ctx context.Context, sellerID string, d *models.DocumentSet) (*models.OnboardingProgress, error) {
	d.SellerID = sellerID
	if err := s.profile.UpsertDocuments(ctx, d); err != nil {
		return nil, err
	}

	p, err := s.Progress(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	p.MarkComplete()
	if err := s.progress.Upsert(ctx, p); err != nil {
		return nil, err
	}

	if err := s.users.UpdateOnboardingStatus(ctx, sellerID, models.OnboardingFullCompleted); err != nil {
		logger.WithCtx(ctx).Warn("onboarding status stamp failed", "seller_id", sellerID, "error", err)
	}

	cache.Forget(profileCacheKey(sellerID))
	return p, nil
}

// SubmitForReview stamps the progress record as submitted and marks the user
// account fully onboarded. Submission is not gated on step completion.
func (s *OnboardingService) SubmitForReview(ctx context.Context, sellerID string) (*models.OnboardingProgress, error) {
	p, err := s.Progress(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	p.SubmitForReview(time.Now().UTC())
	if err := s.progress.Upsert(ctx, p); err != nil {
		return nil, err
	}

	if err := s.users.UpdateOnboardingStatus(ctx, sellerID, models.OnboardingFullCompleted); err != nil {
		logger.WithCtx(ctx).Warn("onboarding status stamp failed", "seller_id", sellerID, "error", err)
	}

	metrics.OnboardingSubmissions.Inc()
	event.FireAsync("profile.submitted", p)
	cache.Forget(profileCacheKey(sellerID))
	return p, nil
}

// ProfileData loads every step document plus the progress record for the
// profile summary screen. The bundle is cached briefly since the summary is
// polled by the dashboard.
func (s *OnboardingService) ProfileData(ctx context.Context, sellerID string) (*models.ProfileData, error) {
	var cached models.ProfileData
	if cache.Get(profileCacheKey(sellerID), &cached) {
		return &cached, nil
	}

	data := &models.ProfileData{}
	var err error

	if data.Business, err = s.profile.FindBusiness(ctx, sellerID); err != nil {
		return nil, err
	}
	if data.Contact, err = s.profile.FindContact(ctx, sellerID); err != nil {
		return nil, err
	}
	if data.Category, err = s.profile.FindCategory(ctx, sellerID); err != nil {
		return nil, err
	}
	if data.Addresses, err = s.profile.FindAddresses(ctx, sellerID); err != nil {
		return nil, err
	}
	if data.Bank, err = s.profile.FindBank(ctx, sellerID); err != nil {
		return nil, err
	}
	if data.Documents, err = s.profile.FindDocuments(ctx, sellerID); err != nil {
		return nil, err
	}
	if data.Progress, err = s.Progress(ctx, sellerID); err != nil {
		return nil, err
	}

	cache.Set(profileCacheKey(sellerID), data, 2*time.Minute)
	return data, nil
}

// ListSubmitted returns seller accounts awaiting admin review.
func (s *OnboardingService) ListSubmitted(ctx context.Context) ([]models.User, error) {
	return s.users.ListSellers(ctx, models.OnboardingFullCompleted)
}

// ReviewDecision is the payload fired on the "profile.reviewed" event.
type ReviewDecision struct {
	SellerID string `json:"sellerId"`
	Approved bool   `json:"approved"`
}

// Review records the admin's approve or reject decision on a seller profile.
func (s *OnboardingService) Review(ctx context.Context, sellerID string, approve bool) error {
	status := models.OnboardingRejected
	progressStatus := models.ProgressDraft
	if approve {
		status = models.OnboardingApproved
		progressStatus = models.ProgressCompleted
	}

	p, err := s.Progress(ctx, sellerID)
	if err != nil {
		return err
	}
	p.Status = progressStatus
	p.UpdatedAt = time.Now().UTC()
	if err := s.progress.Upsert(ctx, p); err != nil {
		return err
	}

	if err := s.users.UpdateOnboardingStatus(ctx, sellerID, status); err != nil {
		return err
	}

	event.FireAsync("profile.reviewed", ReviewDecision{SellerID: sellerID, Approved: approve})
	cache.Forget(profileCacheKey(sellerID))
	return nil
}
