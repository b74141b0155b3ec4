package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const offerImageFolder = "offers"

// offerService implements the OfferUsecase interface.
type offerService struct {
	txManager       repository.TransactionManager
	offerRepo       repository.OfferRepository
	storage         service.MediaStorage
	qrCodeService   service.QRCodeService
	metrics         service.MetricsRecorder
	defaultPageSize int
	maxPageSize     int
	maxUploadSize   int64
	logger          *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	OfferRepo     repository.OfferRepository
	Storage       service.MediaStorage
	QRCodeService service.QRCodeService
	Metrics       service.MetricsRecorder
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	defaultPageSize, maxPageSize := 6, 100
	var maxUploadSize int64
	if params.Config != nil {
		if params.Config.Offers.DefaultPageSize > 0 {
			defaultPageSize = params.Config.Offers.DefaultPageSize
		}
		if params.Config.Offers.MaxPageSize > 0 {
			maxPageSize = params.Config.Offers.MaxPageSize
		}
		maxUploadSize = params.Config.Media.MaxUploadSize
	}

	return &offerService{
		txManager:       params.TxManager,
		offerRepo:       params.OfferRepo,
		storage:         params.Storage,
		qrCodeService:   params.QRCodeService,
		metrics:         params.Metrics,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		maxUploadSize:   maxUploadSize,
		logger:          params.Logger,
	}
}

// CreateOffer publishes a new offer with its three tiers.
func (srv *offerService) CreateOffer(ctx context.Context, caller entity.Caller, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	// 1. Only business accounts publish offers
	if !caller.CanPublishOffers() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only business accounts can publish offers")
	}

	// 2. Build and validate the aggregate
	offer := &entity.Offer{
		UserID:      caller.UserID,
		Title:       strings.TrimSpace(input.Title),
		Image:       input.Image,
		Description: input.Description,
		Details:     make([]*entity.OfferDetail, 0, len(input.Details)),
	}
	for _, detail := range input.Details {
		offer.Details = append(offer.Details, &entity.OfferDetail{
			Title:              detail.Title,
			Revisions:          detail.Revisions,
			DeliveryTimeInDays: detail.DeliveryTimeInDays,
			Price:              detail.Price,
			Features:           detail.Features,
			OfferType:          detail.OfferType,
		})
	}
	if err := offer.ValidateForCreate(); err != nil {
		return nil, err
	}
	offer.RefreshSummary()

	// 3. Persist the offer and its tiers atomically
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OfferRepo().Create(ctx, offer)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create offer")
	}

	srv.metrics.OfferPublished()
	loggerFrom(ctx, srv.logger).Info("Offer published", "offerID", offer.ID, "userID", caller.UserID)

	return offer, nil
}

// UpdateOffer applies a partial update. Tier entries address an existing tier by
// type; entries for a tier the offer lacks are reported as skipped.
func (srv *offerService) UpdateOffer(
	ctx context.Context,
	caller entity.Caller,
	offerID uuid.UUID,
	input *usecase.UpdateOfferInput,
) (*usecase.UpdateOfferOutput, error) {
	var output *usecase.UpdateOfferOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		// 1. Load and authorize
		offer, err := offerRepo.FindByID(ctx, offerID)
		if err != nil {
			return translateRepoError(err, "failed to find offer")
		}
		if !caller.CanModify(offer.UserID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the owner can edit this offer")
		}

		// 2. Merge header fields and tier patches, validating everything first
		if input.Title != nil {
			offer.Title = strings.TrimSpace(*input.Title)
		}
		if input.Image != nil {
			offer.Image = *input.Image
		}
		if input.Description != nil {
			offer.Description = *input.Description
		}
		errs := offer.ValidateHeader()

		results, updated := mergeDetailPatches(offer, input.Details, errs)
		if err := errs.AsError(); err != nil {
			return err
		}

		// 3. Write the touched tiers, then the header with a fresh summary
		for _, detail := range updated {
			if err := offerRepo.UpdateDetail(ctx, detail); err != nil {
				return translateRepoError(err, "failed to update offer detail")
			}
		}
		offer.RefreshSummary()
		if err := offerRepo.Update(ctx, offer); err != nil {
			return translateRepoError(err, "failed to update offer")
		}

		// 4. Reload so timestamps reflect the write
		refreshed, err := offerRepo.FindByID(ctx, offerID)
		if err != nil {
			return translateRepoError(err, "failed to reload offer")
		}

		output = &usecase.UpdateOfferOutput{Offer: refreshed, DetailResults: results}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update offer")
	}

	loggerFrom(ctx, srv.logger).Info("Offer updated", "offerID", offerID, "userID", caller.UserID)

	return output, nil
}

// mergeDetailPatches applies each patch to its tier in offer, collecting field
// errors into errs. It returns one result per patch and the tiers to persist.
func mergeDetailPatches(
	offer *entity.Offer,
	patches []usecase.OfferDetailPatch,
	errs domainerrors.FieldErrors,
) ([]entity.DetailUpdateResult, []*entity.OfferDetail) {
	results := make([]entity.DetailUpdateResult, 0, len(patches))
	updated := make([]*entity.OfferDetail, 0, len(patches))
	seen := make(map[entity.OfferType]bool, len(patches))

	for i, patch := range patches {
		prefix := fmt.Sprintf("details[%d]", i)

		switch {
		case patch.OfferType == "":
			errs.Add(prefix+".offer_type", "This field is required.")

			continue
		case !patch.OfferType.IsValid():
			errs.Add(prefix+".offer_type", fmt.Sprintf("%q is not a valid choice.", patch.OfferType))

			continue
		case seen[patch.OfferType]:
			errs.Add(prefix+".offer_type", fmt.Sprintf("Tier %q appears more than once.", patch.OfferType))

			continue
		}
		seen[patch.OfferType] = true

		existing := offer.DetailByType(patch.OfferType)
		if existing == nil {
			results = append(results, entity.DetailUpdateResult{
				OfferType: patch.OfferType,
				Outcome:   entity.DetailSkipped,
				Reason:    fmt.Sprintf("offer has no %s tier", patch.OfferType),
			})

			continue
		}

		merged := existing.Clone()
		if patch.Title != nil {
			merged.Title = *patch.Title
		}
		if patch.Revisions != nil {
			merged.Revisions = *patch.Revisions
		}
		if patch.DeliveryTimeInDays != nil {
			merged.DeliveryTimeInDays = *patch.DeliveryTimeInDays
		}
		if patch.Price != nil {
			merged.Price = *patch.Price
		}
		if patch.Features != nil {
			merged.Features = patch.Features
		}
		errs.Merge(prefix, merged.Validate())

		*existing = *merged
		updated = append(updated, existing)
		results = append(results, entity.DetailUpdateResult{
			OfferType: patch.OfferType,
			Outcome:   entity.DetailUpdated,
		})
	}

	return results, updated
}

// DeleteOffer removes an offer and its tiers. Orders keep their snapshots.
func (srv *offerService) DeleteOffer(ctx context.Context, caller entity.Caller, offerID uuid.UUID) error {
	var image string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		offer, err := offerRepo.FindByID(ctx, offerID)
		if err != nil {
			return translateRepoError(err, "failed to find offer")
		}
		if !caller.CanModify(offer.UserID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the owner can delete this offer")
		}
		image = offer.Image

		return translateRepoError(offerRepo.Delete(ctx, offerID), "failed to delete offer")
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete offer")
	}

	srv.discardMedia(ctx, image)
	loggerFrom(ctx, srv.logger).Info("Offer deleted", "offerID", offerID, "userID", caller.UserID)

	return nil
}

// GetOffer retrieves an offer with its tiers.
func (srv *offerService) GetOffer(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get offer")
	}

	return offer, nil
}

// GetOfferDetail retrieves a single tier.
func (srv *offerService) GetOfferDetail(ctx context.Context, detailID uuid.UUID) (*entity.OfferDetail, error) {
	detail, err := srv.offerRepo.FindDetailByID(ctx, detailID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get offer detail")
	}

	return detail, nil
}

// ListOffers returns one page of the filtered offer list.
func (srv *offerService) ListOffers(ctx context.Context, input *usecase.ListOffersInput) (*usecase.OfferPage, error) {
	// 1. Validate paging and ordering
	errs := domainerrors.FieldErrors{}

	page := input.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		errs.Add("page", "A valid integer is required.")
	}

	pageSize := input.PageSize
	switch {
	case pageSize == 0:
		pageSize = srv.defaultPageSize
	case pageSize < 0:
		errs.Add("page_size", "Ensure this value is greater than 0.")
	case pageSize > srv.maxPageSize:
		pageSize = srv.maxPageSize
	}

	ordering := repository.OfferOrdering(input.Ordering)
	if ordering != "" && !ordering.IsValid() {
		errs.Add("ordering", fmt.Sprintf("%q is not a valid ordering.", input.Ordering))
	}
	if input.MaxDeliveryTime != nil && *input.MaxDeliveryTime < 0 {
		errs.Add("max_delivery_time", "Ensure this value is greater than or equal to 0.")
	}
	if err := errs.AsError(); err != nil {
		return nil, err
	}

	// 2. Query one page
	offset := (page - 1) * pageSize
	offers, total, err := srv.offerRepo.List(ctx, repository.OfferFilter{
		CreatorID:       input.CreatorID,
		MinPrice:        input.MinPrice,
		MaxDeliveryTime: input.MaxDeliveryTime,
		Search:          input.Search,
		Ordering:        ordering,
		Offset:          offset,
		Limit:           pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	// 3. Pages past the end do not exist; the first page always does
	if page > 1 && int64(offset) >= total {
		return nil, domainerrors.ErrNotFound.WithDetails("Invalid page.")
	}

	return &usecase.OfferPage{
		Count:    total,
		Page:     page,
		PageSize: pageSize,
		Results:  offers,
	}, nil
}

// UploadOfferImage stores a new offer image and points the offer at it.
func (srv *offerService) UploadOfferImage(
	ctx context.Context,
	caller entity.Caller,
	offerID uuid.UUID,
	upload *usecase.UploadInput,
) (*entity.Offer, error) {
	// 1. Authorize against the current owner before accepting bytes
	offer, err := srv.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find offer")
	}
	if !caller.CanModify(offer.UserID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner can change the offer image")
	}
	if err := validateImageUpload("image", upload, srv.maxUploadSize); err != nil {
		return nil, err
	}

	// 2. Store the file
	reference, err := srv.storage.Save(ctx, offerImageFolder, upload.Filename, upload.ContentType, upload.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store offer image")
	}

	// 3. Point the offer at it
	var previous string
	var updated *entity.Offer
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		current, err := offerRepo.FindByID(ctx, offerID)
		if err != nil {
			return translateRepoError(err, "failed to find offer")
		}
		previous = current.Image
		current.Image = reference
		current.RefreshSummary()
		if err := offerRepo.Update(ctx, current); err != nil {
			return translateRepoError(err, "failed to update offer image")
		}

		updated, err = offerRepo.FindByID(ctx, offerID)

		return translateRepoError(err, "failed to reload offer")
	})
	if err != nil {
		srv.discardMedia(ctx, reference)

		return nil, errors.Wrap(err, "failed to update offer image")
	}

	srv.discardMedia(ctx, previous)
	loggerFrom(ctx, srv.logger).Info("Offer image replaced", "offerID", offerID, "reference", reference)

	return updated, nil
}

// OfferQRCode renders the share code of an existing offer.
func (srv *offerService) OfferQRCode(ctx context.Context, offerID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetOffer(ctx, offerID); err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateOfferQR(offerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render offer QR code")
	}

	return png, nil
}

// ResolveOfferCode returns the offer a scanned share code points at.
func (srv *offerService) ResolveOfferCode(ctx context.Context, payload string) (*entity.Offer, error) {
	offerID, err := srv.qrCodeService.ParseOfferQR(strings.TrimSpace(payload))
	if err != nil {
		return nil, domainerrors.NewFieldError("code", "This is not a valid offer code.")
	}

	return srv.GetOffer(ctx, offerID)
}

// discardMedia removes a stored file we no longer reference. Only references
// issued by the media storage are touched; failures are logged.
func (srv *offerService) discardMedia(ctx context.Context, reference string) {
	discardMedia(ctx, srv.storage, loggerFrom(ctx, srv.logger), reference)
}

func discardMedia(ctx context.Context, storage service.MediaStorage, logger *slog.Logger, reference string) {
	if reference == "" || !strings.HasPrefix(reference, service.MediaReferencePrefix) {
		return
	}
	if err := storage.Delete(ctx, reference); err != nil {
		logger.Warn("Failed to delete stored file", "reference", reference, "error", err)
	}
}
