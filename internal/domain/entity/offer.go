package entity

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferType identifies one of the three pricing tiers of an offer.
type OfferType string

const (
	OfferTypeBasic    OfferType = "basic"
	OfferTypeStandard OfferType = "standard"
	OfferTypePremium  OfferType = "premium"
)

// UnlimitedRevisions marks a tier without a revision cap.
const UnlimitedRevisions = -1

// MaxTextLength bounds titles and image references, matching their varchar columns.
const MaxTextLength = 255

// MaxPrice is the largest price a numeric(10,2) column holds.
var MaxPrice = decimal.RequireFromString("99999999.99")

// OfferTypes returns every tier an offer must carry, in display order.
func OfferTypes() []OfferType {
	return []OfferType{OfferTypeBasic, OfferTypeStandard, OfferTypePremium}
}

// IsValid checks if the OfferType is a known tier.
func (t OfferType) IsValid() bool {
	return slices.Contains(OfferTypes(), t)
}

// String returns the string representation of the OfferType.
func (t OfferType) String() string {
	return string(t)
}

// Offer is a service listing published by a business account.
// MinPrice and MinDeliveryTime mirror the cheapest and fastest tier and are
// refreshed by RefreshSummary whenever details change.
type Offer struct {
	ID              uuid.UUID
	UserID          uuid.UUID // Owning business account.
	Title           string
	Image           string
	Description     string
	MinPrice        decimal.Decimal
	MinDeliveryTime int
	Details         []*OfferDetail
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OfferDetail is one pricing tier of an offer.
type OfferDetail struct {
	ID                 uuid.UUID
	OfferID            uuid.UUID
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              decimal.Decimal
	Features           []string
	OfferType          OfferType
}

// URL is the stable reference path of a single tier.
func (d *OfferDetail) URL() string {
	return fmt.Sprintf("/offerdetails/%s/", d.ID)
}

// Validate checks the per-tier rules. Field names in the result are the
// JSON names of the tier payload.
func (d *OfferDetail) Validate() domainerrors.FieldErrors {
	errs := domainerrors.FieldErrors{}

	validateText(errs, "title", d.Title, true)
	if d.Revisions < UnlimitedRevisions {
		errs.Add("revisions", "Ensure this value is greater than or equal to -1.")
	}
	if d.DeliveryTimeInDays <= 0 {
		errs.Add("delivery_time_in_days", "Ensure this value is greater than 0.")
	}
	if !d.Price.IsPositive() {
		errs.Add("price", "Ensure this value is greater than 0.")
	} else if !d.Price.Equal(d.Price.Round(2)) {
		errs.Add("price", "Ensure that there are no more than 2 decimal places.")
	} else if d.Price.GreaterThan(MaxPrice) {
		errs.Add("price", fmt.Sprintf("Ensure this value is less than or equal to %s.", MaxPrice.StringFixed(2)))
	}
	if len(d.Features) == 0 {
		errs.Add("features", "Provide at least one feature.")
	}
	for i, feature := range d.Features {
		if strings.TrimSpace(feature) == "" {
			errs.Add(fmt.Sprintf("features[%d]", i), "This field may not be blank.")
		}
	}
	if !d.OfferType.IsValid() {
		errs.Add("offer_type", fmt.Sprintf("%q is not a valid choice.", d.OfferType))
	}

	return errs
}

// Clone returns a deep copy of the tier.
func (d *OfferDetail) Clone() *OfferDetail {
	cloned := *d
	cloned.Features = slices.Clone(d.Features)

	return &cloned
}

// DetailByType returns the tier of the given type, or nil.
func (o *Offer) DetailByType(offerType OfferType) *OfferDetail {
	for _, detail := range o.Details {
		if detail.OfferType == offerType {
			return detail
		}
	}

	return nil
}

// RefreshSummary recomputes MinPrice and MinDeliveryTime from the details.
func (o *Offer) RefreshSummary() {
	if len(o.Details) == 0 {
		o.MinPrice = decimal.Zero
		o.MinDeliveryTime = 0

		return
	}

	minPrice := o.Details[0].Price
	minDelivery := o.Details[0].DeliveryTimeInDays
	for _, detail := range o.Details[1:] {
		if detail.Price.LessThan(minPrice) {
			minPrice = detail.Price
		}
		if detail.DeliveryTimeInDays < minDelivery {
			minDelivery = detail.DeliveryTimeInDays
		}
	}

	o.MinPrice = minPrice
	o.MinDeliveryTime = minDelivery
}

// ValidateForCreate checks the offer header, the tier set and every tier.
func (o *Offer) ValidateForCreate() error {
	errs := o.ValidateHeader()

	for i, detail := range o.Details {
		errs.Merge(fmt.Sprintf("details[%d]", i), detail.Validate())
	}

	if msg := tierSetProblem(o.Details); msg != "" {
		errs.Add("details", msg)
	}

	return errs.AsError()
}

// ValidateHeader checks the offer-level fields.
func (o *Offer) ValidateHeader() domainerrors.FieldErrors {
	errs := domainerrors.FieldErrors{}
	validateText(errs, "title", o.Title, true)
	validateText(errs, "image", o.Image, false)

	return errs
}

func validateText(errs domainerrors.FieldErrors, field, value string, required bool) {
	switch {
	case required && strings.TrimSpace(value) == "":
		errs.Add(field, "This field may not be blank.")
	case utf8.RuneCountInString(value) > MaxTextLength:
		errs.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", MaxTextLength))
	}
}

// tierSetProblem describes why the details do not form exactly one tier of
// each type, or returns "" when they do.
func tierSetProblem(details []*OfferDetail) string {
	seen := make(map[OfferType]int, len(details))
	var unknown []string
	for _, detail := range details {
		if !detail.OfferType.IsValid() {
			unknown = append(unknown, string(detail.OfferType))

			continue
		}
		seen[detail.OfferType]++
	}

	var duplicated, missing []string
	for _, offerType := range OfferTypes() {
		switch seen[offerType] {
		case 0:
			missing = append(missing, string(offerType))
		case 1:
		default:
			duplicated = append(duplicated, string(offerType))
		}
	}

	if len(details) == len(OfferTypes()) && len(unknown) == 0 && len(duplicated) == 0 && len(missing) == 0 {
		return ""
	}

	parts := []string{fmt.Sprintf("An offer needs exactly %d details, one per type basic, standard and premium", len(OfferTypes()))}
	if len(missing) > 0 {
		parts = append(parts, "missing: "+strings.Join(missing, ", "))
	}
	if len(duplicated) > 0 {
		parts = append(parts, "duplicated: "+strings.Join(duplicated, ", "))
	}
	if len(unknown) > 0 {
		parts = append(parts, "unknown: "+strings.Join(unknown, ", "))
	}

	return strings.Join(parts, "; ") + "."
}

// DetailUpdateOutcome tags what happened to one tier entry of a partial update.
type DetailUpdateOutcome string

const (
	DetailUpdated DetailUpdateOutcome = "updated"
	DetailSkipped DetailUpdateOutcome = "skipped"
)

// DetailUpdateResult reports the outcome of one tier entry of an offer update.
type DetailUpdateResult struct {
	OfferType OfferType           `json:"offer_type"`
	Outcome   DetailUpdateOutcome `json:"outcome"`
	Reason    string              `json:"reason,omitempty"`
}
