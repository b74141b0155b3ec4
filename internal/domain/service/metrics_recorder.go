package service

import "bazaar/internal/domain/entity"

// MetricsRecorder receives business events worth counting.
type MetricsRecorder interface {
	OfferPublished()
	OrderPlaced(offerType entity.OfferType)
	OrderStatusChanged(from, to entity.OrderStatus)
	ReviewWritten(rating int)
}
