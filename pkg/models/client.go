package models

import (
	"time"
)

// Default query knobs, overridable per client via its Config.
const (
	// DefaultSendInterval is the retransmission interval for queries.
	DefaultSendInterval = 100 * time.Millisecond

	// DefaultTimeout bounds a single acknowledged operation.
	DefaultTimeout = 5 * time.Second
)

// ModelID identifies a SIG model, or a vendor model when VendorID is set.
type ModelID struct {
	// VendorID is the company identifier, nil for SIG models.
	VendorID *uint16

	// ID is the 16-bit model identifier.
	ID uint16
}

// SIGModel returns a SIG model identifier.
func SIGModel(id uint16) ModelID {
	return ModelID{ID: id}
}

// VendorModel returns a vendor model identifier.
func VendorModel(vendorID, id uint16) ModelID {
	return ModelID{VendorID: &vendorID, ID: id}
}

// fields returns the wire representation used by the access schemas.
func (m ModelID) fields() map[string]interface{} {
	if m.VendorID != nil {
		return map[string]interface{}{
			"vendor_id": uint64(*m.VendorID),
			"model_id":  uint64(m.ID),
		}
	}
	return map[string]interface{}{"model_id": uint64(m.ID)}
}

// matches reports whether a decoded model-id field equals m.
func (m ModelID) matches(v interface{}) bool {
	got, ok := v.(map[string]interface{})
	if !ok {
		return false
	}
	if m.VendorID != nil {
		return got["vendor_id"] == uint64(*m.VendorID) && got["model_id"] == uint64(m.ID)
	}
	_, vendor := got["vendor_id"]
	return !vendor && got["model_id"] == uint64(m.ID)
}
