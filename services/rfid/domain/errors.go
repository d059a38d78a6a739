package domain

import "errors"

// Sentinel errors for the rfid domain. Use errors.Is() to check these.
var (
	// ErrCorruptStore indicates the persisted tag file exists but could not
	// be read or parsed. The store still returns an empty usable collection;
	// hosts decide whether to proceed or abort.
	ErrCorruptStore = errors.New("rfid tag store is corrupt")

	// ErrStoreSave indicates the tag collection could not be durably written.
	// An assignment pass that hits this must not be reported as success.
	ErrStoreSave = errors.New("rfid tag store save failed")

	// ErrCatalogUnavailable indicates the supply catalog could not be read.
	ErrCatalogUnavailable = errors.New("supply catalog unavailable")

	// ErrDuplicateTag indicates a generated tag id collided with an existing
	// record even after a retry.
	ErrDuplicateTag = errors.New("duplicate rfid tag id")

	// ErrInvalidReportName indicates a report filename that would escape the
	// configured report directory.
	ErrInvalidReportName = errors.New("invalid report filename")
)
