package services

import (
	"context"

	"github.com/typoapparel/tbm_backend/internal/dto"
)

// BackupSvcFacade is the backup codec: full-state export/import plus the
// flat CSV projections and the store reset.
type BackupSvcFacade interface {
	// Export serializes the full entity set with version and timestamp
	// metadata.
	Export(ctx context.Context) (*dto.BackupPayload, error)
	// Import parses a payload and destructively replaces the collections it
	// carries. A bare JSON array is the legacy transactions-only shape; an
	// object replaces only the members present. Returns
	// apperrors.ErrParseFailure for malformed payloads and
	// apperrors.ErrInvalidFormat for unrecognized shapes; no collection is
	// mutated on failure.
	Import(ctx context.Context, payload []byte) (*dto.ImportResult, error)
	// ExportTransactionsCSV renders the ledger projection
	// (Date,Description,Type,Category,Amount).
	ExportTransactionsCSV(ctx context.Context) ([]byte, error)
	// ExportInventoryCSV renders the stock projection
	// (Name,Category,Size,Color,Quantity,Cost,Price,Total Value).
	ExportInventoryCSV(ctx context.Context) ([]byte, error)
	// ResetAll erases every collection.
	ResetAll(ctx context.Context) error
}
