package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	portsrepo "github.com/typoapparel/tbm_backend/internal/core/ports/repositories"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/typoapparel/tbm_backend/internal/models"
	"github.com/typoapparel/tbm_backend/internal/platform/metrics"
	"github.com/typoapparel/tbm_backend/internal/utils/mapping"
)

// CSV projection headers. Fixed by the interchange contract; consumers match
// on them byte for byte.
var (
	transactionCSVHeader = []string{"Date", "Description", "Type", "Category", "Amount"}
	inventoryCSVHeader   = []string{"Name", "Category", "Size", "Color", "Quantity", "Cost", "Price", "Total Value"}
)

type backupService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepository
	invRepo      portsrepo.InventoryRepository
	customerRepo portsrepo.CustomerRepository
	profileRepo  portsrepo.ProfileRepository
	systemRepo   portsrepo.SystemRepository
}

// NewBackupService creates the backup codec service.
func NewBackupService(
	txnRepo portsrepo.TransactionRepository,
	invRepo portsrepo.InventoryRepository,
	customerRepo portsrepo.CustomerRepository,
	profileRepo portsrepo.ProfileRepository,
	systemRepo portsrepo.SystemRepository,
) portssvc.BackupSvcFacade {
	return &backupService{
		txnRepo:      txnRepo,
		invRepo:      invRepo,
		customerRepo: customerRepo,
		profileRepo:  profileRepo,
		systemRepo:   systemRepo,
	}
}

var _ portssvc.BackupSvcFacade = (*backupService)(nil)

// Export serializes the full entity set with version and timestamp metadata.
func (s *backupService) Export(ctx context.Context) (*dto.BackupPayload, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for export: %w", err)
	}
	items, err := s.invRepo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for export: %w", err)
	}
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers for export: %w", err)
	}

	payload := &dto.BackupPayload{
		Version:      dto.BackupFormatVersion,
		ExportedAt:   time.Now().UTC(),
		Transactions: mapping.ToModelTransactionSlice(transactions),
		Inventory:    mapping.ToModelInventorySlice(items),
		Customers:    mapping.ToModelCustomerSlice(customers),
	}

	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load profile for export: %w", err)
	}
	if profile != nil {
		p := mapping.ToModelProfile(*profile)
		payload.Profile = &p
	}

	metrics.BackupExportsTotal.WithLabelValues("json").Inc()
	return payload, nil
}

// backupEnvelope is the import-side decode target. RawMessage members
// distinguish absent collections (left untouched) from present-but-empty
// ones (replaced with nothing).
type backupEnvelope struct {
	Version      *int            `json:"version"`
	Transactions json.RawMessage `json:"transactions"`
	Inventory    json.RawMessage `json:"inventory"`
	Customers    json.RawMessage `json:"customers"`
	Profile      json.RawMessage `json:"profile"`
}

func (e backupEnvelope) empty() bool {
	return e.Version == nil &&
		!memberPresent(e.Transactions) &&
		!memberPresent(e.Inventory) &&
		!memberPresent(e.Customers) &&
		!memberPresent(e.Profile)
}

func memberPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// Import parses a payload and destructively replaces the collections it
// carries. Parsing happens entirely before the first write, so a rejected
// payload never mutates anything.
func (s *backupService) Import(ctx context.Context, payload []byte) (*dto.ImportResult, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		metrics.BackupImportsTotal.WithLabelValues("parse_error").Inc()
		return nil, fmt.Errorf("payload is not valid JSON: %w", apperrors.ErrParseFailure)
	}

	switch trimmed[0] {
	case '[':
		return s.importLegacy(ctx, trimmed)
	case '{':
		return s.importVersioned(ctx, trimmed)
	default:
		metrics.BackupImportsTotal.WithLabelValues("invalid_format").Inc()
		return nil, fmt.Errorf("payload is neither a backup object nor a transaction array: %w", apperrors.ErrInvalidFormat)
	}
}

// importLegacy handles the original export shape: a bare array of
// transactions. Only the ledger is replaced; every other collection is left
// untouched.
func (s *backupService) importLegacy(ctx context.Context, payload []byte) (*dto.ImportResult, error) {
	var stored []models.Transaction
	if err := json.Unmarshal(payload, &stored); err != nil {
		metrics.BackupImportsTotal.WithLabelValues("invalid_format").Inc()
		return nil, fmt.Errorf("array payload is not a transaction list: %w", apperrors.ErrInvalidFormat)
	}

	if err := s.txnRepo.ReplaceTransactions(ctx, mapping.ToDomainTransactionSlice(stored)); err != nil {
		metrics.BackupImportsTotal.WithLabelValues("store_error").Inc()
		return nil, fmt.Errorf("failed to flush imported ledger: %w", err)
	}

	metrics.BackupImportsTotal.WithLabelValues("ok").Inc()
	s.LogInfo(ctx, "Legacy backup imported", "transactions", len(stored))
	return &dto.ImportResult{
		Legacy:   true,
		Replaced: []string{"transactions"},
		Counts:   map[string]int{"transactions": len(stored)},
	}, nil
}

// importVersioned handles the current object shape. A missing version tag is
// treated as version 1, written before the tag existed. Only members present
// in the payload are replaced.
func (s *backupService) importVersioned(ctx context.Context, payload []byte) (*dto.ImportResult, error) {
	var env backupEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		metrics.BackupImportsTotal.WithLabelValues("invalid_format").Inc()
		return nil, fmt.Errorf("object payload does not match the backup shape: %w", apperrors.ErrInvalidFormat)
	}
	if env.empty() {
		metrics.BackupImportsTotal.WithLabelValues("invalid_format").Inc()
		return nil, fmt.Errorf("object payload carries no known backup member: %w", apperrors.ErrInvalidFormat)
	}
	if env.Version != nil && *env.Version > dto.BackupFormatVersion {
		metrics.BackupImportsTotal.WithLabelValues("invalid_format").Inc()
		return nil, fmt.Errorf("backup version %d is newer than supported %d: %w", *env.Version, dto.BackupFormatVersion, apperrors.ErrInvalidFormat)
	}

	// Decode everything before the first write.
	var (
		transactions []models.Transaction
		items        []models.InventoryItem
		customers    []models.Customer
		profile      *models.BusinessProfile
	)
	if memberPresent(env.Transactions) {
		if err := json.Unmarshal(env.Transactions, &transactions); err != nil {
			metrics.BackupImportsTotal.WithLabelValues("invalid_format").Inc()
			return nil, fmt.Errorf("transactions member is malformed: %w", apperrors.ErrInvalidFormat)
		}
	}
	if memberPresent(env.Inventory) {
		if err := json.Unmarshal(env.Inventory, &items); err != nil {
			metrics.BackupImportsTotal.WithLabelValues("invalid_format").Inc()
			return nil, fmt.Errorf("inventory member is malformed: %w", apperrors.ErrInvalidFormat)
		}
	}
	if memberPresent(env.Customers) {
		if err := json.Unmarshal(env.Customers, &customers); err != nil {
			metrics.BackupImportsTotal.WithLabelValues("invalid_format").Inc()
			return nil, fmt.Errorf("customers member is malformed: %w", apperrors.ErrInvalidFormat)
		}
	}
	if memberPresent(env.Profile) {
		profile = &models.BusinessProfile{}
		if err := json.Unmarshal(env.Profile, profile); err != nil {
			metrics.BackupImportsTotal.WithLabelValues("invalid_format").Inc()
			return nil, fmt.Errorf("profile member is malformed: %w", apperrors.ErrInvalidFormat)
		}
	}

	result := &dto.ImportResult{Counts: map[string]int{}}
	if memberPresent(env.Transactions) {
		if err := s.txnRepo.ReplaceTransactions(ctx, mapping.ToDomainTransactionSlice(transactions)); err != nil {
			metrics.BackupImportsTotal.WithLabelValues("store_error").Inc()
			return nil, fmt.Errorf("failed to flush imported ledger: %w", err)
		}
		result.Replaced = append(result.Replaced, "transactions")
		result.Counts["transactions"] = len(transactions)
	}
	if memberPresent(env.Inventory) {
		if err := s.invRepo.ReplaceInventory(ctx, mapping.ToDomainInventorySlice(items)); err != nil {
			metrics.BackupImportsTotal.WithLabelValues("store_error").Inc()
			return nil, fmt.Errorf("failed to flush imported inventory: %w", err)
		}
		result.Replaced = append(result.Replaced, "inventory")
		result.Counts["inventory"] = len(items)
	}
	if memberPresent(env.Customers) {
		if err := s.customerRepo.ReplaceCustomers(ctx, mapping.ToDomainCustomerSlice(customers)); err != nil {
			metrics.BackupImportsTotal.WithLabelValues("store_error").Inc()
			return nil, fmt.Errorf("failed to flush imported customers: %w", err)
		}
		result.Replaced = append(result.Replaced, "customers")
		result.Counts["customers"] = len(customers)
	}
	if profile != nil {
		if err := s.profileRepo.SaveProfile(ctx, mapping.ToDomainProfile(*profile)); err != nil {
			metrics.BackupImportsTotal.WithLabelValues("store_error").Inc()
			return nil, fmt.Errorf("failed to flush imported profile: %w", err)
		}
		result.Replaced = append(result.Replaced, "profile")
		result.Counts["profile"] = 1
	}

	metrics.BackupImportsTotal.WithLabelValues("ok").Inc()
	s.LogInfo(ctx, "Backup imported", "replaced", result.Replaced)
	return result, nil
}

// ExportTransactionsCSV renders the flat ledger projection.
func (s *backupService) ExportTransactionsCSV(ctx context.Context) ([]byte, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for CSV export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(transactionCSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, txn := range transactions {
		row := []string{
			txn.Date.UTC().Format(time.RFC3339),
			txn.Description,
			string(txn.Type),
			txn.Category,
			txn.Amount.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	metrics.BackupExportsTotal.WithLabelValues("csv").Inc()
	return buf.Bytes(), nil
}

// ExportInventoryCSV renders the flat stock projection. Total Value is the
// retail valuation: quantity x (unitPrice falling back to unitCost).
func (s *backupService) ExportInventoryCSV(ctx context.Context) ([]byte, error) {
	items, err := s.invRepo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for CSV export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(inventoryCSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, item := range items {
		row := []string{
			item.Name,
			string(item.Category),
			item.Size,
			item.Color,
			strconv.FormatInt(item.Quantity, 10),
			item.UnitCost.String(),
			item.UnitPrice.String(),
			item.RetailValue().String(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	metrics.BackupExportsTotal.WithLabelValues("csv").Inc()
	return buf.Bytes(), nil
}

// ResetAll erases every stored collection.
func (s *backupService) ResetAll(ctx context.Context) error {
	if err := s.systemRepo.ClearAll(ctx); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("system", "reset").Inc()
		return fmt.Errorf("failed to clear store: %w", err)
	}
	metrics.MutationsTotal.WithLabelValues("system", "reset").Inc()
	s.LogInfo(ctx, "Store reset, all collections cleared")
	return nil
}
