package usecase

import (
	"context"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"letterpress_ops/internal/domain/entities"
	"letterpress_ops/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// SelectionEntry is one checkbox in the estimate picker.
type SelectionEntry struct {
	EstimateID string `json:"estimate_id"`
	Selected   bool   `json:"selected"`
}

// Selection maps estimate IDs to a selected flag, keeping the order in which
// estimates were first touched so results are deterministic.
type Selection []SelectionEntry

// Set updates the flag for id, appending it if it is new.
func (s Selection) Set(id string, selected bool) Selection {
	for i := range s {
		if s[i].EstimateID == id {
			s[i].Selected = selected
			return s
		}
	}
	return append(s, SelectionEntry{EstimateID: id, Selected: selected})
}

// SelectedIDs returns the selected IDs in insertion order. When an ID appears
// more than once the last entry wins.
func (s Selection) SelectedIDs() []string {
	last := make(map[string]bool, len(s))
	for _, e := range s {
		last[e.EstimateID] = e.Selected
	}
	seen := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))
	for _, e := range s {
		if _, ok := seen[e.EstimateID]; ok {
			continue
		}
		seen[e.EstimateID] = struct{}{}
		if last[e.EstimateID] {
			out = append(out, e.EstimateID)
		}
	}
	return out
}

func indexEstimates(all []entities.Estimate) map[string]entities.Estimate {
	byID := make(map[string]entities.Estimate, len(all))
	for _, e := range all {
		byID[e.ID] = e
	}
	return byID
}

// selectedEstimates resolves the selection against all, dropping IDs that do
// not exist.
func selectedEstimates(selection Selection, all []entities.Estimate) []entities.Estimate {
	byID := indexEstimates(all)
	out := make([]entities.Estimate, 0, len(selection))
	for _, id := range selection.SelectedIDs() {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// GetMovableEstimates returns the selected estimates that exist, are not
// frozen and are not already in targetVersionID, in selection order.
func GetMovableEstimates(selection Selection, all []entities.Estimate, targetVersionID string) []entities.Estimate {
	out := make([]entities.Estimate, 0, len(selection))
	for _, e := range selectedEstimates(selection, all) {
		if e.IsMovable() && e.VersionID != targetVersionID {
			out = append(out, e)
		}
	}
	return out
}

// GetSelectableEstimatesCount counts selected estimates that could move to
// some version, whatever the target.
func GetSelectableEstimatesCount(selection Selection, all []entities.Estimate) int {
	n := 0
	for _, e := range selectedEstimates(selection, all) {
		if e.IsMovable() {
			n++
		}
	}
	return n
}

// TransferValidation is the pre-flight verdict shown before a transfer.
type TransferValidation struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message,omitempty"`
}

// ValidateVersionTransfer checks the transfer as a whole. Per-estimate
// eligibility is GetMovableEstimates' job.
func ValidateVersionTransfer(selected []entities.Estimate, targetVersion, currentVersion string) TransferValidation {
	target := strings.TrimSpace(targetVersion)
	switch {
	case len(selected) == 0:
		return TransferValidation{Message: "select at least one estimate to transfer"}
	case target == "":
		return TransferValidation{Message: "select a target version"}
	case target == strings.TrimSpace(currentVersion):
		return TransferValidation{Message: "target version must differ from the current version"}
	}
	return TransferValidation{IsValid: true}
}

// ClientGroups indexes estimates by client ID, then by version ID.
type ClientGroups map[string]map[string][]entities.Estimate

// GroupEstimatesByClientAndVersion builds ClientGroups, keeping input order
// within each version.
func GroupEstimatesByClientAndVersion(estimates []entities.Estimate) ClientGroups {
	groups := make(ClientGroups)
	for _, e := range estimates {
		versions, ok := groups[e.ClientID]
		if !ok {
			versions = make(map[string][]entities.Estimate)
			groups[e.ClientID] = versions
		}
		versions[e.VersionID] = append(versions[e.VersionID], e)
	}
	return groups
}

// VersionCount is the number of estimates in one version.
type VersionCount struct {
	VersionID string `json:"version_id"`
	Count     int    `json:"count"`
}

// VersionStatistics summarizes a client's versions.
type VersionStatistics struct {
	TotalVersions    int            `json:"total_versions"`
	TotalEstimates   int            `json:"total_estimates"`
	VersionBreakdown []VersionCount `json:"version_breakdown"`
}

// GetVersionStatistics aggregates one client's group. The breakdown is sorted
// by numeric version ascending; non-numeric versions follow in lexical order.
func GetVersionStatistics(groups ClientGroups, clientID string) VersionStatistics {
	versions := groups[clientID]
	stats := VersionStatistics{VersionBreakdown: make([]VersionCount, 0, len(versions))}
	for id, list := range versions {
		stats.TotalVersions++
		stats.TotalEstimates += len(list)
		stats.VersionBreakdown = append(stats.VersionBreakdown, VersionCount{VersionID: id, Count: len(list)})
	}
	sort.Slice(stats.VersionBreakdown, func(i, j int) bool {
		return versionLess(stats.VersionBreakdown[i].VersionID, stats.VersionBreakdown[j].VersionID)
	})
	return stats
}

func versionLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}

// IVersionTransferUseCase moves estimates between versions.
type IVersionTransferUseCase interface {
	TransferVersions(ctx context.Context, movable []entities.Estimate, targetVersionID string) (int, error)
	TransferClientVersions(ctx context.Context, clientID string, selection Selection, targetVersion, currentVersion string, role entities.Role) (int, error)
	VersionStatistics(ctx context.Context, clientID string) (VersionStatistics, error)
}

type VersionTransferUseCase struct {
	repo interfaces.IEstimateRepository
	now  func() time.Time
}

var _ IVersionTransferUseCase = (*VersionTransferUseCase)(nil)

// transferConcurrency caps the number of UpdateVersion calls in flight.
const transferConcurrency = 8

func NewVersionTransferUseCase(repo interfaces.IEstimateRepository) *VersionTransferUseCase {
	return &VersionTransferUseCase{repo: repo, now: time.Now}
}

// TransferVersions sets VersionID on every estimate concurrently. All writes
// carry the same updatedAt, captured before dispatch. Writes are independent:
// when some fail the others stay applied and a *PartialBatchFailure lists the
// outcome of each record. In-flight writes are never cancelled.
func (u *VersionTransferUseCase) TransferVersions(ctx context.Context, movable []entities.Estimate, targetVersionID string) (int, error) {
	ctx = context.WithoutCancel(ctx)
	targetVersionID = strings.TrimSpace(targetVersionID)
	if targetVersionID == "" {
		return 0, &ValidationError{Err: ErrInvalidTransfer, Details: "select a target version"}
	}
	if len(movable) == 0 {
		return 0, nil
	}

	updatedAt := u.now().UTC()
	results := make([]RecordResult, len(movable))

	var g errgroup.Group
	g.SetLimit(transferConcurrency)
	for i, e := range movable {
		g.Go(func() error {
			updated, err := u.repo.UpdateVersion(ctx, e.ID, targetVersionID, updatedAt)
			if err == nil && updated.ID == "" {
				err = ErrEstimateNotFound
			}
			if err != nil {
				err = &PersistenceError{Op: "update estimate version", ID: e.ID, Err: err}
			}
			results[i] = RecordResult{ID: e.ID, Err: err}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		log.Printf("[version][usecase] transfer partially failed target=%s attempted=%d failed=%d err=%v", targetVersionID, len(movable), failed, err)
		return len(movable) - failed, &PartialBatchFailure{
			Attempted: len(movable),
			Failed:    failed,
			Results:   results,
			Err:       err,
		}
	}

	log.Printf("[version][usecase] transfer done target=%s moved=%d updated_at=%s", targetVersionID, len(movable), updatedAt.Format(time.RFC3339Nano))
	return len(movable), nil
}

func (u *VersionTransferUseCase) TransferClientVersions(ctx context.Context, clientID string, selection Selection, targetVersion, currentVersion string, role entities.Role) (int, error) {
	if !role.CanManageEstimates() {
		return 0, ErrForbiddenRole
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return 0, ErrInvalidClientID
	}

	all, err := u.repo.ListByClientID(ctx, clientID)
	if err != nil {
		return 0, &PersistenceError{Op: "list client estimates", ID: clientID, Err: err}
	}

	if v := ValidateVersionTransfer(selectedEstimates(selection, all), targetVersion, currentVersion); !v.IsValid {
		return 0, &ValidationError{Err: ErrInvalidTransfer, Details: v.Message}
	}

	target := strings.TrimSpace(targetVersion)
	movable := GetMovableEstimates(selection, all, target)
	if len(movable) == 0 {
		return 0, &ValidationError{Err: ErrInvalidTransfer, Details: "none of the selected estimates can be moved"}
	}
	return u.TransferVersions(ctx, movable, target)
}

func (u *VersionTransferUseCase) VersionStatistics(ctx context.Context, clientID string) (VersionStatistics, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return VersionStatistics{}, ErrInvalidClientID
	}
	all, err := u.repo.ListByClientID(ctx, clientID)
	if err != nil {
		return VersionStatistics{}, &PersistenceError{Op: "list client estimates", ID: clientID, Err: err}
	}
	return GetVersionStatistics(GroupEstimatesByClientAndVersion(all), clientID), nil
}
