package blackboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clipforge/clipforge/ent"
	"github.com/clipforge/clipforge/ent/approvalrecord"
	"github.com/clipforge/clipforge/pkg/models"
)

// CreateApproval stores a new pending approval request in the aggregate
// and the approvals history table in one transaction.
func (s *Service) CreateApproval(ctx context.Context, projectID string, req models.ApprovalRequest, meta WriteMeta) (*models.ProjectState, error) {
	if req.ID == "" {
		return nil, NewValidationError("approval.id", "must not be empty")
	}
	req.ProjectID = projectID
	req.Status = models.ApprovalPending
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}

	return s.mutate(ctx, projectID, meta, mutation{
		changeType:  "APPROVAL_REQUESTED",
		path:        "/approvals/" + req.ID,
		description: fmt.Sprintf("approval requested at %s", req.Stage),
		apply: func(st *models.ProjectState) (any, any, error) {
			if _, exists := st.Approvals[req.ID]; exists {
				return nil, nil, NewValidationError("approval.id", "already exists")
			}
			st.Approvals[req.ID] = req
			return nil, req, nil
		},
		extra: func(ctx context.Context, tx *ent.Tx, st *models.ProjectState) error {
			err := tx.ApprovalRecord.Create().
				SetID(req.ID).
				SetProjectID(projectID).
				SetStage(string(req.Stage)).
				SetStatus(approvalrecord.Status(models.ApprovalPending)).
				SetContentSummary(req.ContentSummary).
				SetNotes(req.Notes).
				SetPriorStatus(string(req.PriorStatus)).
				SetTriggerEventID(req.TriggerEventID).
				SetDeferredTasks(req.DeferredTasks).
				SetCreatedAt(req.CreatedAt).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("record approval %s: %w", req.ID, err)
			}
			return nil
		},
	})
}

// GetApproval returns one approval request from the aggregate.
func (s *Service) GetApproval(ctx context.Context, projectID, approvalID string) (models.ApprovalRequest, error) {
	st, err := s.GetProject(ctx, projectID)
	if err != nil {
		return models.ApprovalRequest{}, err
	}
	req, ok := st.Approvals[approvalID]
	if !ok {
		return models.ApprovalRequest{}, fmt.Errorf("%w: %s in project %s", ErrApprovalNotFound, approvalID, projectID)
	}
	return req, nil
}

// ListPendingApprovals returns the project's pending requests, oldest
// first.
func (s *Service) ListPendingApprovals(ctx context.Context, projectID string) ([]models.ApprovalRequest, error) {
	st, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var out []models.ApprovalRequest
	for _, req := range st.Approvals {
		if req.Status == models.ApprovalPending {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// ListPendingApprovalsAll returns every pending request across projects,
// oldest first. The timeout scanner runs off this query rather than
// iterating aggregates.
func (s *Service) ListPendingApprovalsAll(ctx context.Context) ([]models.ApprovalRequest, error) {
	rows, err := s.db.ApprovalRecord.Query().
		Where(approvalrecord.StatusEQ(approvalrecord.Status(models.ApprovalPending))).
		Order(ent.Asc(approvalrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending approvals: %w", err)
	}
	out := make([]models.ApprovalRequest, 0, len(rows))
	for _, r := range rows {
		out = append(out, approvalFromRecord(r))
	}
	return out, nil
}

// MarkApprovalReminderSent flags the request so the scanner reminds at
// most once.
func (s *Service) MarkApprovalReminderSent(ctx context.Context, projectID, approvalID string, meta WriteMeta) error {
	_, err := s.mutate(ctx, projectID, meta, mutation{
		changeType:  "APPROVAL_REMINDED",
		path:        "/approvals/" + approvalID,
		description: "reminder sent",
		apply: func(st *models.ProjectState) (any, any, error) {
			req, ok := st.Approvals[approvalID]
			if !ok {
				return nil, nil, fmt.Errorf("%w: %s in project %s", ErrApprovalNotFound, approvalID, projectID)
			}
			req.ReminderSent = true
			st.Approvals[approvalID] = req
			return nil, req, nil
		},
		extra: func(ctx context.Context, tx *ent.Tx, st *models.ProjectState) error {
			return tx.ApprovalRecord.UpdateOneID(approvalID).
				SetReminderSent(true).
				Exec(ctx)
		},
	})
	return err
}

// ResolveApproval moves a pending request to a terminal status, removes
// it from the aggregate, and updates the history row. Returns the
// resolved request, deferred tasks included, for the gate to act on.
func (s *Service) ResolveApproval(ctx context.Context, projectID, approvalID string, status models.ApprovalStatus, resolvedBy, notes string, meta WriteMeta) (models.ApprovalRequest, error) {
	if status == models.ApprovalPending {
		return models.ApprovalRequest{}, NewValidationError("approval.status", "resolution cannot be pending")
	}

	var resolved models.ApprovalRequest
	now := time.Now().UTC()
	_, err := s.mutate(ctx, projectID, meta, mutation{
		changeType:  "APPROVAL_RESOLVED",
		path:        "/approvals/" + approvalID,
		description: fmt.Sprintf("approval %s", status),
		apply: func(st *models.ProjectState) (any, any, error) {
			req, ok := st.Approvals[approvalID]
			if !ok {
				return nil, nil, fmt.Errorf("%w: %s in project %s", ErrApprovalNotFound, approvalID, projectID)
			}
			if req.Status != models.ApprovalPending {
				return nil, nil, NewValidationError("approval.status", "already resolved")
			}
			before := req
			req.Status = status
			req.ResolvedAt = &now
			req.ResolvedBy = resolvedBy
			if notes != "" {
				req.Notes = notes
			}
			resolved = req
			delete(st.Approvals, approvalID)
			return before, req, nil
		},
		extra: func(ctx context.Context, tx *ent.Tx, st *models.ProjectState) error {
			upd := tx.ApprovalRecord.UpdateOneID(approvalID).
				SetStatus(approvalrecord.Status(status)).
				SetResolvedAt(now).
				SetResolvedBy(resolvedBy)
			if notes != "" {
				upd = upd.SetNotes(notes)
			}
			if err := upd.Exec(ctx); err != nil {
				return fmt.Errorf("resolve approval record %s: %w", approvalID, err)
			}
			return nil
		},
	})
	if err != nil {
		return models.ApprovalRequest{}, err
	}
	return resolved, nil
}

func approvalFromRecord(r *ent.ApprovalRecord) models.ApprovalRequest {
	return models.ApprovalRequest{
		ID:             r.ID,
		ProjectID:      r.ProjectID,
		Stage:          models.EventType(r.Stage),
		Status:         models.ApprovalStatus(r.Status),
		ContentSummary: r.ContentSummary,
		Notes:          r.Notes,
		PriorStatus:    models.ProjectStatus(r.PriorStatus),
		TriggerEventID: r.TriggerEventID,
		DeferredTasks:  r.DeferredTasks,
		ReminderSent:   r.ReminderSent,
		CreatedAt:      r.CreatedAt,
		ResolvedAt:     r.ResolvedAt,
		ResolvedBy:     r.ResolvedBy,
	}
}
