package approval

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/clipforge/clipforge/pkg/blackboard"
	"github.com/clipforge/clipforge/pkg/models"
)

const scannerActor = "approval_scanner"

// Scanner watches pending approvals for reminders and timeouts. One
// reminder fires after the approval timeout; at twice the timeout the
// request times out and either auto-approves or escalates to the human
// gate, per configuration.
type Scanner struct {
	gate *Gate

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScanner creates a scanner over the gate's store and bus.
func NewScanner(gate *Gate) *Scanner {
	return &Scanner{gate: gate, stopCh: make(chan struct{})}
}

// Start launches the scan loop.
func (sc *Scanner) Start(ctx context.Context) {
	sc.wg.Add(1)
	go func() {
		defer sc.wg.Done()
		sc.loop(ctx)
	}()
	slog.Info("Approval scanner started", "interval", sc.gate.cfg.ScanInterval)
}

// Stop signals the loop and waits for it to drain.
func (sc *Scanner) Stop() {
	sc.stopOnce.Do(func() { close(sc.stopCh) })
	sc.wg.Wait()
}

func (sc *Scanner) loop(ctx context.Context) {
	ticker := time.NewTicker(sc.gate.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sc.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if err := sc.Scan(ctx); err != nil {
			slog.Error("Approval scan failed", "error", err)
		}
	}
}

// Scan runs one pass over every pending approval.
func (sc *Scanner) Scan(ctx context.Context) error {
	pending, err := sc.gate.state.ListPendingApprovalsAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, req := range pending {
		st, err := sc.gate.state.GetProjectFresh(ctx, req.ProjectID)
		if err != nil {
			slog.Error("Approval scan project load failed", "project_id", req.ProjectID, "error", err)
			continue
		}

		timeout := sc.gate.timeoutFor(st)
		age := now.Sub(req.CreatedAt)
		switch {
		case age >= 2*timeout:
			sc.timeOut(ctx, req)
		case age >= timeout && !req.ReminderSent:
			sc.remind(ctx, req, timeout)
		}
	}
	return nil
}

// remind flags the request and announces the overdue approval once.
func (sc *Scanner) remind(ctx context.Context, req models.ApprovalRequest, timeout time.Duration) {
	meta := blackboard.WriteMeta{Actor: scannerActor, CausationEventID: req.TriggerEventID}
	if err := sc.gate.state.MarkApprovalReminderSent(ctx, req.ProjectID, req.ID, meta); err != nil {
		slog.Error("Reminder flag write failed", "approval_id", req.ID, "error", err)
		return
	}
	_, err := sc.gate.events.Publish(ctx, &models.Event{
		ProjectID:   req.ProjectID,
		Type:        models.EventApprovalReminder,
		Actor:       scannerActor,
		CausationID: req.TriggerEventID,
		Payload: map[string]any{
			"approval_id": req.ID,
			"stage":       string(req.Stage),
			"waiting_for": time.Since(req.CreatedAt).Round(time.Second).String(),
			"timeout":     timeout.String(),
		},
	})
	if err != nil {
		slog.Error("APPROVAL_REMINDER publish failed", "approval_id", req.ID, "error", err)
	}
}

// timeOut resolves an expired request: auto-approve when configured,
// otherwise escalate to the human gate and leave the project paused.
func (sc *Scanner) timeOut(ctx context.Context, req models.ApprovalRequest) {
	meta := blackboard.WriteMeta{Actor: scannerActor, CausationEventID: req.TriggerEventID}

	if sc.gate.cfg.AutoApproveOnTimeout {
		// Route through the normal decision path so deferred tasks release.
		err := sc.gate.HandleEvent(ctx, &models.Event{
			ID:        req.TriggerEventID,
			ProjectID: req.ProjectID,
			Type:      models.EventUserApproved,
			Actor:     scannerActor,
			Payload: map[string]any{
				"approval_id": req.ID,
				"decided_by":  scannerActor,
				"notes":       "auto-approved on timeout",
			},
		})
		if err != nil {
			slog.Error("Timeout auto-approve failed", "approval_id", req.ID, "error", err)
		}
		return
	}

	if _, err := sc.gate.state.ResolveApproval(ctx, req.ProjectID, req.ID,
		models.ApprovalTimedOut, scannerActor, "approval timed out", meta); err != nil {
		slog.Error("Timeout resolve failed", "approval_id", req.ID, "error", err)
		return
	}

	_, _ = sc.gate.events.Publish(ctx, &models.Event{
		ProjectID:   req.ProjectID,
		Type:        models.EventApprovalTimeout,
		Actor:       scannerActor,
		CausationID: req.TriggerEventID,
		Payload: map[string]any{
			"approval_id": req.ID,
			"stage":       string(req.Stage),
		},
	})
	_, _ = sc.gate.events.Publish(ctx, &models.Event{
		ProjectID:   req.ProjectID,
		Type:        models.EventHumanGateTriggered,
		Actor:       scannerActor,
		CausationID: req.TriggerEventID,
		Payload: map[string]any{
			"approval_id": req.ID,
			"reason":      "approval timed out without a decision",
		},
	})
	slog.Warn("Approval timed out", "project_id", req.ProjectID, "approval_id", req.ID, "stage", req.Stage)
}
