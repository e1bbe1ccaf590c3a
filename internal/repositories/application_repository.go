package repositories

import (
	"context"
	"errors"

	"credvia/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

// ApplicationTxn is the unit of work handed to an UpdateAtomic callback.
// The application row is loaded with a row lock and its steps ordered by
// step_order; the callback mutates them in place and may append audit
// entries. Everything is persisted in the surrounding transaction.
type ApplicationTxn struct {
	Application *models.Application
	Steps       []models.WorkflowStep
	Audit       []models.AuditEntry
}

// AppendAudit queues an audit entry for persistence with the transaction.
func (t *ApplicationTxn) AppendAudit(entry models.AuditEntry) {
	entry.ApplicationID = t.Application.ID
	t.Audit = append(t.Audit, entry)
}

// ApplicationRepository defines application persistence operations.
type ApplicationRepository interface {
	// Create inserts an application together with its workflow steps in a
	// single transaction.
	Create(ctx context.Context, app *models.Application, steps []models.WorkflowStep) error

	// GetByID retrieves an application without nested collections.
	GetByID(ctx context.Context, id uint) (*models.Application, error)

	// GetDetailed retrieves an application with its workflow steps,
	// documents and payments preloaded.
	GetDetailed(ctx context.Context, id uint) (*models.Application, error)

	// ListByUser retrieves one page of a user's applications, newest first.
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]models.Application, int64, error)

	// List retrieves one page of all applications, optionally filtered by
	// status. Reviewer surfaces only.
	List(ctx context.Context, status models.ApplicationStatus, offset, limit int) ([]models.Application, int64, error)

	// Update persists changes to application fields outside the state
	// machine (drafts and resubmissions).
	Update(ctx context.Context, app *models.Application) error

	// UpdateAtomic loads the application and its steps under a row lock,
	// runs fn, and persists the application, all steps and queued audit
	// entries in one transaction. The legality of any state change is
	// re-checked by fn against the freshly read row, so concurrent
	// transitions serialize on the lock instead of racing.
	UpdateAtomic(ctx context.Context, id uint, fn func(txn *ApplicationTxn) error) (*models.Application, error)

	// CountByStatus returns how many applications sit in each status.
	CountByStatus(ctx context.Context) (map[models.ApplicationStatus]int64, error)
}
