package employee

import "context"

// ChangeOp names the mutation that triggered a store notification.
type ChangeOp string

const (
	ChangeAdd        ChangeOp = "add"
	ChangeUpdate     ChangeOp = "update"
	ChangeDelete     ChangeOp = "delete"
	ChangeBulkDelete ChangeOp = "bulk_delete"
)

// Change describes a committed mutation. Listeners receive it only after the
// mutation is fully applied.
type Change struct {
	Op  ChangeOp
	IDs []string
}

type EmployeeRepository interface {
	// List returns the full collection in insertion order, as a copy.
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// Add appends the record with a freshly minted id and returns it.
	// The store does not re-validate; that is the schema's job.
	Add(ctx context.Context, e Employee) (Employee, error)
	// Update replaces the fields of the record with the given id, which
	// stays immutable. ErrEmployeeNotFound when the id is unknown.
	Update(ctx context.Context, id string, e Employee) error
	// Delete removes the record. The second call with the same id is a
	// no-op: false return, no notification.
	Delete(ctx context.Context, id string) (bool, error)
	// DeleteMany removes every record whose id is in ids in one atomic
	// pass with a single notification, returning the number removed.
	DeleteMany(ctx context.Context, ids []string) (int, error)
	// Subscribe registers a listener called after every successful
	// mutation, in registration order. The returned function deregisters.
	Subscribe(listener func(Change)) (unsubscribe func())
}
