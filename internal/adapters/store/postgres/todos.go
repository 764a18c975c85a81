package postgres

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/taskmind/taskmind/internal/domain/todo"
	"github.com/taskmind/taskmind/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoStore = (*TodoStore)(nil)

// todoColumns is the select list shared by every todo query.
var todoColumns = []string{
	"id", "owner_id", "title", "description", "priority",
	"categories", "due_date", "completed", "created_at",
}

// todoRow is the sqlx scan target for the todos table.
type todoRow struct {
	ID          string         `db:"id"`
	OwnerID     string         `db:"owner_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Priority    string         `db:"priority"`
	Categories  pq.StringArray `db:"categories"`
	DueDate     *time.Time     `db:"due_date"`
	Completed   bool           `db:"completed"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *todoRow) toDomain() todo.Todo {
	return todo.Todo{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    todo.Priority(r.Priority),
		Categories:  []string(r.Categories),
		DueDate:     r.DueDate,
		Completed:   r.Completed,
		CreatedAt:   r.CreatedAt,
	}
}

// TodoStore implements ports.TodoStore on PostgreSQL.
type TodoStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewTodoStore creates a TodoStore over the given connection pool.
func NewTodoStore(db *sqlx.DB) *TodoStore {
	return &TodoStore{db: db, now: time.Now}
}

// List returns the owner's todos matching the filter criteria.
func (s *TodoStore) List(ctx context.Context, ownerID string, filter todo.Filter) ([]todo.Todo, error) {
	builder := sq.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"owner_id": ownerID}).
		PlaceholderFormat(sq.Dollar)

	builder = applyFilter(builder, filter, s.now())
	builder = applySort(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, translateError("building todo list query", err)
	}

	var rows []todoRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, translateError("listing todos", err)
	}

	todos := make([]todo.Todo, len(rows))
	for i := range rows {
		todos[i] = rows[i].toDomain()
	}
	return todos, nil
}

// Get returns a single todo by ID, owner-scoped.
func (s *TodoStore) Get(ctx context.Context, ownerID, id string) (*todo.Todo, error) {
	query, args, err := sq.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, translateError("building todo get query", err)
	}

	var row todoRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, translateError("fetching todo", err)
	}

	result := row.toDomain()
	return &result, nil
}

// Create inserts a new todo with a fresh UUID and creation timestamp.
func (s *TodoStore) Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	query, args, err := sq.Insert("todos").
		Columns(todoColumns...).
		Values(uuid.NewString(), t.OwnerID, t.Title, t.Description, string(t.Priority),
			pq.Array(t.Categories), t.DueDate, t.Completed, s.now().UTC()).
		Suffix("RETURNING " + returning()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, translateError("building todo insert", err)
	}

	var row todoRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, translateError("creating todo", err)
	}

	result := row.toDomain()
	return &result, nil
}

// Update replaces the mutable fields of an existing todo, owner-scoped.
func (s *TodoStore) Update(ctx context.Context, ownerID, id string, t *todo.Todo) (*todo.Todo, error) {
	query, args, err := sq.Update("todos").
		Set("title", t.Title).
		Set("description", t.Description).
		Set("priority", string(t.Priority)).
		Set("categories", pq.Array(t.Categories)).
		Set("due_date", t.DueDate).
		Set("completed", t.Completed).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + returning()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, translateError("building todo update", err)
	}

	var row todoRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, translateError("updating todo", err)
	}

	result := row.toDomain()
	return &result, nil
}

// SetCompleted flips the completion flag, owner-scoped.
func (s *TodoStore) SetCompleted(ctx context.Context, ownerID, id string, completed bool) (*todo.Todo, error) {
	query, args, err := sq.Update("todos").
		Set("completed", completed).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix("RETURNING " + returning()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, translateError("building todo completion update", err)
	}

	var row todoRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, translateError("setting todo completion", err)
	}

	result := row.toDomain()
	return &result, nil
}

// Delete removes a todo by ID, owner-scoped.
func (s *TodoStore) Delete(ctx context.Context, ownerID, id string) error {
	query, args, err := sq.Delete("todos").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return translateError("building todo delete", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError("deleting todo", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return translateError("deleting todo", sql.ErrNoRows)
	}

	return nil
}

// DeleteByOwner removes every todo belonging to the owner.
func (s *TodoStore) DeleteByOwner(ctx context.Context, ownerID string) error {
	query, args, err := sq.Delete("todos").
		Where(sq.Eq{"owner_id": ownerID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return translateError("building owner todo delete", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return translateError("deleting owner todos", err)
	}
	return nil
}

// ListOverdueHighPriority returns, across all owners, the incomplete
// high-priority todos due before the cutoff, ordered by owner for stable
// grouping downstream.
func (s *TodoStore) ListOverdueHighPriority(ctx context.Context, cutoff time.Time) ([]todo.Todo, error) {
	query, args, err := sq.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"priority": string(todo.PriorityHigh), "completed": false}).
		Where(sq.Lt{"due_date": cutoff}).
		OrderBy("owner_id", "due_date").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, translateError("building overdue query", err)
	}

	var rows []todoRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, translateError("listing overdue todos", err)
	}

	todos := make([]todo.Todo, len(rows))
	for i := range rows {
		todos[i] = rows[i].toDomain()
	}
	return todos, nil
}

// applyFilter narrows the select by search text, priority, category, and
// completion status.
func applyFilter(builder sq.SelectBuilder, filter todo.Filter, now time.Time) sq.SelectBuilder {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
		})
	}

	if len(filter.Priorities) > 0 {
		values := make([]string, len(filter.Priorities))
		for i, p := range filter.Priorities {
			values[i] = string(p)
		}
		builder = builder.Where(sq.Eq{"priority": values})
	}

	if len(filter.Categories) > 0 {
		// Array overlap: any requested category matches.
		builder = builder.Where(sq.Expr("categories && ?", pq.Array(filter.Categories)))
	}

	if len(filter.Statuses) > 0 {
		var conds sq.Or
		for _, st := range filter.Statuses {
			switch st {
			case todo.StatusCompleted:
				conds = append(conds, sq.Eq{"completed": true})
			case todo.StatusInProgress:
				conds = append(conds, sq.Eq{"completed": false})
			case todo.StatusOverdue:
				conds = append(conds, sq.And{
					sq.Eq{"completed": false},
					sq.Lt{"due_date": now},
				})
			}
		}
		builder = builder.Where(conds)
	}

	return builder
}

// applySort orders the select. Priority sorting maps the enum to its rank;
// due-date sorting pushes undated todos to the end; the default is newest
// first.
func applySort(builder sq.SelectBuilder, filter todo.Filter) sq.SelectBuilder {
	dir := "DESC"
	if filter.Ascending {
		dir = "ASC"
	}

	switch filter.SortBy {
	case todo.SortByPriority:
		builder = builder.OrderBy(
			"CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END "+dir,
			"created_at DESC",
		)
	case todo.SortByDueDate:
		builder = builder.OrderBy("due_date "+dir+" NULLS LAST", "created_at DESC")
	default:
		builder = builder.OrderBy("created_at " + dir)
	}

	return builder
}

func returning() string {
	out := todoColumns[0]
	for _, c := range todoColumns[1:] {
		out += ", " + c
	}
	return out
}
