package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/formatkit/internal/model"
	"github.com/unclebandit/formatkit/internal/repository"
)

// --- In-memory customers table behind database/sql ---

type row struct {
	id, name, age string
	subscribed    bool
}

type table struct {
	mu   sync.Mutex
	rows map[string]row
}

var (
	tablesMu sync.Mutex
	tables   = map[string]*table{}
)

func init() {
	sql.Register("customers-mem", memDriver{})
}

type memDriver struct{}

func (memDriver) Open(dsn string) (driver.Conn, error) {
	if dsn == "unreachable" {
		return nil, errors.New("connection refused")
	}
	tablesMu.Lock()
	defer tablesMu.Unlock()
	t, ok := tables[dsn]
	if !ok {
		t = &table{rows: map[string]row{}}
		tables[dsn] = t
	}
	return &memConn{t: t}, nil
}

type memConn struct{ t *table }

func (c *memConn) Prepare(query string) (driver.Stmt, error) {
	return &memStmt{t: c.t, query: strings.Join(strings.Fields(query), " ")}, nil
}
func (c *memConn) Close() error              { return nil }
func (c *memConn) Begin() (driver.Tx, error) { return nil, errors.New("transactions not supported") }

type memStmt struct {
	t     *table
	query string
}

func (s *memStmt) Close() error  { return nil }
func (s *memStmt) NumInput() int { return -1 }

func (s *memStmt) Exec(args []driver.Value) (driver.Result, error) {
	if !strings.HasPrefix(s.query, "INSERT INTO customers") || !strings.Contains(s.query, "ON CONFLICT (id) DO UPDATE") {
		return nil, fmt.Errorf("unexpected exec: %s", s.query)
	}
	if len(args) != 4 {
		return nil, fmt.Errorf("insert wants 4 args, got %d", len(args))
	}
	r := row{id: args[0].(string), name: args[1].(string), age: args[2].(string), subscribed: args[3].(bool)}
	s.t.mu.Lock()
	s.t.rows[r.id] = r
	s.t.mu.Unlock()
	return driver.RowsAffected(1), nil
}

func (s *memStmt) Query(args []driver.Value) (driver.Rows, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	var out []row
	switch {
	case strings.HasSuffix(s.query, "WHERE id = $1"):
		if r, ok := s.t.rows[args[0].(string)]; ok {
			out = append(out, r)
		}
	case strings.HasSuffix(s.query, "ORDER BY id"):
		for _, r := range s.t.rows {
			out = append(out, r)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	default:
		return nil, fmt.Errorf("unexpected query: %s", s.query)
	}
	return &memRows{rows: out}, nil
}

type memRows struct {
	rows []row
	pos  int
}

func (r *memRows) Columns() []string { return []string{"id", "name", "age", "is_subscribed"} }
func (r *memRows) Close() error      { return nil }

func (r *memRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	cur := r.rows[r.pos]
	r.pos++
	dest[0], dest[1], dest[2], dest[3] = cur.id, cur.name, []byte(cur.age), cur.subscribed
	return nil
}

func newRepo(t *testing.T) (*repository.CustomerRepository, *table) {
	t.Helper()
	db, err := sql.Open("customers-mem", t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	tablesMu.Lock()
	defer tablesMu.Unlock()
	tables[t.Name()] = &table{rows: map[string]row{}}
	return &repository.CustomerRepository{DB: db}, tables[t.Name()]
}

// --- Tests ---

func TestGetByIDNotFound(t *testing.T) {
	repo, _ := newRepo(t)

	c, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestUpsertRoundTripsAgeKind(t *testing.T) {
	repo, tbl := newRepo(t)
	ctx := context.Background()

	profiles := map[model.CustomerID]model.CustomerProfile{
		"1": {Name: "Alice", Age: model.NumericAge(20), IsSubscribed: true},
		"2": {Name: "Bob", Age: model.TextAge("20")},
		"3": {Name: "Carol", Age: model.TextAge("NaN")},
		"4": {Name: "Dan", Age: model.NumericAge(30.5)},
	}
	for id, p := range profiles {
		require.NoError(t, repo.Upsert(ctx, id, p))
	}

	// the column keeps the JSON form so a numeric 20 and a text "20" differ
	assert.Equal(t, "20", tbl.rows["1"].age)
	assert.Equal(t, `"20"`, tbl.rows["2"].age)
	assert.Equal(t, `"NaN"`, tbl.rows["3"].age)

	for id, want := range profiles {
		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got, id)
		assert.Equal(t, model.Customer{ID: id, Name: want.Name, Age: want.Age, IsSubscribed: want.IsSubscribed}, *got)
	}
}

func TestUpsertOverwritesOnConflict(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "1", model.CustomerProfile{Name: "Alice", Age: model.NumericAge(20)}))
	require.NoError(t, repo.Upsert(ctx, "1", model.CustomerProfile{Name: "Alicia", Age: model.TextAge("unknown"), IsSubscribed: true}))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Customer{{ID: "1", Name: "Alicia", Age: model.TextAge("unknown"), IsSubscribed: true}}, all)
}

func TestListAllOrderedByID(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all)

	for _, id := range []model.CustomerID{"c", "a", "b"} {
		require.NoError(t, repo.Upsert(ctx, id, model.CustomerProfile{Name: string(id)}))
	}
	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []model.CustomerID{"a", "b", "c"}, []model.CustomerID{all[0].ID, all[1].ID, all[2].ID})
}

func TestLegacyPlainTextAgeStillScans(t *testing.T) {
	repo, tbl := newRepo(t)
	tbl.rows["9"] = row{id: "9", name: "Old", age: "forty"}

	got, err := repo.GetByID(context.Background(), "9")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.TextAge("forty"), got.Age)
}

func TestRepositoryPropagatesConnectionErrors(t *testing.T) {
	db, err := sql.Open("customers-mem", "unreachable")
	require.NoError(t, err)
	defer db.Close()
	repo := &repository.CustomerRepository{DB: db}
	ctx := context.Background()

	_, err = repo.GetByID(ctx, "1")
	assert.Error(t, err)
	_, err = repo.ListAll(ctx)
	assert.Error(t, err)
	assert.Error(t, repo.Upsert(ctx, "1", model.CustomerProfile{}))
}
