package followups_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/pathlight-health/casebook/internal/followups"
)

// flakyStore is a database/sql driver that serves insert-returning rows
// until a configured number of statements have run, then errors. It records
// transaction outcomes so tests can assert on commit versus rollback.
type flakyStore struct {
	mu         sync.Mutex
	failAfter  int
	inserts    int
	committed  bool
	rolledBack bool
}

func (s *flakyStore) Open(string) (driver.Conn, error) { return &storeConn{store: s}, nil }

type storeConnector struct {
	store *flakyStore
}

func (c storeConnector) Connect(context.Context) (driver.Conn, error) {
	return &storeConn{store: c.store}, nil
}

func (c storeConnector) Driver() driver.Driver { return c.store }

type storeConn struct {
	store *flakyStore
}

func (c *storeConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *storeConn) Close() error { return nil }

func (c *storeConn) Begin() (driver.Tx, error) {
	return &storeTx{store: c.store}, nil
}

func (c *storeConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return &storeTx{store: c.store}, nil
}

func (c *storeConn) QueryContext(ctx context.Context, q string, args []driver.NamedValue) (driver.Rows, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	c.store.inserts++
	if c.store.inserts > c.store.failAfter {
		return nil, errors.New("connection reset by peer")
	}

	return &insertedRow{vals: []driver.Value{
		"6f1f3c52-9f0a-4a2e-8f37-0db121b5a9c1",
		args[0].Value, // case_id
		args[1].Value, // owner_name
		args[2].Value, // section
		args[3].Value, // ordinal
		args[4].Value, // question_text
		nil,
		time.Now(),
		nil,
	}}, nil
}

type storeTx struct {
	store *flakyStore
}

func (t *storeTx) Commit() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.committed = true
	return nil
}

func (t *storeTx) Rollback() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.rolledBack = true
	return nil
}

type insertedRow struct {
	vals []driver.Value
	done bool
}

func (r *insertedRow) Columns() []string {
	return []string{
		"id", "case_id", "owner_name", "section", "ordinal",
		"question_text", "answer_text", "created_at", "answered_at",
	}
}

func (r *insertedRow) Close() error { return nil }

func (r *insertedRow) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	copy(dest, r.vals)
	r.done = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateBatchRollsBackPartialInsert(t *testing.T) {
	store := &flakyStore{failAfter: 6}
	db := sql.OpenDB(storeConnector{store: store})
	defer db.Close()

	sys := followups.New(db, discardLogger())

	seeds := make([]followups.Seed, 10)
	for i := range seeds {
		seeds[i] = followups.Seed{Section: "A", Ordinal: i + 1, Text: fmt.Sprintf("Question %d?", i+1)}
	}

	_, err := sys.CreateBatch(context.Background(), "jane_doe_1", "Jane Doe", seeds)
	if err == nil {
		t.Fatal("expected the batch to fail on the seventh insert")
	}

	if store.committed {
		t.Error("a partial batch must never commit")
	}
	if !store.rolledBack {
		t.Error("expected the transaction to roll back")
	}
	if store.inserts != 7 {
		t.Errorf("insert attempts: got %d, want 7", store.inserts)
	}
}

func TestCreateBatchCommitsFullBatch(t *testing.T) {
	store := &flakyStore{failAfter: 10}
	db := sql.OpenDB(storeConnector{store: store})
	defer db.Close()

	sys := followups.New(db, discardLogger())

	seeds := make([]followups.Seed, 10)
	for i := range seeds {
		seeds[i] = followups.Seed{Section: "B", Ordinal: i + 1, Text: fmt.Sprintf("Question %d?", i+1)}
	}

	questions, err := sys.CreateBatch(context.Background(), "jane_doe_1", "Jane Doe", seeds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(questions) != 10 {
		t.Errorf("questions recorded: got %d, want 10", len(questions))
	}
	if !store.committed {
		t.Error("expected the transaction to commit")
	}
	if store.rolledBack {
		t.Error("a successful batch must not roll back")
	}
}
