package sqlres

import (
	"context"
	"database/sql"
	"sort"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/stream"
)

type user struct {
	ID   int64
	Name string
	Age  int64
}

func scanUser(rows *sql.Rows) (user, error) {
	var u user
	err := rows.Scan(&u.ID, &u.Name, &u.Age)
	return u, err
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// each connection to :memory: is its own database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL, age INTEGER NOT NULL)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO users (id, name, age) VALUES (1, 'ada', 36), (2, 'grace', 45), (3, 'linus', 54)`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func TestQueryRow_PresentRow(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	r := QueryRow(context.Background(), db, scanUser, `SELECT id, name, age FROM users WHERE id = ?`, 2)

	u, err := r.Get()
	if err != nil {
		t.Fatalf("expected a present row, got: %v", err)
	}
	if u.Name != "grace" || u.Age != 45 {
		t.Fatalf("expected grace, got: %+v", u)
	}
}

func TestQueryRow_MissingRowIsAbsence(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	r := QueryRow(context.Background(), db, scanUser, `SELECT id, name, age FROM users WHERE id = ?`, 99)
	if r.Kind() != outcome.KindNil {
		t.Fatalf("expected a missing row to be absent, got: %v", r)
	}

	guest := r.Or(func() user { return user{Name: "guest"} })
	if guest.MustGet().Name != "guest" {
		t.Fatalf("expected the fallback user, got: %v", guest)
	}
}

func TestQueryRow_BadQueryFails(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	r := QueryRow(context.Background(), db, scanUser, `SELECT nope FROM missing_table`)
	if !r.IsErr() {
		t.Fatalf("expected a failed query, got: %v", r)
	}
}

func TestQueryRow_ScanErrorFails(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	r := QueryRow(context.Background(), db, scanUser, `SELECT id FROM users WHERE id = 1`)
	if !r.IsErr() {
		t.Fatalf("expected a scan mismatch to fail, got: %v", r)
	}
}

func TestQueryBuffered_CollectsAllRows(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	r := QueryBuffered(context.Background(), db, scanUser, `SELECT id, name, age FROM users ORDER BY id`)

	us, err := r.Get()
	if err != nil {
		t.Fatalf("expected the whole set, got: %v", err)
	}
	if len(us) != 3 || us[0].Name != "ada" || us[2].Name != "linus" {
		t.Fatalf("expected the seeded users in order, got: %+v", us)
	}
}

func TestQueryBuffered_EmptySetIsAbsence(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	r := QueryBuffered(context.Background(), db, scanUser, `SELECT id, name, age FROM users WHERE age > ?`, 100)
	if !r.IsNil() {
		t.Fatalf("expected an empty set to be absent, got: %v", r)
	}
}

func TestQuery_StreamsIntoPipeline(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	ctx := context.Background()

	rows := Query(ctx, db, scanUser, `SELECT id, name, age FROM users`)
	names := stream.Turnout(ctx, rows, stream.Map(func(_ context.Context, u user) string {
		return u.Name
	}))

	var got []string
	for _, r := range stream.Gather(ctx, names) {
		v, err := r.Get()
		if err != nil {
			t.Fatalf("expected every row converted, got: %v", err)
		}
		got = append(got, v)
	}

	sort.Strings(got)
	want := []string{"ada", "grace", "linus"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %s, got: %s", i, want[i], got[i])
		}
	}
}

func TestQuery_BadQueryArrivesAsOnlyItem(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	got := stream.Gather(context.Background(), Query(context.Background(), db, scanUser, `SELECT nope FROM missing_table`))
	if len(got) != 1 || !got[0].IsErr() {
		t.Fatalf("expected a single failed item, got: %v", got)
	}
}

func TestExec_ReportsRowsAffected(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	updated := Exec(context.Background(), db, `UPDATE users SET age = age + 1 WHERE name = ?`, "ada")
	if n, err := updated.Get(); err != nil || n != 1 {
		t.Fatalf("expected one row touched, got: %d (%v)", n, err)
	}

	missed := Exec(context.Background(), db, `DELETE FROM users WHERE age > ?`, 100)
	if n, err := missed.Get(); err != nil || n != 0 {
		t.Fatalf("expected a present zero count, got: %d (%v)", n, err)
	}

	if r := Exec(context.Background(), db, `DELETE FROM missing_table`); !r.IsErr() {
		t.Fatalf("expected a failed statement, got: %v", r)
	}
}

func TestQueryRow_UsableInsideTransaction(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	r := QueryRow(context.Background(), tx, scanUser, `SELECT id, name, age FROM users WHERE id = 1`)
	if u := r.MustGet(); u.Name != "ada" {
		t.Fatalf("expected ada inside the transaction, got: %+v", u)
	}
}
