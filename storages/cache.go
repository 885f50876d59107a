package storages

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/reusee/e5"
	"github.com/reusee/intcode/intvm"
	_ "modernc.org/sqlite"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Cache stores the outputs of complete runs. A run is a pure function of
// its program and inputs, so those two are the key.
type Cache struct {
	db *sql.DB
}

const schema = `
create table if not exists runs (
	key blob primary key,
	outputs blob not null,
	steps integer not null,
	hits integer not null default 0
)
`

// Open opens or creates the cache database at path. ":memory:" gives a
// private in-memory cache.
func Open(ctx context.Context, path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrap(err)
	}
	// in-memory databases are per connection
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, "pragma busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, wrap(err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, wrap(err)
	}
	return &Cache{
		db: db,
	}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

type runKey struct {
	Program []int64 `cbor:"1,keyasint"`
	Inputs  []int64 `cbor:"2,keyasint"`
}

// Key returns the SHA-256 of the canonical CBOR encoding of program and
// inputs.
func Key(program intvm.Program, inputs []int64) ([]byte, error) {
	bs, err := encMode.Marshal(runKey{
		Program: program,
		Inputs:  inputs,
	})
	if err != nil {
		return nil, wrap(err)
	}
	sum := sha256.Sum256(bs)
	return sum[:], nil
}

// Result is one cached run.
type Result struct {
	Outputs []int64
	Steps   int64
}

func (c *Cache) Get(ctx context.Context, program intvm.Program, inputs []int64) (result Result, ok bool, err error) {
	key, err := Key(program, inputs)
	if err != nil {
		return
	}
	err = withTx(ctx, c.db, func(tx Tx) error {
		row, err := tx.QueryRow(ctx, `select outputs, steps from runs where key = ?`, key)
		if err != nil {
			return err
		}
		var blob []byte
		if err := row.Scan(&blob, &result.Steps); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}
		if err := cbor.Unmarshal(blob, &result.Outputs); err != nil {
			return fmt.Errorf("decode outputs: %w", err)
		}
		ok = true
		_, err = tx.Exec(ctx, `update runs set hits = hits + 1 where key = ?`, key)
		return err
	})
	if err != nil {
		return Result{}, false, wrap(err)
	}
	return
}

func (c *Cache) Put(ctx context.Context, program intvm.Program, inputs []int64, result Result) error {
	key, err := Key(program, inputs)
	if err != nil {
		return err
	}
	blob, err := encMode.Marshal(result.Outputs)
	if err != nil {
		return wrap(err)
	}
	err = withTx(ctx, c.db, func(tx Tx) error {
		_, err := tx.Exec(ctx, `
			insert into runs (key, outputs, steps) values (?, ?, ?)
			on conflict (key) do update set outputs = excluded.outputs, steps = excluded.steps
		`, key, blob, result.Steps)
		return err
	})
	if err != nil {
		return wrap(err)
	}
	return nil
}

// Hits returns how many times the run was served from the cache.
func (c *Cache) Hits(ctx context.Context, program intvm.Program, inputs []int64) (int64, error) {
	key, err := Key(program, inputs)
	if err != nil {
		return 0, err
	}
	var hits int64
	err = c.db.QueryRowContext(ctx, `select hits from runs where key = ?`, key).Scan(&hits)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	} else if err != nil {
		return 0, wrap(err)
	}
	return hits, nil
}

// Exec returns the outputs of running program with inputs, from the cache
// when possible. Runs that fault or block on input are not cached.
func (c *Cache) Exec(ctx context.Context, program intvm.Program, inputs []int64) (Result, error) {
	result, ok, err := c.Get(ctx, program, inputs)
	if err != nil {
		return Result{}, err
	}
	if ok {
		return result, nil
	}
	vm := intvm.New(program)
	if err := vm.Exec(intvm.Inputs(inputs...)); err != nil {
		return Result{}, err
	}
	result = Result{
		Outputs: vm.Outputs(),
		Steps:   vm.Steps(),
	}
	if err := c.Put(ctx, program, inputs, result); err != nil {
		return Result{}, err
	}
	return result, nil
}
