package store_test

import (
	"path/filepath"
	"testing"

	"github.com/fitquest/fitquest-cli/internal/db"
	"github.com/fitquest/fitquest-cli/internal/store"
)

func newSQLiteStore(t *testing.T) *store.SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitquest.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return store.NewSQLite(sqldb)
}

func TestKVBehavior(t *testing.T) {
	t.Parallel()
	backends := map[string]store.KV{
		"sqlite": newSQLiteStore(t),
		"memory": store.NewMemory(),
	}
	for name, kv := range backends {
		kv := kv
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, ok, err := kv.Get("missing"); err != nil || ok {
				t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
			}

			if err := kv.Set("k", "v1"); err != nil {
				t.Fatalf("set: %v", err)
			}
			v, ok, err := kv.Get("k")
			if err != nil || !ok || v != "v1" {
				t.Fatalf("expected v1, got %q ok=%v err=%v", v, ok, err)
			}

			if err := kv.Set("k", "v2"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			v, _, _ = kv.Get("k")
			if v != "v2" {
				t.Fatalf("expected overwritten value v2, got %q", v)
			}

			if err := kv.Remove("k"); err != nil {
				t.Fatalf("remove: %v", err)
			}
			if _, ok, _ := kv.Get("k"); ok {
				t.Fatalf("expected key gone after remove")
			}
			// Removing an absent key is not an error.
			if err := kv.Remove("k"); err != nil {
				t.Fatalf("remove absent: %v", err)
			}
		})
	}
}

func TestJSONHelpers(t *testing.T) {
	t.Parallel()
	kv := store.NewMemory()

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var out doc
	ok, err := store.GetJSON(kv, "doc", &out)
	if err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := store.SetJSON(kv, "doc", doc{Name: "a", Count: 3}); err != nil {
		t.Fatalf("set json: %v", err)
	}
	ok, err = store.GetJSON(kv, "doc", &out)
	if err != nil || !ok {
		t.Fatalf("get json: ok=%v err=%v", ok, err)
	}
	if out.Name != "a" || out.Count != 3 {
		t.Fatalf("unexpected document %+v", out)
	}

	if err := kv.Set("doc", "{not json"); err != nil {
		t.Fatalf("set raw: %v", err)
	}
	if _, err := store.GetJSON(kv, "doc", &out); err == nil {
		t.Fatalf("expected decode error for corrupt document")
	}
}
