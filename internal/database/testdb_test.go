package database

import "testing"

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	// Именованная in-memory база с общим кэшем: пул database/sql может
	// открыть несколько соединений, всем нужна одна и та же база
	db, err := NewDatabase("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}
