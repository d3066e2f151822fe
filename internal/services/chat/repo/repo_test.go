package repo

import (
	"context"
	"testing"

	perr "careerassist/internal/platform/errors"
	"careerassist/internal/platform/store"
)

func openStore(t *testing.T) store.TxRunner {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(ctx, store.Config{SQLite: store.SQLiteConfig{Enabled: true}})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	db, d := s.SQL()
	if d != store.DialectSQLite {
		t.Fatalf("dialect = %q, want %q", d, store.DialectSQLite)
	}
	if err := Migrate(ctx, db, d); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// a second run finds the tables in place
	if err := Migrate(ctx, db, d); err != nil {
		t.Fatalf("Migrate again: %v", err)
	}
	return db
}

func TestReadMemory_NotFound(t *testing.T) {
	r := NewSQL().Bind(openStore(t))
	_, err := r.ReadMemory(context.Background(), "missing")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("ReadMemory(missing) err = %v, want not found", err)
	}
}

func TestWriteMemory_Upsert(t *testing.T) {
	ctx := context.Background()
	r := NewSQL().Bind(openStore(t))

	first := RowChat{ID: "c1", UserID: "u1", Title: "Job Search: nurse in Pune", Emoji: "💼", Context: "one", CreatedAt: 1000, UpdatedAt: 1000}
	if err := r.WriteMemory(ctx, first); err != nil {
		t.Fatalf("WriteMemory: %v", err)
	}
	second := RowChat{ID: "c1", UserID: "someone-else", Title: "Renamed", Emoji: "📚", Context: "two", CreatedAt: 9000, UpdatedAt: 2000}
	if err := r.WriteMemory(ctx, second); err != nil {
		t.Fatalf("WriteMemory again: %v", err)
	}

	got, err := r.ReadMemory(ctx, "c1")
	if err != nil {
		t.Fatalf("ReadMemory: %v", err)
	}
	want := RowChat{ID: "c1", UserID: "u1", Title: "Renamed", Emoji: "📚", Context: "two", CreatedAt: 1000, UpdatedAt: 2000}
	if got != want {
		t.Fatalf("ReadMemory(c1) = %+v, want %+v", got, want)
	}
}

func TestMessages_AppendAndRecent(t *testing.T) {
	ctx := context.Background()
	r := NewSQL().Bind(openStore(t))

	if err := r.WriteMemory(ctx, RowChat{ID: "c1", UserID: "u1", Title: "t", Emoji: "💬", CreatedAt: 1, UpdatedAt: 1}); err != nil {
		t.Fatalf("WriteMemory: %v", err)
	}
	if err := r.AppendMessages(ctx, "c1", nil); err != nil {
		t.Fatalf("AppendMessages(nil): %v", err)
	}
	if err := r.AppendMessages(ctx, "c1", []RowMessage{
		{ID: "m1", Role: "user", Content: "hello", CreatedAt: 10},
		{ID: "m2", Role: "assistant", Content: "hi there", CreatedAt: 11},
	}); err != nil {
		t.Fatalf("AppendMessages: %v", err)
	}
	if err := r.AppendMessages(ctx, "c1", []RowMessage{
		{ID: "m3", Role: "user", Content: "find jobs", CreatedAt: 20},
		{ID: "m4", Role: "assistant", Content: "/jobdata", CreatedAt: 21},
	}); err != nil {
		t.Fatalf("AppendMessages: %v", err)
	}

	got, err := r.RecentMessages(ctx, "c1", 3)
	if err != nil {
		t.Fatalf("RecentMessages: %v", err)
	}
	wantIDs := []string{"m2", "m3", "m4"}
	if len(got) != len(wantIDs) {
		t.Fatalf("RecentMessages(c1, 3) len = %d, want %d", len(got), len(wantIDs))
	}
	for i, m := range got {
		if m.ID != wantIDs[i] || m.Seq != int64(i+2) || m.ChatID != "c1" {
			t.Fatalf("RecentMessages[%d] = %+v, want id %s seq %d", i, m, wantIDs[i], i+2)
		}
	}

	if err := r.AppendMessages(ctx, "c1", []RowMessage{{ID: "m5", Role: "robot", Content: "x"}}); err == nil {
		t.Fatalf("AppendMessages(role robot) err = nil, want check violation")
	}
	if err := r.AppendMessages(ctx, "nope", []RowMessage{{ID: "m6", Role: "user", Content: "x"}}); err == nil {
		t.Fatalf("AppendMessages(unknown chat) err = nil, want foreign key violation")
	}
}

func TestListChats_NewestFirst(t *testing.T) {
	ctx := context.Background()
	r := NewSQL().Bind(openStore(t))

	rows := []RowChat{
		{ID: "a", UserID: "u1", Title: "A", Emoji: "💬", CreatedAt: 1, UpdatedAt: 5},
		{ID: "b", UserID: "u1", Title: "B", Emoji: "💬", CreatedAt: 2, UpdatedAt: 9},
		{ID: "c", UserID: "u2", Title: "C", Emoji: "💬", CreatedAt: 3, UpdatedAt: 7},
		{ID: "d", UserID: "u1", Title: "D", Emoji: "💬", CreatedAt: 4, UpdatedAt: 1},
	}
	for _, c := range rows {
		if err := r.WriteMemory(ctx, c); err != nil {
			t.Fatalf("WriteMemory(%s): %v", c.ID, err)
		}
	}

	got, err := r.ListChats(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("ListChats: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("ListChats(u1, 2) = %+v, want [b a]", got)
	}
	if got, _ := r.ListChats(ctx, "nobody", 10); len(got) != 0 {
		t.Fatalf("ListChats(nobody) = %+v, want empty", got)
	}
}
