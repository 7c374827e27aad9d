package progress

import (
	"path/filepath"
	"testing"
)

func TestSQLiteBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "somm.db")
	b, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close()

	if raw, err := b.Load(); err != nil || raw != nil {
		t.Fatalf("fresh db Load = (%v, %v), want (nil, nil)", raw, err)
	}

	want := []byte(`{"stats":{"totalSessions":1,"totalQuestions":7}}`)
	if err := b.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := b.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("load = %s, want %s", got, want)
	}

	// Overwrite under the same key.
	want2 := []byte(`{"stats":{"totalSessions":2,"totalQuestions":9}}`)
	if err := b.Save(want2); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, _ = b.Load()
	if string(got) != string(want2) {
		t.Fatalf("load after overwrite = %s", got)
	}

	if err := b.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if raw, _ := b.Load(); raw != nil {
		t.Fatal("snapshot survived Clear")
	}
}

func TestSQLiteBackend_ExportKeyIsSeparate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "somm.db")
	b, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close()

	if err := b.Save([]byte(`{"live":true}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := b.RecordExport([]byte(`{"export":true}`)); err != nil {
		t.Fatalf("record export: %v", err)
	}

	live, _ := b.Load()
	exp, _ := b.LastExport()
	if string(live) != `{"live":true}` || string(exp) != `{"export":true}` {
		t.Fatalf("keys collided: live=%s export=%s", live, exp)
	}

	// Clearing the snapshot must not touch the export record.
	if err := b.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	exp, _ = b.LastExport()
	if string(exp) != `{"export":true}` {
		t.Fatal("export record lost on Clear")
	}
}

func TestFileBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", SnapshotFileName)
	b := NewFileBackend(path)

	if raw, err := b.Load(); err != nil || raw != nil {
		t.Fatalf("missing file Load = (%v, %v), want (nil, nil)", raw, err)
	}

	want := []byte(`{"stats":{}}`)
	if err := b.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := b.Load()
	if err != nil || string(got) != string(want) {
		t.Fatalf("load = (%s, %v)", got, err)
	}

	if err := b.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if raw, _ := b.Load(); raw != nil {
		t.Fatal("file survived Clear")
	}
	// Clearing twice is fine.
	if err := b.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
