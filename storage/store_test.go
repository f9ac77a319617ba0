package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"backend/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data"), filepath.Join(t.TempDir(), "public"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestReadWriteRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := []models.ServingRecord{
		{ID: "a1", Date: "2024-01-01", Name: "dal", TotalPlates: 10, TotalEarning: 50},
		{ID: "a2", Date: "2024-01-01", Name: "rice", TotalPlates: 5, TotalEarning: 25.5},
	}
	if err := s.Write(KeyTodaysServing, in); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out := Read(s, KeyTodaysServing, []models.ServingRecord{})
	if len(out) != 2 {
		t.Fatalf("got %d records, want 2", len(out))
	}
	if out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestReadMissingFileSeedsFallback(t *testing.T) {
	s := newTestStore(t)

	fallback := []models.Event{{ID: "e1", Title: "drive", Date: "2030-01-01"}}
	out := Read(s, KeyEvents, fallback)
	if len(out) != 1 || out[0].ID != "e1" {
		t.Fatalf("got %+v, want fallback", out)
	}

	// The fallback must have been written through.
	raw, err := os.ReadFile(filepath.Join(s.DataDir, KeyEvents))
	if err != nil {
		t.Fatalf("fallback file not seeded: %v", err)
	}
	var onDisk []models.Event
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		t.Fatalf("seeded file unparsable: %v", err)
	}
	if len(onDisk) != 1 || onDisk[0].ID != "e1" {
		t.Errorf("seeded file = %+v, want fallback", onDisk)
	}
}

func TestReadCorruptFileFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated json", `[{"id": "a1", "da`},
		{"null literal", "null"},
		{"empty file", ""},
		{"quoted empty", `""`},
		{"wrong shape", `{"not": "a list"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			path := filepath.Join(s.DataDir, KeyFoodItems)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			out := Read(s, KeyFoodItems, []models.FoodItem{})
			if len(out) != 0 {
				t.Errorf("got %+v, want empty fallback", out)
			}

			// Corrupt content must have been destructively replaced.
			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			var repaired []models.FoodItem
			if err := json.Unmarshal(raw, &repaired); err != nil {
				t.Errorf("file still unparsable after repair: %v", err)
			}
		})
	}
}

func TestWriteNeverLeavesTornFile(t *testing.T) {
	s := newTestStore(t)

	// A large document makes a non-atomic write easy to catch mid-flight.
	big := make([]models.ServingRecord, 5000)
	for i := range big {
		big[i] = models.ServingRecord{ID: "x", Name: strings.Repeat("p", 50), TotalPlates: 1}
	}
	if err := s.Write(KeyTodaysServing, big); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			big[0].TotalPlates = float64(i)
			if err := s.Write(KeyTodaysServing, big); err != nil {
				t.Errorf("Write: %v", err)
				return
			}
		}
	}()

	// Every observed state of the file must parse to a complete document.
	path := filepath.Join(s.DataDir, KeyTodaysServing)
	for i := 0; i < 200; i++ {
		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		var got []models.ServingRecord
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("observed torn write after %d reads: %v", i, err)
		}
		if len(got) != len(big) {
			t.Fatalf("observed partial document: %d of %d records", len(got), len(big))
		}
	}
	close(stop)
	wg.Wait()
}

func TestConcurrentWritersLastWriteWinsWhole(t *testing.T) {
	s := newTestStore(t)

	payloadA := []models.Feedback{{ID: "a", Message: strings.Repeat("a", 2000)}}
	payloadB := []models.Feedback{{ID: "b", Message: strings.Repeat("b", 2000)}}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); _ = s.WriteMirrored(KeyFeedback, payloadA) }()
		go func() { defer wg.Done(); _ = s.WriteMirrored(KeyFeedback, payloadB) }()
	}
	wg.Wait()

	got := Read(s, KeyFeedback, []models.Feedback{})
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	switch got[0].ID {
	case "a":
		if got[0].Message != payloadA[0].Message {
			t.Error("payload A persisted partially")
		}
	case "b":
		if got[0].Message != payloadB[0].Message {
			t.Error("payload B persisted partially")
		}
	default:
		t.Errorf("unexpected id %q", got[0].ID)
	}
}

func TestWriteMirroredCopiesToPublic(t *testing.T) {
	s := newTestStore(t)

	events := []models.Event{{ID: "e1", Title: "drive", Date: "2030-05-01"}}
	if err := s.WriteMirrored(KeyEvents, events); err != nil {
		t.Fatalf("WriteMirrored: %v", err)
	}

	primary, err := os.ReadFile(filepath.Join(s.DataDir, KeyEvents))
	if err != nil {
		t.Fatalf("primary missing: %v", err)
	}
	mirror, err := os.ReadFile(filepath.Join(s.PublicDir, KeyEvents))
	if err != nil {
		t.Fatalf("mirror missing: %v", err)
	}
	if string(primary) != string(mirror) {
		t.Error("mirror content diverges from primary")
	}
}

func TestWriteMirroredSkipsExemptKey(t *testing.T) {
	s := newTestStore(t)

	if err := s.WriteMirrored(KeyModelData, []models.ArchiveEntry{}); err != nil {
		t.Fatalf("WriteMirrored: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.DataDir, KeyModelData)); err != nil {
		t.Errorf("primary missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.PublicDir, KeyModelData)); !os.IsNotExist(err) {
		t.Errorf("mirror-exempt key leaked into public tree (err=%v)", err)
	}
}

func TestNoTempFilesLeftBehind(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 20; i++ {
		if err := s.WriteMirrored(KeyCart, []models.CartItem{{ID: "c1"}}); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := os.ReadDir(s.DataDir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}
