package services

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"unicode/utf8"

	"backend/models"
	"backend/storage"
)

// fakeTrainer writes a shell script standing in for the python trainer.
func fakeTrainer(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script trainer stub requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "trainer.sh")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestTrainer(t *testing.T, store *storage.Store, scriptBody string) *TrainerService {
	tr := NewTrainerService(store)
	tr.python = fakeTrainer(t, scriptBody)
	tr.script = "train_model.py"
	tr.dir = t.TempDir()
	return tr
}

func TestRunSuccess(t *testing.T) {
	tr := newTestTrainer(t, newTestStore(t), "exit 0")
	if err := tr.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunFailureCarriesStderrExcerpt(t *testing.T) {
	tr := newTestTrainer(t, newTestStore(t), `echo "Traceback: model blew up" 1>&2; exit 3`)

	err := tr.Run()
	if err == nil {
		t.Fatal("Run returned nil for non-zero exit")
	}
	var te *TrainError
	if !errors.As(err, &te) {
		t.Fatalf("err = %T, want *TrainError", err)
	}
	if !strings.Contains(te.Excerpt, "model blew up") {
		t.Errorf("excerpt = %q, want stderr content", te.Excerpt)
	}
}

func TestRunFailureExcerptTruncated(t *testing.T) {
	long := strings.Repeat("x", 500)
	tr := newTestTrainer(t, newTestStore(t), `echo "`+long+`" 1>&2; exit 1`)

	err := tr.Run()
	var te *TrainError
	if !errors.As(err, &te) {
		t.Fatalf("err = %T, want *TrainError", err)
	}
	if len(te.Excerpt) > stderrExcerptMax {
		t.Errorf("excerpt length = %d, want <= %d", len(te.Excerpt), stderrExcerptMax)
	}
}

func TestExcerptTrimsOnRuneBoundary(t *testing.T) {
	// 199 ascii bytes then a two-byte rune straddling the 200-byte cut.
	ruined := strings.Repeat("x", stderrExcerptMax-1) + "é — модель"
	got := excerpt([]byte(ruined))
	if len(got) > stderrExcerptMax {
		t.Errorf("excerpt length = %d, want <= %d", len(got), stderrExcerptMax)
	}
	if !utf8.ValidString(got) {
		t.Errorf("excerpt is not valid UTF-8: %q", got)
	}
	if got != strings.Repeat("x", stderrExcerptMax-1) {
		t.Errorf("excerpt = %q, want the split rune dropped entirely", got)
	}
}

func TestRunSpawnFailure(t *testing.T) {
	store := newTestStore(t)
	tr := NewTrainerService(store)
	tr.python = filepath.Join(t.TempDir(), "does-not-exist")

	err := tr.Run()
	var te *TrainError
	if !errors.As(err, &te) {
		t.Fatalf("err = %T, want *TrainError for missing executable", err)
	}
}

func TestRecalibrateStampsSummary(t *testing.T) {
	store := newTestStore(t)
	seed := models.ModelSummary{"bestDish": "dal", "confidence": 0.9}
	if err := store.Write(storage.KeyPredicted, seed); err != nil {
		t.Fatal(err)
	}

	tr := newTestTrainer(t, store, "exit 0")
	summary, err := tr.Recalibrate()
	if err != nil {
		t.Fatalf("Recalibrate: %v", err)
	}
	if summary["bestDish"] != "dal" {
		t.Errorf("summary lost trainer fields: %+v", summary)
	}
	if _, ok := summary["lastCalibrated"].(string); !ok {
		t.Error("lastCalibrated not stamped")
	}

	// The stamp must be persisted, not just returned.
	stored := storage.Read(store, storage.KeyPredicted, models.ModelSummary{})
	if _, ok := stored["lastCalibrated"]; !ok {
		t.Error("lastCalibrated missing from stored summary")
	}
}

func TestRecalibrateFailureLeavesSummaryUntouched(t *testing.T) {
	store := newTestStore(t)
	seed := models.ModelSummary{"bestDish": "dal"}
	if err := store.Write(storage.KeyPredicted, seed); err != nil {
		t.Fatal(err)
	}

	tr := newTestTrainer(t, store, "exit 1")
	if _, err := tr.Recalibrate(); err == nil {
		t.Fatal("Recalibrate returned nil for failing trainer")
	}

	stored := storage.Read(store, storage.KeyPredicted, models.ModelSummary{})
	if _, ok := stored["lastCalibrated"]; ok {
		t.Error("failed run must not stamp lastCalibrated")
	}
}
