package services

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"time"
	"unicode/utf8"

	"backend/models"
	"backend/storage"
)

const (
	trainEpisodes    = 200
	stderrExcerptMax = 200
)

// TrainError carries a bounded excerpt of the trainer's stderr so the
// caller gets a usable diagnostic without an unbounded payload.
type TrainError struct {
	Excerpt string
	Err     error
}

func (e *TrainError) Error() string {
	if e.Excerpt != "" {
		return fmt.Sprintf("model training failed: %s", e.Excerpt)
	}
	return fmt.Sprintf("model training failed: %v", e.Err)
}

func (e *TrainError) Unwrap() error { return e.Err }

// TrainerService supervises the external predictive-model trainer. The
// trainer is a python process that reads dataformodel.json and rewrites
// the predicted/metrics documents as a side effect; the server only sees
// its exit code and stderr.
type TrainerService struct {
	store *storage.Store

	python string
	script string
	dir    string // working directory, the server root
}

func NewTrainerService(store *storage.Store) *TrainerService {
	python := os.Getenv("PYTHON_BIN")
	if python == "" {
		python = "python3"
	}
	script := os.Getenv("TRAIN_SCRIPT")
	if script == "" {
		script = "train_model.py"
	}
	return &TrainerService{store: store, python: python, script: script, dir: "."}
}

// Run executes one training pass and waits for it to finish. A non-zero
// exit or spawn failure comes back as *TrainError.
func (t *TrainerService) Run() error {
	cmd := exec.Command(t.python, t.script, fmt.Sprintf("--episodes=%d", trainEpisodes))
	cmd.Dir = t.dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &TrainError{Excerpt: excerpt(stderr.Bytes()), Err: err}
	}
	return nil
}

// Start launches a training pass without waiting. Used by the nightly job,
// which has no caller to report to; the spawn error alone is returned.
func (t *TrainerService) Start() error {
	cmd := exec.Command(t.python, t.script, fmt.Sprintf("--episodes=%d", trainEpisodes))
	cmd.Dir = t.dir
	if err := cmd.Start(); err != nil {
		return &TrainError{Err: err}
	}
	go func() { _ = cmd.Wait() }() // reap, outcome intentionally ignored
	return nil
}

// Recalibrate runs the trainer synchronously, then reloads the summary it
// produced, stamps lastCalibrated, and persists the stamped copy. On any
// training failure the stored summary is left untouched.
func (t *TrainerService) Recalibrate() (models.ModelSummary, error) {
	if err := t.Run(); err != nil {
		return nil, err
	}

	summary := storage.Read(t.store, storage.KeyPredicted, models.ModelSummary{})
	summary["lastCalibrated"] = time.Now().Format(time.RFC3339)
	if err := t.store.WriteMirrored(storage.KeyPredicted, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func excerpt(stderr []byte) string {
	s := string(bytes.TrimSpace(stderr))
	if len(s) <= stderrExcerptMax {
		return s
	}
	// Back up to a rune boundary so a multi-byte character in a python
	// traceback is never split in half.
	cut := stderrExcerptMax
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
