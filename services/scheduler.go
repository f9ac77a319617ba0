package services

import (
	"log"
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the nightly rollover at local midnight: archive the day's
// servings, reset the live collection, refresh the dashboard series, then
// fire the trainer without waiting on it. Every failure is logged and
// swallowed so one bad night never stops future runs.
type Scheduler struct {
	archive *ArchiveService
	stats   *StatsService
	trainer *TrainerService

	cron    *cron.Cron
	running atomic.Bool
}

func NewScheduler(archive *ArchiveService, stats *StatsService, trainer *TrainerService) *Scheduler {
	return &Scheduler{archive: archive, stats: stats, trainer: trainer, cron: cron.New()}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 * * *", s.RunOnce); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce executes one rollover. A run already in progress (a hung trainer
// spawn, a slow disk) makes the new trigger a no-op rather than a second
// concurrent rollover.
func (s *Scheduler) RunOnce() {
	if !s.running.CompareAndSwap(false, true) {
		log.Println("scheduler: previous rollover still running, skipping")
		return
	}
	defer s.running.Store(false)

	entry, err := s.archive.ArchiveToday()
	if err != nil {
		log.Printf("scheduler: archive failed: %v", err)
		return
	}
	log.Printf("scheduler: archived %d servings for %s", len(entry.Items), entry.Date)

	if err := s.archive.ResetToday(); err != nil {
		log.Printf("scheduler: reset failed: %v", err)
		return
	}
	if err := s.stats.RefreshMetrics(); err != nil {
		log.Printf("scheduler: metrics refresh failed: %v", err)
	}
	if err := s.trainer.Start(); err != nil {
		log.Printf("scheduler: trainer launch failed: %v", err)
	}
}
