package notify

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/pawdopt/internal/settingsstore"
)

// Scheduler fires the daily adoption reminder at the configured time of day.
type Scheduler struct {
	settingsStore *settingsstore.SettingsStore
	picker        AnimalPicker
	sender        Sender

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	isSending  bool
	cancelFunc context.CancelFunc
}

// NewScheduler creates a new notification scheduler instance.
func NewScheduler(settingsStore *settingsstore.SettingsStore, picker AnimalPicker, sender Sender) *Scheduler {
	if sender == nil {
		sender = LogSender{}
	}
	return &Scheduler{
		settingsStore: settingsStore,
		picker:        picker,
		sender:        sender,
		cron:          cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if notifications are enabled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.settingsStore.NotificationEnabled() {
		log.Printf("Notification scheduler: disabled")
		return nil
	}

	hour, minute := s.settingsStore.NotificationTime()
	schedule := fmt.Sprintf("%d %d * * *", minute, hour)

	entryID, err := s.cron.AddFunc(schedule, func() {
		s.runNotify()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule notification job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Notification scheduler: started, daily at %02d:%02d", hour, minute)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Notification scheduler: stopped")
}

// Reschedule applies a changed notification time or enabled flag.
func (s *Scheduler) Reschedule() error {
	s.mu.Lock()
	wasRunning := s.isRunning
	s.mu.Unlock()

	if wasRunning {
		s.Stop()
		s.mu.Lock()
		s.cron.Remove(s.entryID)
		s.mu.Unlock()
	}

	return s.Start(context.Background())
}

// RunNow triggers an immediate notification.
func (s *Scheduler) RunNow() error {
	go s.runNotify()
	return nil
}

// IsRunning returns whether the scheduler is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next notification will fire.
func (s *Scheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	entries := s.cron.Entries()
	for _, entry := range entries {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// runNotify picks and delivers one reminder.
func (s *Scheduler) runNotify() {
	s.mu.Lock()
	if s.isSending {
		s.mu.Unlock()
		log.Printf("Notification: skipped (already sending)")
		return
	}
	s.isSending = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isSending = false
		s.mu.Unlock()
	}()

	if !s.settingsStore.NotificationEnabled() {
		log.Printf("Notification: skipped (disabled)")
		return
	}

	notification, err := PickRandom(s.picker)
	if err != nil {
		log.Printf("Notification: failed to pick animal: %v", err)
		return
	}

	if err := s.sender.Send(notification); err != nil {
		log.Printf("Notification: delivery failed: %v", err)
		return
	}

	log.Printf("Notification: delivered reminder for %s", notification.AnimalName)
}
