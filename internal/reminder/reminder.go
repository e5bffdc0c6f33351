package reminder

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/mlopes/wordflash/internal/config"
	"github.com/mlopes/wordflash/internal/logger"
	"github.com/mlopes/wordflash/internal/models"
	"github.com/mlopes/wordflash/internal/services"
)

// Notifier receives review reminders. The default implementation just logs;
// UI or messaging integrations plug in here.
type Notifier interface {
	Notify(dueCount int, stats models.StudyStats, dailyGoal int)
}

// LogNotifier writes reminders to the application log.
type LogNotifier struct{}

func (LogNotifier) Notify(dueCount int, stats models.StudyStats, dailyGoal int) {
	log := logger.Default().WithPrefix("reminder")
	if stats.TodayReviews >= dailyGoal {
		log.Info("%d words due; daily goal reached (%d/%d reviews)", dueCount, stats.TodayReviews, dailyGoal)
		return
	}
	log.Info("%d words due for review; %d/%d reviews toward today's goal, streak %d days",
		dueCount, stats.TodayReviews, dailyGoal, stats.CurrentStreak)
}

// Scheduler periodically checks for due words and emits reminders. A single
// periodic task runs in singleton mode, so checks never overlap.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   services.SchedulerService
	notifier  Notifier
	cfg       config.Config
	log       *logger.Logger
	now       func() time.Time
}

// New creates a reminder scheduler. A nil notifier falls back to LogNotifier.
func New(service services.SchedulerService, notifier Notifier, cfg config.Config) *Scheduler {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		service:   service,
		notifier:  notifier,
		cfg:       cfg,
		log:       logger.Default().WithPrefix("reminder"),
		now:       time.Now,
	}
}

// Start schedules the periodic due-word check and returns immediately.
// It is a no-op when reminders are disabled in the config.
func (s *Scheduler) Start() error {
	if !s.cfg.ReviewReminders {
		s.log.Info("review reminders disabled")
		return nil
	}

	interval := s.cfg.ReminderIntervalMins
	if interval <= 0 {
		interval = 60
	}

	_, err := s.scheduler.Every(interval).Minutes().SingletonMode().Do(s.checkDueWords)
	if err != nil {
		return err
	}

	s.log.Info("reminder check scheduled every %d minutes (%02d:00-%02d:00)",
		interval, s.cfg.NotificationStartHour, s.cfg.NotificationEndHour)
	s.scheduler.StartAsync()
	return nil
}

// Stop terminates the scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) checkDueWords() {
	hour := s.now().Hour()
	if hour < s.cfg.NotificationStartHour || hour > s.cfg.NotificationEndHour {
		s.log.Debug("hour %d outside notification window, skipping check", hour)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	due, err := s.service.GetDue(ctx, models.ReviewTypeAll, s.cfg.DueLimit)
	if err != nil {
		s.log.Error("due check failed: %v", err)
		return
	}
	if len(due) == 0 {
		s.log.Debug("no words due, no reminder sent")
		return
	}

	stats, err := s.service.GetStats(ctx)
	if err != nil {
		s.log.Error("stats check failed: %v", err)
		return
	}

	s.notifier.Notify(len(due), *stats, s.cfg.DailyGoal)
}
