package notify

import (
	"log/slog"
	"sync"
	"time"

	"task-notes/models"
)

// ReminderSource supplies due reminders and records that they fired.
// Satisfied by services.ReminderService.
type ReminderSource interface {
	Due() ([]models.Reminder, error)
	MarkTriggered(id int64) error
}

// Notifier delivers a due reminder. Delivery itself lives outside this
// core; the default implementation only logs.
type Notifier interface {
	Notify(reminder models.Reminder) error
}

// LogNotifier writes due reminders to the structured log.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) Notify(reminder models.Reminder) error {
	n.Logger.Info("reminder due",
		"reminder_id", reminder.ID,
		"task_id", reminder.TaskID,
		"at", reminder.FormattedTime(),
	)
	return nil
}

// Worker periodically scans for due reminders, hands them to the
// Notifier, and marks them triggered on successful delivery.
type Worker struct {
	source   ReminderSource
	notifier Notifier
	logger   *slog.Logger
	interval time.Duration
	running  bool
	mu       sync.Mutex
	stopChan chan struct{}
}

// NewWorker creates a new reminder poll worker
func NewWorker(source ReminderSource, notifier Notifier, logger *slog.Logger, interval time.Duration) *Worker {
	return &Worker{
		source:   source,
		notifier: notifier,
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the background poll loop
func (w *Worker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info("starting reminder worker", "interval", w.interval)

	go w.run()
}

// Stop gracefully stops the poll loop
func (w *Worker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}

	w.logger.Info("stopping reminder worker")
	close(w.stopChan)
	w.running = false
}

func (w *Worker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Scan immediately on start
	w.PollOnce()

	for {
		select {
		case <-ticker.C:
			w.PollOnce()
		case <-w.stopChan:
			return
		}
	}
}

// PollOnce runs a single due-reminder scan and returns how many
// reminders fired. A reminder whose delivery fails stays untriggered
// and is retried on the next scan.
func (w *Worker) PollOnce() int {
	due, err := w.source.Due()
	if err != nil {
		w.logger.Error("due-reminder scan failed", "error", err)
		return 0
	}

	fired := 0
	for _, reminder := range due {
		if err := w.notifier.Notify(reminder); err != nil {
			w.logger.Warn("reminder delivery failed",
				"reminder_id", reminder.ID,
				"task_id", reminder.TaskID,
				"error", err,
			)
			continue
		}

		if err := w.source.MarkTriggered(reminder.ID); err != nil {
			w.logger.Error("failed to mark reminder triggered",
				"reminder_id", reminder.ID,
				"error", err,
			)
			continue
		}

		fired++
	}

	return fired
}
