package configs

import "time"

// Sweep tunes the expiration sweep and the payment verification reminders.
type Sweep struct {
	// Workers bounds how many campaigns are evaluated in parallel.
	Workers int `env:"WORKERS" envDefault:"4"`
	// ReminderWindow is how far ahead of expiration owners are reminded.
	ReminderWindow time.Duration `env:"REMINDER_WINDOW" envDefault:"168h"`
}
