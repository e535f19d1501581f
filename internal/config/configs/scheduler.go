package configs

import "time"

// Scheduler configures the periodic jobs. Specs use the standard five
// field cron syntax and are evaluated in Timezone.
type Scheduler struct {
	Enabled      bool          `env:"ENABLED" envDefault:"true"`
	SweepSpec    string        `env:"SWEEP_SPEC" envDefault:"0 3 * * *"`
	ReminderSpec string        `env:"REMINDER_SPEC" envDefault:"0 10 * * *"`
	Timezone     string        `env:"TIMEZONE" envDefault:"UTC"`
	JobTimeout   time.Duration `env:"JOB_TIMEOUT" envDefault:"30m"`
}

// Location resolves Timezone.
func (c Scheduler) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
