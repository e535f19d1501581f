package configs

// Notify configures notification delivery. Driver selects the dispatcher:
// "log" writes notifications to the structured log, "telegram" relays them
// to TelegramChatID.
type Notify struct {
	Driver           string `env:"DRIVER" envDefault:"log"`
	BackofficeUserID int64  `env:"BACKOFFICE_USER_ID" envDefault:"0"`
	PaymentsEmail    string `env:"PAYMENTS_EMAIL" envDefault:"payments@localhost"`
	TelegramToken    string `env:"TELEGRAM_TOKEN"`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID"`
}
