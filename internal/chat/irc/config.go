package irc

import "time"

// Config holds IRC connection configuration. The transport is disabled
// when Server is empty.
type Config struct {
	Server         string        `env:"IRC_SERVER"`
	Port           int           `env:"IRC_PORT"            envDefault:"6667"`
	Nick           string        `env:"IRC_NICK"            envDefault:"purposebot"`
	Channels       []string      `env:"IRC_CHANNELS"        envSeparator:","`
	TLS            bool          `env:"IRC_TLS"             envDefault:"false"`
	SASLUser       string        `env:"IRC_SASL_USER"`
	SASLPass       string        `env:"IRC_SASL_PASS"`
	ReconnectDelay time.Duration `env:"IRC_RECONNECT_DELAY" envDefault:"5s"`
}

// Enabled reports whether an IRC server is configured.
func (c *Config) Enabled() bool {
	return c != nil && c.Server != ""
}
