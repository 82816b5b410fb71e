package sinchan

import "github.com/sirupsen/logrus"

type config struct {
	name   string
	logger logrus.FieldLogger
}

// Option configures a [Channel].
type Option func(*config)

func defaultConfig() config {
	return config{
		logger: logrus.StandardLogger(),
	}
}

// WithName labels the channel in log entries.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets where the channel reports debug events.
// A nil logger keeps the default, logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
