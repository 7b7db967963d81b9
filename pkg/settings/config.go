package settings

type Config struct {
	Logger  Logger  `mapstructure:"logger"`
	Watcher Watcher `mapstructure:"watcher"`
	Runner  Runner  `mapstructure:"runner"`
	Sandbox Sandbox `mapstructure:"sandbox"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level"`
	Encoder     string `mapstructure:"encoder"` // json or console
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"` // Days
	MaxSize     int    `mapstructure:"max_size"` // Megabytes
	Compress    bool   `mapstructure:"compress"`
}

// Watcher is the configuration for the polling filesystem watcher
type Watcher struct {
	Interval         int `mapstructure:"interval"`          // Milliseconds
	QueueSize        int `mapstructure:"queue_size"`        // Pending events
	SubscriberBuffer int `mapstructure:"subscriber_buffer"` // Events per subscriber
}

// Runner is the configuration for external process execution
type Runner struct {
	Timeout     int `mapstructure:"timeout"`      // Seconds
	MaxParallel int `mapstructure:"max_parallel"` // Concurrent processes
}

// Sandbox is the configuration for the jailed filesystem view
type Sandbox struct {
	Root     string `mapstructure:"root"`
	ReadOnly bool   `mapstructure:"read_only"`
}
