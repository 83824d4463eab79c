package settings

// Config is the configuration for the queue demo program.
type Config struct {
	Logger Logger `mapstructure:"logger" yaml:"logger"`
	Queue  Queue  `mapstructure:"queue" yaml:"queue"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Queue holds the sizes and seed values the demo scenarios run with.
type Queue struct {
	RingCapacity int      `mapstructure:"ring_capacity" yaml:"ring_capacity"`
	Numbers      []int    `mapstructure:"numbers" yaml:"numbers"`
	MoreNumbers  []int    `mapstructure:"more_numbers" yaml:"more_numbers"`
	Chars        string   `mapstructure:"chars" yaml:"chars"`
	Texts        []string `mapstructure:"texts" yaml:"texts"`
	Shapes       int      `mapstructure:"shapes" yaml:"shapes"`
}

// Default returns the configuration matching the stock demo run.
func Default() *Config {
	return &Config{
		Logger: Logger{
			LogLevel: "info",
		},
		Queue: Queue{
			RingCapacity: 5,
			Numbers:      []int{10, 20, 30},
			MoreNumbers:  []int{40, 50},
			Chars:        "ABC",
			Texts:        []string{"Hello", "World"},
			Shapes:       2,
		},
	}
}
