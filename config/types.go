package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0,lte=65535"`
}

// SourceConfig describes where raw rates and gantries are fetched from.
// Each location is an http(s) URL or a local file path.
type SourceConfig struct {
	RatesURL    string `yaml:"ratesURL"`
	GantriesURL string `yaml:"gantriesURL"`
	AccountKey  string `yaml:"accountKey"`
	TimeoutMS   int    `yaml:"timeoutMS" validate:"gte=0"`
}

// OutputConfig contains the paths of the persisted intermediate files
type OutputConfig struct {
	GroupedRatesPath string `yaml:"groupedRatesPath"`
	SplitsPath       string `yaml:"splitsPath"`
	StatusPath       string `yaml:"statusPath"`
	FeaturesPath     string `yaml:"featuresPath"`
}

// DisplayConfig controls rate list windowing
type DisplayConfig struct {
	ViewType string `yaml:"viewType" validate:"omitempty,oneof=all minimal"`
	Timezone string `yaml:"timezone" validate:"omitempty,timezone"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Source  SourceConfig  `yaml:"source"`
	Output  OutputConfig  `yaml:"output"`
	Display DisplayConfig `yaml:"display"`
}
