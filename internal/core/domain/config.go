package domain

const (
	// ConfigFileName is the project configuration file searched for from the working directory upwards.
	ConfigFileName = "exsd.yaml"
	// ConfigEnvVar names an explicit configuration file and disables discovery.
	ConfigEnvVar = "EXSD_CONFIG"
	// DefaultIndexPath is the index location relative to the project root.
	DefaultIndexPath = ".exsd/index.db"
	// DefaultCacheSize bounds the number of on-demand parsed definitions kept in memory.
	DefaultCacheSize = 512
)

// Config is the resolved project configuration. All paths are absolute.
type Config struct {
	Project string
	// Root is the directory of the configuration file, or the working directory when none was found.
	Root string
	// Source is the configuration file path; empty when defaults are in use.
	Source  string
	Modules []ModuleConfig
	// Targets are directories holding the bundles of the target platform.
	Targets          []string
	IndexPath        string
	CacheSize        int
	PrimeParallelism int
	LogLevel         string
}

// ModuleConfig declares a plugin module of the project.
type ModuleConfig struct {
	Name         string
	Root         string
	ContentRoots []string
}
