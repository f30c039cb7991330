package config

// Exsdfile represents the structure of the exsd.yaml configuration file.
type Exsdfile struct {
	Project string      `yaml:"project"`
	Modules []ModuleDTO `yaml:"modules"`
	Target  []string    `yaml:"target"`
	Index   IndexDTO    `yaml:"index"`
	Cache   CacheDTO    `yaml:"cache"`
	Prime   PrimeDTO    `yaml:"prime"`
	Log     LogDTO      `yaml:"log"`
}

// ModuleDTO represents a plugin module declaration.
type ModuleDTO struct {
	Name         string   `yaml:"name"`
	Root         string   `yaml:"root"`
	ContentRoots []string `yaml:"contentRoots"`
}

// IndexDTO configures the persisted definition index.
type IndexDTO struct {
	Path string `yaml:"path"`
}

// CacheDTO configures the in-memory definition cache.
type CacheDTO struct {
	Size *int `yaml:"size"`
}

// PrimeDTO configures background priming.
type PrimeDTO struct {
	Parallelism int `yaml:"parallelism"`
}

// LogDTO configures logging.
type LogDTO struct {
	Level string `yaml:"level"`
}
