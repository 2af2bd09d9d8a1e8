package config

// Config is the root application configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

// CatalogConfig points at catalog documents on disk. Empty paths select the
// catalog embedded in the binary.
type CatalogConfig struct {
	MemoriaPath string `yaml:"memoria_path" env:"CATALOG_MEMORIA_PATH"`
	OrderPath   string `yaml:"order_path"   env:"CATALOG_ORDER_PATH"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
}
