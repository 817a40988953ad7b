package mmrstore

// Config is the configuration for the MMR state store
type Config struct {
	// DBPath is the path of the sqlite db on which the store persists the
	// MMR batches and the global state
	DBPath string `mapstructure:"DBPath"`
}
