package fasthash

type Config struct {
	// Hasher produces the 64-bit digest of the encoded input bytes.
	// XXH3 when nil.
	Hasher Hasher
}

func DefaultConfig() *Config {
	var defaultConfig = &Config{
		Hasher: NewXXH3Hasher(),
	}
	return defaultConfig
}

func mergeConfig(c *Config) *Config {
	config := DefaultConfig()
	if c == nil {
		return config
	}
	if c.Hasher != nil {
		config.Hasher = c.Hasher
	}
	return config
}
