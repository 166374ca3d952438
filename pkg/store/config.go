package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath      = "~/.itemlist.db"
	defaultKey       = "items"
	defaultCacheSize = 1024 * 1024 // 1MB
)

// Config locates the persistence slot.
type Config interface {
	BasePath() string
	Key() string
	CacheSizeMax() uint64
}

// LoadConfig reads .itemlist.yaml from $ITEMLIST_CONFIG_PATH or the working
// directory, with ITEMLIST_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("key", defaultKey)
	v.SetDefault("cache", defaultCacheSize)
	v.SetConfigName(".itemlist") // .yaml is implicit
	v.SetEnvPrefix("ITEMLIST")
	v.AutomaticEnv()

	if override := os.Getenv("ITEMLIST_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:  path,
		Slot:  v.GetString("key"),
		Cache: v.GetUint64("cache"),
	}, nil
}

// NewConfig builds a Config without consulting viper.
func NewConfig(path, key string) Config {
	if key == "" {
		key = defaultKey
	}
	return &fileConfig{Path: path, Slot: key, Cache: defaultCacheSize}
}

// Uncached returns a copy of cfg with the read cache disabled, for readers that
// must observe writes made by other processes.
func Uncached(cfg Config) Config {
	return &fileConfig{Path: cfg.BasePath(), Slot: cfg.Key()}
}

type fileConfig struct {
	Path  string `json:"path"`
	Slot  string `json:"key"`
	Cache uint64 `json:"cache"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Key() string {
	if f.Slot == "" {
		return defaultKey
	}
	return f.Slot
}

func (f *fileConfig) CacheSizeMax() uint64 {
	return f.Cache
}
