package config

import (
	"github.com/spf13/viper"
)

func LoadConfig() *Config {
	busConfig := BusConfig{
		PoolSize: viper.GetInt("bus.pool_size"),
	}

	viewConfig := ViewConfig{
		OnChar:  viper.GetString("view.on"),
		OffChar: viper.GetString("view.off"),
		TickMs:  viper.GetInt("view.tick_ms"),
	}

	clockConfig := ClockConfig{
		Address: viper.GetInt("clock.address"),
	}

	displayConfig := DisplayConfig{
		ScrollDelayMs: viper.GetInt("display.scroll_delay_ms"),
		Brightness:    viper.GetInt("display.brightness"),
	}

	busConfig.Default()
	viewConfig.Default()
	clockConfig.Default()
	displayConfig.Default()

	config := &Config{
		BusConfig:     busConfig,
		ViewConfig:    viewConfig,
		ClockConfig:   clockConfig,
		DisplayConfig: displayConfig,
	}

	return config
}
