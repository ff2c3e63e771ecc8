package config

type Config struct {
	BusConfig     BusConfig
	ViewConfig    ViewConfig
	ClockConfig   ClockConfig
	DisplayConfig DisplayConfig
}
