package config

const (
	BackupScrollDelayMs = 150
	BackupBrightness    = 100
)

type DisplayConfig struct {
	ScrollDelayMs int
	Brightness    int
}

func (instance *DisplayConfig) Default() {
	if instance.ScrollDelayMs == 0 {
		instance.ScrollDelayMs = BackupScrollDelayMs
	}
	if instance.Brightness == 0 {
		instance.Brightness = BackupBrightness
	}
}
