package config

const (
	BackupClockAddress = 0x68
)

type ClockConfig struct {
	Address int
}

func (instance *ClockConfig) Default() {
	if instance.Address == 0 {
		instance.Address = BackupClockAddress
	}
}
