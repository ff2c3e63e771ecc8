package config

const (
	BackupPoolSize = 10000
)

type BusConfig struct {
	PoolSize int
}

func (instance *BusConfig) Default() {
	if instance.PoolSize == 0 {
		instance.PoolSize = BackupPoolSize
	}
}
