package config

const (
	BackupOnChar  = "●"
	BackupOffChar = "·"
	BackupTickMs  = 50
)

type ViewConfig struct {
	OnChar  string
	OffChar string
	TickMs  int
}

func (instance *ViewConfig) Default() {
	if instance.OnChar == "" {
		instance.OnChar = BackupOnChar
	}
	if instance.OffChar == "" {
		instance.OffChar = BackupOffChar
	}
	if instance.TickMs == 0 {
		instance.TickMs = BackupTickMs
	}
}
