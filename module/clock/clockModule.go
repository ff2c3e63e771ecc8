package clock

import (
	glueerror "MicroGlue/GlueError"
	"MicroGlue/config"
	"MicroGlue/dto"
	"MicroGlue/hal"
	"MicroGlue/utils"

	"go.uber.org/zap"
)

func NewClockModule(board hal.Board, config config.ClockConfig, logger *zap.Logger) *ClockModule {
	return &ClockModule{board: board, config: config, logger: logger}
}

// ClockModule speaks the DS1307 register protocol over the board's i2c bus.
// Registers hold binary-coded decimal; register 3 is the day-of-week slot the
// glue layer leaves at zero.
type ClockModule struct {
	board  hal.Board
	config config.ClockConfig
	logger *zap.Logger
}

func (instance *ClockModule) address() hal.I2CAddress {
	return hal.I2CAddress(instance.config.Address)
}

func (instance *ClockModule) Adjust(d dto.DateTime) {
	payload := []byte{
		0,
		utils.Bin2Bcd(byte(d.Seconds)),
		utils.Bin2Bcd(byte(d.Minutes)),
		utils.Bin2Bcd(byte(d.Hours)),
		0,
		utils.Bin2Bcd(byte(d.Day)),
		utils.Bin2Bcd(byte(d.Month)),
		utils.Bin2Bcd(byte(d.Year - 2000)),
	}
	if err := instance.board.I2C().Write(instance.address(), payload); err != nil {
		instance.logger.Warn("", zap.Error(glueerror.Wrap(err, glueerror.FailClockAccess, "Fail Write Clock")))
	}
}

func (instance *ClockModule) Now() dto.DateTime {
	if err := instance.board.I2C().Write(instance.address(), []byte{0}); err != nil {
		instance.logger.Warn("", zap.Error(glueerror.Wrap(err, glueerror.FailClockAccess, "Fail Select Clock Register")))
		return dto.DateTime{}
	}
	data, err := instance.board.I2C().Read(instance.address(), 7)
	if err != nil || len(data) < 7 {
		instance.logger.Warn("", zap.Error(glueerror.Wrap(err, glueerror.FailClockAccess, "Fail Read Clock")))
		return dto.DateTime{}
	}
	return dto.DateTime{
		// Bit 7 of the seconds register is the oscillator-halt flag.
		Seconds: int(utils.Bcd2Bin(data[0] & 0x7F)),
		Minutes: int(utils.Bcd2Bin(data[1])),
		Hours:   int(utils.Bcd2Bin(data[2])),
		Day:     int(utils.Bcd2Bin(data[4])),
		Month:   int(utils.Bcd2Bin(data[5])),
		Year:    int(utils.Bcd2Bin(data[6])) + 2000,
	}
}
