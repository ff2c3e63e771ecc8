package sim

import (
	glueerror "MicroGlue/GlueError"
	"sync"
)

// I2CDevice is an emulated peripheral on the simulated board's i2c bus.
type I2CDevice interface {
	Write(data []byte) error
	Read(length int) ([]byte, error)
}

const ds1307Registers = 8

// DS1307 emulates the register file of the DS1307 real-time clock: a write
// sets the register pointer and optionally stores the following bytes, a read
// returns bytes from the pointer onward. Both wrap at the end of the file.
type DS1307 struct {
	mutex     sync.Mutex
	registers [ds1307Registers]byte
	pointer   int
}

func NewDS1307() *DS1307 {
	return &DS1307{}
}

func (instance *DS1307) Write(data []byte) error {
	if len(data) == 0 {
		return glueerror.Wrap(nil, glueerror.FailHalAccess, "empty i2c write")
	}
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	instance.pointer = int(data[0]) % ds1307Registers
	for _, value := range data[1:] {
		instance.registers[instance.pointer] = value
		instance.pointer = (instance.pointer + 1) % ds1307Registers
	}
	return nil
}

func (instance *DS1307) Read(length int) ([]byte, error) {
	instance.mutex.Lock()
	defer instance.mutex.Unlock()
	data := make([]byte, length)
	for index := range data {
		data[index] = instance.registers[instance.pointer]
		instance.pointer = (instance.pointer + 1) % ds1307Registers
	}
	return data, nil
}
