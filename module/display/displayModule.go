package display

import (
	glueerror "MicroGlue/GlueError"
	"MicroGlue/config"
	"MicroGlue/hal"
	"strconv"
	"time"

	"go.uber.org/zap"
)

func NewDisplayModule(board hal.Board, config config.DisplayConfig, logger *zap.Logger) *DisplayModule {
	module := &DisplayModule{board: board, config: config, logger: logger}
	module.warn(board.Display().SetBrightness(config.Brightness))
	return module
}

// DisplayModule is the screen surface exposed to generated code. Every
// operation is a forwarding call into the display driver; driver failures are
// logged and swallowed, matching the fire-and-forget contract of the device's
// display API.
type DisplayModule struct {
	board  hal.Board
	config config.DisplayConfig
	logger *zap.Logger
}

func (instance *DisplayModule) warn(err error) {
	if err != nil {
		instance.logger.Warn("", zap.Error(err))
	}
}

func (instance *DisplayModule) Plot(x int, y int) {
	instance.warn(instance.board.Display().SetPixel(x, y, 1))
}

func (instance *DisplayModule) Unplot(x int, y int) {
	instance.warn(instance.board.Display().SetPixel(x, y, 0))
}

func (instance *DisplayModule) Point(x int, y int) bool {
	value, err := instance.board.Display().Pixel(x, y)
	instance.warn(err)
	return err == nil && value != 0
}

// SetBrightness takes a percentage. An out-of-range argument is a contract
// violation, not a driver failure.
func (instance *DisplayModule) SetBrightness(percentage int) {
	if percentage < 0 || percentage > 100 {
		glueerror.Fatal(glueerror.BadUsage, "brightness percentage out of range")
		return
	}
	instance.warn(instance.board.Display().SetBrightness(percentage))
}

func (instance *DisplayModule) GetBrightness() int {
	return instance.board.Display().Brightness()
}

func (instance *DisplayModule) ClearScreen() {
	instance.board.Display().Clear()
}

func (instance *DisplayModule) ShowDigit(n int) {
	instance.warn(instance.board.Display().Scroll(strconv.Itoa(n), 0))
}

func (instance *DisplayModule) ShowLetter(s string) {
	if s == "" {
		glueerror.Fatal(glueerror.BadUsage, "ShowLetter with empty string")
		return
	}
	instance.warn(instance.board.Display().Scroll(s[:1], 0))
}

func (instance *DisplayModule) ScrollString(s string, delayMs int) {
	if delayMs <= 0 {
		delayMs = instance.config.ScrollDelayMs
	}
	instance.warn(instance.board.Display().Scroll(s, delayMs))
}

func (instance *DisplayModule) ScrollNumber(n int, delayMs int) {
	instance.ScrollString(strconv.Itoa(n), delayMs)
}

// PlotImage pushes the 5x5 window of the image starting at column offset.
func (instance *DisplayModule) PlotImage(image Image, offset int) {
	frame := make(hal.Frame, hal.DisplayHeight)
	for y := range frame {
		frame[y] = make([]int, hal.DisplayWidth)
		for x := range frame[y] {
			frame[y][x] = image.Pixel(x+offset, y)
		}
	}
	instance.warn(instance.board.Display().Show(frame))
}

func (instance *DisplayModule) ShowImage(image Image, offset int) {
	instance.PlotImage(image, offset)
}

func (instance *DisplayModule) ScrollImage(image Image, offset int, delayMs int) {
	if offset <= 0 {
		offset = 1
	}
	for start := 0; start <= image.Width(); start += offset {
		instance.PlotImage(image, start)
		time.Sleep(time.Duration(delayMs) * time.Millisecond)
	}
}

func (instance *DisplayModule) ShowLeds(width int, height int, bitmap []int, delayMs int) {
	instance.PlotImage(NewImage(width, height, bitmap), 0)
	time.Sleep(time.Duration(delayMs) * time.Millisecond)
}

// ShowAnimation steps through a film strip of display-wide frames.
func (instance *DisplayModule) ShowAnimation(width int, height int, bitmap []int, delayMs int) {
	image := NewImage(width, height, bitmap)
	for start := 0; start < width; start += hal.DisplayWidth {
		instance.PlotImage(image, start)
		time.Sleep(time.Duration(delayMs) * time.Millisecond)
	}
}
