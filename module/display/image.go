package display

import (
	"strconv"
	"strings"
)

// Image is a mutable off-screen bitmap. Rows are fixed at creation; pixel
// reads outside the bitmap return 0 and writes outside it are dropped.
type Image struct {
	width  int
	height int
	pixels []int
}

func NewImage(width int, height int, bitmap []int) Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	pixels := make([]int, width*height)
	copy(pixels, bitmap)
	return Image{width: width, height: height, pixels: pixels}
}

// NewImageFromString parses the comma-and-newline bitmap notation the code
// generator emits, e.g. "0,1,0\n1,0,1". Rows shorter than the widest row are
// zero-padded.
func NewImageFromString(s string) Image {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	rows := make([][]int, 0, len(lines))
	width := 0
	for _, line := range lines {
		cells := strings.Split(line, ",")
		row := make([]int, 0, len(cells))
		for _, cell := range cells {
			value, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				value = 0
			}
			row = append(row, value)
		}
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}

	image := NewImage(width, len(rows), nil)
	for y, row := range rows {
		for x, value := range row {
			image.SetPixel(x, y, value)
		}
	}
	return image
}

func (instance Image) Width() int {
	return instance.width
}

func (instance Image) Height() int {
	return instance.height
}

func (instance Image) Pixel(x int, y int) int {
	if x < 0 || x >= instance.width || y < 0 || y >= instance.height {
		return 0
	}
	return instance.pixels[y*instance.width+x]
}

func (instance Image) SetPixel(x int, y int, value int) {
	if x < 0 || x >= instance.width || y < 0 || y >= instance.height {
		return
	}
	instance.pixels[y*instance.width+x] = value
}

func (instance Image) Clear() {
	for index := range instance.pixels {
		instance.pixels[index] = 0
	}
}
