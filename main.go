package main

import (
	app "MicroGlue/App"
	"MicroGlue/constants"
	"fmt"
)

func main() {
	app, err := app.NewApp()
	if err != nil {
		fmt.Printf("%s\n", err.Error())
		return
	}
	app.Input().OnButtonPressed(constants.ComponentButtonA, func() {
		app.Display().ShowLetter("A")
	})
	app.Input().OnButtonPressed(constants.ComponentButtonB, func() {
		app.Display().ShowLetter("B")
	})
	app.Input().OnButtonPressed(constants.ComponentButtonAB, func() {
		app.Display().ScrollString("hello", 0)
	})
	app.Run()
}
