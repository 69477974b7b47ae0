// Package scenarios contains the built-in driving loops.
package scenarios

import (
	"time"

	"github.com/zhubert/wowint/internal/demo"
	"github.com/zhubert/wowint/internal/gamepad"
)

// Arrow press codes (LeftArrow, UpArrow, RightArrow, DownArrow).
var arrowCodes = []int32{1037, 1038, 1039, 1040}

// Hello sends the fixed code 42 once to check the receiver is listening.
var Hello = &demo.Scenario{
	Name:        "hello",
	Description: "Send the fixed code 42 once",
	Steps: []demo.Step{
		demo.Send(42).WithDesc("fixed integer"),
	},
}

// Letters taps a random key between Digit0 and Z, then a random arrow.
var Letters = &demo.Scenario{
	Name:        "letters",
	Description: "Random digit/letter tap followed by a random arrow tap",
	Steps: []demo.Step{
		demo.RandomTap(1048, 1090).WithDesc("digit or letter"),
		demo.RandomTapFrom(arrowCodes...).WithDesc("arrow"),
	},
}

// Arrows taps random arrow keys.
var Arrows = &demo.Scenario{
	Name:        "arrows",
	Description: "Random arrow key taps",
	Steps: []demo.Step{
		demo.RandomTapFrom(arrowCodes...),
	},
}

// Gamepad presses the face buttons, walks both sticks around, then releases everything.
var Gamepad = &demo.Scenario{
	Name:        "gamepad",
	Description: "Face buttons, stick sweep, release all",
	Steps: []demo.Step{
		demo.Annotate("face buttons"),
		demo.Pad(gamepad.PressA), demo.Pad(gamepad.ReleaseA),
		demo.Pad(gamepad.PressB), demo.Pad(gamepad.ReleaseB),
		demo.Pad(gamepad.PressX), demo.Pad(gamepad.ReleaseX),
		demo.Pad(gamepad.PressY), demo.Pad(gamepad.ReleaseY),
		demo.Annotate("left stick sweep"),
		demo.Pad(gamepad.LeftStickUp), demo.Pad(gamepad.LeftStickRight),
		demo.Pad(gamepad.LeftStickDown), demo.Pad(gamepad.LeftStickLeft),
		demo.Pad(gamepad.LeftStickNeutral),
		demo.Annotate("right stick sweep"),
		demo.Pad(gamepad.RightStickUp), demo.Pad(gamepad.RightStickRight),
		demo.Pad(gamepad.RightStickDown), demo.Pad(gamepad.RightStickLeft),
		demo.Pad(gamepad.RightStickNeutral),
		demo.Wait(500 * time.Millisecond),
		demo.Pad(gamepad.ReleaseAll),
	},
}

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{Hello, Letters, Arrows, Gamepad}
}

// Get returns a copy of the scenario with the given name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			c := *s
			c.Steps = append([]demo.Step(nil), s.Steps...)
			return &c
		}
	}
	return nil
}
