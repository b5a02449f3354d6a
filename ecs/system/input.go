package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shapehopper/ecs"
	"github.com/milk9111/shapehopper/ecs/component"
)

// InputSource samples devices into a component.Input. Tests swap in a
// scripted source.
type InputSource interface {
	Sample() component.Input
}

// DeviceInput reads the keyboard and the first standard gamepad.
type DeviceInput struct{}

func (DeviceInput) Sample() component.Input {
	const stickDeadzone = 0.2

	in := component.Input{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Run:      ebiten.IsKeyPressed(ebiten.KeyShift),
		TurnCW:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		TurnCCW:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		JumpHeld: ebiten.IsKeyPressed(ebiten.KeySpace),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			in.Turn = leftX
		}
		leftY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if leftY < -stickDeadzone {
			in.Forward = true
		} else if leftY > stickDeadzone {
			in.Backward = true
		}

		in.JumpHeld = in.JumpHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Run = in.Run || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}

	return in
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = DeviceInput{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	in := i.source.Sample()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = in
	})
}
