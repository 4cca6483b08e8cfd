package main

import (
	"fmt"

	"github.com/akmonengine/orientation"
	"github.com/go-gl/mathgl/mgl64"
)

// DeviceOrientationEvent mirrors a browser deviceorientation reading, in degrees.
// A nil angle means the sensor did not report it.
type DeviceOrientationEvent struct {
	Alpha *float64
	Beta  *float64
	Gamma *float64
}

// OrientationDebugger prints the state of each sample
type OrientationDebugger interface {
	DebugSample(step int, event DeviceOrientationEvent, state *orientation.State)
}

type SimpleDebugger struct{}

func (d *SimpleDebugger) DebugSample(step int, event DeviceOrientationEvent, state *orientation.State) {
	q := state.GetQuaternion()
	m := state.GetRotationMatrix()
	yaw, pitch, roll := state.GetEulerDegrees()

	fmt.Printf("--- SAMPLE %d ---\n", step+1)
	fmt.Printf("  Event: alpha=%v beta=%v gamma=%v\n", show(event.Alpha), show(event.Beta), show(event.Gamma))
	fmt.Printf("  Quaternion (x, y, z, w): %.4f (|q|=%.6f)\n", q, state.Norm())
	fmt.Printf("  Scene quaternion: %.4f\n", orientation.DeviceToScene(q))
	fmt.Printf("  Euler readback: yaw=%.2f pitch=%.2f roll=%.2f\n", yaw, pitch, roll)
	fmt.Printf("  Rotation matrix (column-major):\n")
	for col := 0; col < 4; col++ {
		fmt.Printf("    %8.4f\n", m[col*4:col*4+4])
	}

	forward := state.Mat4().Mul4x1(mgl64.Vec4{1, 0, 0, 0}).Vec3()
	fmt.Printf("  World X maps to: %.4f\n", forward)
}

func show(angle *float64) string {
	if angle == nil {
		return "none"
	}
	return fmt.Sprintf("%.2f", *angle)
}

func orZero(angle *float64) float64 {
	if angle == nil {
		return 0
	}
	return *angle
}

func degrees(v float64) *float64 {
	return &v
}

// SetupSamples returns a short sweep of readings, as a handheld device would report them
func SetupSamples() []DeviceOrientationEvent {
	return []DeviceOrientationEvent{
		{Alpha: degrees(0), Beta: degrees(0), Gamma: degrees(0)},
		{Alpha: degrees(90), Beta: degrees(0), Gamma: degrees(0)},
		{Alpha: degrees(90), Beta: degrees(30), Gamma: degrees(0)},
		{Alpha: degrees(135), Beta: degrees(30), Gamma: degrees(-20)},
		{Alpha: nil, Beta: degrees(45), Gamma: degrees(10)},
		{Alpha: degrees(270), Beta: degrees(-60), Gamma: nil},
	}
}

func RunFeed() {
	fmt.Println("Device orientation feed")
	fmt.Println("=======================")

	debugger := &SimpleDebugger{}
	state := orientation.NewState()

	for step, event := range SetupSamples() {
		state.SetFromEulerDegrees(orZero(event.Alpha), orZero(event.Beta), orZero(event.Gamma))
		debugger.DebugSample(step, event, state)
		fmt.Println()
	}

	// A raw sensor quaternion is stored as is
	state.SetFromQuaternion(0, 0, 0.3826834, 0.9238795)
	fmt.Printf("Raw sensor quaternion: %.7f\n", state.GetQuaternion())

	fmt.Println("Feed done!")
}

func main() {
	RunFeed()
}
