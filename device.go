package orientation

// DeviceToScene remaps a device-frame quaternion (x, y, z, w) into the scene camera frame
// by swapping the X and Y axes: x' = -y, y' = x. Z and W are unchanged.
func DeviceToScene(q [4]float64) [4]float64 {
	return [4]float64{-q[1], q[0], q[2], q[3]}
}
