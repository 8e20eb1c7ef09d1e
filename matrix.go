package bounding

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Clip-transform constructors.
//
// The frustum builder reads its matrix in row-vector convention: a point
// transforms as [x y z 1]·M, right-handed with the camera looking down -Z,
// and clip depth mapped to [0, 1]. These constructors produce matrices in
// that convention; combine them as view.Mul4(projection).

// PerspectiveFOV builds a perspective projection from a vertical field of
// view (radians), aspect ratio (width/height) and near/far distances.
// Requires 0 < fovY < π, 0 < near < far.
func PerspectiveFOV(fovY, aspect, near, far float64) mgl64.Mat4 {
	yScale := 1 / math.Tan(fovY/2)
	xScale := yScale / aspect

	return mgl64.Mat4FromRows(
		mgl64.Vec4{xScale, 0, 0, 0},
		mgl64.Vec4{0, yScale, 0, 0},
		mgl64.Vec4{0, 0, far / (near - far), -1},
		mgl64.Vec4{0, 0, near * far / (near - far), 0},
	)
}

// LookAt builds a view transform for a camera at eye looking toward target.
// up must not be parallel to the view direction.
func LookAt(eye, target, up mgl64.Vec3) mgl64.Mat4 {
	zAxis := eye.Sub(target).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	return mgl64.Mat4FromRows(
		mgl64.Vec4{xAxis.X(), yAxis.X(), zAxis.X(), 0},
		mgl64.Vec4{xAxis.Y(), yAxis.Y(), zAxis.Y(), 0},
		mgl64.Vec4{xAxis.Z(), yAxis.Z(), zAxis.Z(), 0},
		mgl64.Vec4{-xAxis.Dot(eye), -yAxis.Dot(eye), -zAxis.Dot(eye), 1},
	)
}
