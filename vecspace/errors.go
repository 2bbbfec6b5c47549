package vecspace

import "errors"

var (
	// ErrDegeneratePlane is raised (as a panic) by NewPlane when every
	// coefficient of the normal is zero: ax+by+cz=k names no plane then.
	ErrDegeneratePlane = errors.New("vecspace: plane coefficients a, b and c cannot all be zero")

	// ErrPlaneDimension is raised (as a panic) by PlaneThrough when the
	// normal or the point is not 3-dimensional.
	ErrPlaneDimension = errors.New("vecspace: plane normal and point must be 3-dimensional")
)
