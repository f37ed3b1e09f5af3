package vec

import (
	"github.com/chewxy/math32"

	coremath "github.com/mcx/dcservo/pkg/core/math"
	vecTypes "github.com/mcx/dcservo/x/math/vec/types"
)

var _ vecTypes.Vector = Vector{}

// Vector is a heap-allocated, dynamically sized vector backed by a plain
// float32 slice. It implements vecTypes.Vector alongside the fixed-size
// Vector2D/3D/4D types, for use where the dimension is not known until
// runtime (filter state vectors, joint-space vectors with N degrees of
// freedom, etc).
//
// Vector uses a value receiver but, being slice-backed, methods mutate
// the underlying array in place just like a pointer receiver would.
type Vector []float32

// New allocates a zeroed Vector of the given length.
func New(n int) Vector {
	return make(Vector, n)
}

// NewFrom allocates a Vector populated with the given components.
func NewFrom(values ...float32) Vector {
	v := make(Vector, len(values))
	copy(v, values)
	return v
}

func (v Vector) Len() int {
	return len(v)
}

func (v Vector) Release() {
}

func (v Vector) Sum() float32 {
	var s float32
	for _, x := range v {
		s += x
	}
	return s
}

func (v Vector) View() vecTypes.Vector {
	return v
}

func (v Vector) Slice(start, end int) vecTypes.Vector {
	if end < 0 {
		end = len(v)
	}
	return v[start:end]
}

func (v Vector) XY() (float32, float32) {
	return v[0], v[1]
}

func (v Vector) XYZ() (float32, float32, float32) {
	return v[0], v[1], v[2]
}

func (v Vector) XYZW() (float32, float32, float32, float32) {
	return v[0], v[1], v[2], v[3]
}

func (v Vector) SumSqr() float32 {
	var s float32
	for _, x := range v {
		s += x * x
	}
	return s
}

func (v Vector) Magnitude() float32 {
	return math32.Sqrt(v.SumSqr())
}

func (v Vector) DistanceSqr(v1 vecTypes.Vector) float32 {
	var s float32
	for i := range v {
		d := v[i] - at(v1, i)
		s += d * d
	}
	return s
}

func (v Vector) Distance(v1 vecTypes.Vector) float32 {
	return math32.Sqrt(v.DistanceSqr(v1))
}

func (v Vector) Clone() vecTypes.Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) CopyFrom(start int, v1 vecTypes.Vector) vecTypes.Vector {
	for i := 0; i < v1.Len(); i++ {
		v[start+i] = at(v1, i)
	}
	return v
}

func (v Vector) CopyTo(start int, v1 vecTypes.Vector) vecTypes.Vector {
	for i := start; i < len(v); i++ {
		setAt(v1, i-start, v[i])
	}
	return v1
}

func (v Vector) Clamp(min, max vecTypes.Vector) vecTypes.Vector {
	for i := range v {
		v[i] = coremath.Clamp(v[i], at(min, i), at(max, i))
	}
	return v
}

func (v Vector) FillC(c float32) vecTypes.Vector {
	for i := range v {
		v[i] = c
	}
	return v
}

func (v Vector) Neg() vecTypes.Vector {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

func (v Vector) Add(v1 vecTypes.Vector) vecTypes.Vector {
	for i := range v {
		v[i] += at(v1, i)
	}
	return v
}

func (v Vector) AddC(c float32) vecTypes.Vector {
	for i := range v {
		v[i] += c
	}
	return v
}

func (v Vector) Sub(v1 vecTypes.Vector) vecTypes.Vector {
	for i := range v {
		v[i] -= at(v1, i)
	}
	return v
}

func (v Vector) SubC(c float32) vecTypes.Vector {
	for i := range v {
		v[i] -= c
	}
	return v
}

func (v Vector) MulC(c float32) vecTypes.Vector {
	for i := range v {
		v[i] *= c
	}
	return v
}

func (v Vector) MulCAdd(c float32, v1 vecTypes.Vector) vecTypes.Vector {
	for i := range v {
		v[i] += c * at(v1, i)
	}
	return v
}

func (v Vector) MulCSub(c float32, v1 vecTypes.Vector) vecTypes.Vector {
	for i := range v {
		v[i] -= c * at(v1, i)
	}
	return v
}

func (v Vector) DivC(c float32) vecTypes.Vector {
	inv := 1.0 / c
	return v.MulC(inv)
}

func (v Vector) DivCAdd(c float32, v1 vecTypes.Vector) vecTypes.Vector {
	inv := 1.0 / c
	for i := range v {
		v[i] += inv * at(v1, i)
	}
	return v
}

func (v Vector) DivCSub(c float32, v1 vecTypes.Vector) vecTypes.Vector {
	inv := 1.0 / c
	for i := range v {
		v[i] -= inv * at(v1, i)
	}
	return v
}

func (v Vector) Multiply(v1 vecTypes.Vector) vecTypes.Vector {
	for i := range v {
		v[i] *= at(v1, i)
	}
	return v
}

// Orientation is not a meaningful operation on an arbitrary-length
// vector; these panic the same way fixed vectors do for out-of-domain
// calls (e.g. Vector2D.Cross).
func (v Vector) Axis() vecTypes.Vector {
	panic("vec: Axis is only defined for quaternion-valued vectors")
}

func (v Vector) Theta() float32 {
	panic("vec: Theta is only defined for quaternion-valued vectors")
}

func (v Vector) Conjugate() vecTypes.Vector {
	panic("vec: Conjugate is only defined for quaternion-valued vectors")
}

func (v Vector) Roll() float32 {
	panic("vec: Roll is only defined for quaternion-valued vectors")
}

func (v Vector) Pitch() float32 {
	panic("vec: Pitch is only defined for quaternion-valued vectors")
}

func (v Vector) Yaw() float32 {
	panic("vec: Yaw is only defined for quaternion-valued vectors")
}

func (v Vector) Product(b vecTypes.Quaternion) vecTypes.Vector {
	panic("vec: Product is only defined for quaternion-valued vectors")
}

func (v Vector) Slerp(v1 vecTypes.Vector, time, spin float32) vecTypes.Vector {
	panic("vec: Slerp is only defined for quaternion-valued vectors")
}

func (v Vector) SlerpLong(v1 vecTypes.Vector, time, spin float32) vecTypes.Vector {
	panic("vec: SlerpLong is only defined for quaternion-valued vectors")
}

func (v Vector) Normal() vecTypes.Vector {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return v.MulC(1.0 / m)
}

func (v Vector) NormalFast() vecTypes.Vector {
	inv := coremath.FastISqrt(v.SumSqr())
	return v.MulC(inv)
}

func (v Vector) Dot(v1 vecTypes.Vector) float32 {
	var s float32
	for i := range v {
		s += v[i] * at(v1, i)
	}
	return s
}

func (v Vector) Cross(v1 vecTypes.Vector) vecTypes.Vector {
	if len(v) != 3 {
		panic("vec: Cross is only defined for 3-element vectors")
	}
	a0, a1, a2 := v[0], v[1], v[2]
	b0, b1, b2 := at(v1, 0), at(v1, 1), at(v1, 2)
	v[0] = a1*b2 - a2*b1
	v[1] = a2*b0 - a0*b2
	v[2] = a0*b1 - a1*b0
	return v
}

func (v Vector) Refract2D(n vecTypes.Vector, ni, nt float32) (vecTypes.Vector, bool) {
	panic("vec: Refract2D not supported on generic Vector")
}

func (v Vector) Refract3D(n vecTypes.Vector, ni, nt float32) (vecTypes.Vector, bool) {
	panic("vec: Refract3D not supported on generic Vector")
}

func (v Vector) Reflect(n vecTypes.Vector) vecTypes.Vector {
	d := 2 * v.Dot(n)
	for i := range v {
		v[i] -= d * at(n, i)
	}
	return v
}

func (v Vector) Interpolate(v1 vecTypes.Vector, t float32) vecTypes.Vector {
	for i := range v {
		v[i] += t * (at(v1, i) - v[i])
	}
	return v
}

func at(v vecTypes.Vector, i int) float32 {
	if vv, ok := v.(Vector); ok {
		return vv[i]
	}
	x, y, z, w := v.XYZW()
	switch i {
	case 0:
		return x
	case 1:
		return y
	case 2:
		return z
	case 3:
		return w
	default:
		panic("vec: index out of range for fixed-size vector")
	}
}

func setAt(v vecTypes.Vector, i int, val float32) {
	if vv, ok := v.(Vector); ok {
		vv[i] = val
		return
	}
	panic("vec: CopyTo destination must be a generic Vector")
}
