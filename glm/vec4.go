package glm

type Vec4[T numeric] [4]T

func (lhs Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
		lhs[3] * s,
	}
}

func (lhs Vec4[T]) Add(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
		lhs[2] + rhs[2],
		lhs[3] + rhs[3],
	}
}

func (lhs Vec4[T]) XYZW() (x, y, z, w T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	w = lhs[3]
	return
}

// LerpVec4 interpolates component wise between a and b.
func LerpVec4[T float](a, b Vec4[T], factor T) Vec4[T] {
	return Vec4[T]{
		Lerp(a[0], b[0], factor),
		Lerp(a[1], b[1], factor),
		Lerp(a[2], b[2], factor),
		Lerp(a[3], b[3], factor),
	}
}
