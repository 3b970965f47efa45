package glm

type Vec2f = Vec2[float32]
type Vec4f = Vec4[float32]

type Vec2d = Vec2[float64]

type Vec2u = Vec2[uint32]
