package systems

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/facepilot/pkg/components"
	"github.com/gonewx/facepilot/pkg/ecs"
	"github.com/gonewx/facepilot/pkg/facetracking"
)

// TrackingState 是移动系统和诊断面板读取的追踪状态
// facetracking.Tracker 实现了这个接口
type TrackingState interface {
	IsTrackingEnabled() bool
	BlendShapes() facetracking.BlendShapes
}

// ComputeMovementForce 把 blend shape 映射为平面上的力
//
// 计算公式：
//   - horizontal = -eyeBlink_L + eyeBlink_R
//   - up   = (eyeLookUp_L + eyeLookUp_R) / 2 * 2
//   - down = (eyeLookDown_L + eyeLookDown_R) / 2 * 2
//   - vertical = -up + down
//   - force = (horizontal, 0, vertical) * speed
//
// up/down 的 "/2*2" 保留原有写法，不化简。
//
// 返回：
//   - mgl64.Vec3: 要施加的力
//   - error: 缺少任一 blend shape 时返回包装了 ErrBlendShapeMissing 的错误
func ComputeMovementForce(shapes facetracking.BlendShapes, speed float64) (mgl64.Vec3, error) {
	var v [6]float64
	for i, loc := range []facetracking.BlendShapeLocation{
		facetracking.EyeBlinkLeft,
		facetracking.EyeBlinkRight,
		facetracking.EyeLookUpLeft,
		facetracking.EyeLookUpRight,
		facetracking.EyeLookDownLeft,
		facetracking.EyeLookDownRight,
	} {
		value, err := shapes.Value(loc)
		if err != nil {
			return mgl64.Vec3{}, err
		}
		v[i] = value
	}

	leftBlink, rightBlink := v[0], v[1]
	up := (v[2] + v[3]) / 2.0 * 2.0
	down := (v[4] + v[5]) / 2.0 * 2.0

	moveHorizontal := -leftBlink + rightBlink
	moveVertical := -up + down

	movement := mgl64.Vec3{moveHorizontal, 0.0, moveVertical}
	return movement.Mul(speed), nil
}

// FaceMovementSystem 每个物理步根据人脸追踪数据给玩家施加力
type FaceMovementSystem struct {
	entityManager *ecs.EntityManager
	tracking      TrackingState
	// strict 为 true 时缺少 blend shape 视为致命错误并返回给调用方；
	// 否则记录日志并跳过本物理步
	strict bool
}

// NewFaceMovementSystem 创建人脸移动系统
//
// 参数：
//   - em: 实体管理器
//   - tracking: 追踪状态（通常是 *facetracking.Tracker）
//   - strict: 缺少 blend shape 时是否返回错误
func NewFaceMovementSystem(em *ecs.EntityManager, tracking TrackingState, strict bool) *FaceMovementSystem {
	return &FaceMovementSystem{
		entityManager: em,
		tracking:      tracking,
		strict:        strict,
	}
}

// FixedUpdate 在每个固定物理步调用
//
// 未追踪时不施加任何力。
//
// 返回：
//   - error: 严格模式下 blend shape 缺失的错误
func (s *FaceMovementSystem) FixedUpdate() error {
	if !s.tracking.IsTrackingEnabled() {
		return nil
	}

	players := ecs.GetEntitiesWith2[*components.PlayerControllerComponent, *components.RigidbodyComponent](s.entityManager)
	for _, id := range players {
		controller, _ := ecs.GetComponent[*components.PlayerControllerComponent](s.entityManager, id)
		rb, _ := ecs.GetComponent[*components.RigidbodyComponent](s.entityManager, id)

		if err := s.applyFaceForce(controller, rb); err != nil {
			if s.strict {
				return fmt.Errorf("player %d: %w", id, err)
			}
			log.Printf("[FaceMovementSystem] Warning: skipping physics step: %v", err)
		}
	}
	return nil
}

// applyFaceForce 计算并施加力
func (s *FaceMovementSystem) applyFaceForce(controller *components.PlayerControllerComponent, body components.ForceApplier) error {
	force, err := ComputeMovementForce(s.tracking.BlendShapes(), controller.Speed)
	if err != nil {
		return err
	}
	body.AddForce(force)
	return nil
}
