package world

import "log"

// FixedStepper 把可变的帧间隔转换为整数个固定物理步
//
// 单帧执行的步数达到上限时丢弃积压的时间。
type FixedStepper struct {
	step        float64
	maxSteps    int
	accumulator float64
}

// NewFixedStepper 创建固定步驱动器
// 参数：
//   - tickRate: 每秒物理步数（如 50）
//   - maxSteps: 单帧最多执行的步数
func NewFixedStepper(tickRate float64, maxSteps int) *FixedStepper {
	return &FixedStepper{
		step:     1.0 / tickRate,
		maxSteps: maxSteps,
	}
}

// StepDuration 返回一个物理步的时长（秒）
func (s *FixedStepper) StepDuration() float64 {
	return s.step
}

// Advance 累积 frameDelta 并执行到期的物理步
//
// stepFn 返回错误时立即停止并把错误返回给调用方。
//
// 返回：
//   - int: 本次执行的步数
//   - error: stepFn 的错误
func (s *FixedStepper) Advance(frameDelta float64, stepFn func(deltaTime float64) error) (int, error) {
	if frameDelta > 0 {
		s.accumulator += frameDelta
	}

	steps := 0
	for s.accumulator >= s.step {
		if steps >= s.maxSteps {
			dropped := s.accumulator
			s.accumulator = 0
			log.Printf("[FixedStepper] Frame too long, dropped %.3fs of simulation", dropped)
			break
		}
		if err := stepFn(s.step); err != nil {
			return steps, err
		}
		s.accumulator -= s.step
		steps++
	}
	return steps, nil
}

// Reset 清空累积的时间
func (s *FixedStepper) Reset() {
	s.accumulator = 0
}
