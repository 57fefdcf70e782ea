package facetracking

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeBlendShapes 解析宿主发送的 blend shape 负载
//
// 原生端通常发送 JSON 对象（如 {"eyeBlink_L":0.12,...}），JSON 是 YAML 的子集，
// 因此与配置文件共用 yaml.v3 解析。空负载返回空映射。
func DecodeBlendShapes(data []byte) (BlendShapes, error) {
	shapes := BlendShapes{}
	if len(data) == 0 {
		return shapes, nil
	}
	if err := yaml.Unmarshal(data, &shapes); err != nil {
		return nil, fmt.Errorf("failed to decode blend shapes: %w", err)
	}
	if shapes == nil {
		// 负载为 null
		shapes = BlendShapes{}
	}
	return shapes, nil
}
