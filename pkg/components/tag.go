package components

// PickUpTag 可拾取物体的标签
const PickUpTag = "Pick Up"

// PlayerTag 玩家实体的标签
const PlayerTag = "Player"

// TagComponent 为实体打上一个字符串标签，碰撞回调用它区分对象类型
type TagComponent struct {
	Tag string
}

// CompareTag 判断标签是否相同
func (t *TagComponent) CompareTag(tag string) bool {
	return t.Tag == tag
}
