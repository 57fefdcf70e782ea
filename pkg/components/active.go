package components

// ActiveComponent 控制实体是否处于激活状态
//
// 未激活的实体不参与渲染和触发检测，但仍保留在 EntityManager 中
// （与销毁不同，重新激活即可恢复）。没有此组件的实体视为始终激活。
type ActiveComponent struct {
	Active bool
}

// SetActive 设置激活状态
func (a *ActiveComponent) SetActive(active bool) {
	a.Active = active
}
