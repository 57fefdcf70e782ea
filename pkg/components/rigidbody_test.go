package components

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// TestRigidbodyAddForceAccumulates 测试同一物理步内的力会叠加
func TestRigidbodyAddForceAccumulates(t *testing.T) {
	rb := &RigidbodyComponent{Mass: 1}
	rb.AddForce(mgl64.Vec3{1, 0, 2})
	rb.AddForce(mgl64.Vec3{0.5, 0, -1})

	want := mgl64.Vec3{1.5, 0, 1}
	if !rb.Force.ApproxEqual(want) {
		t.Errorf("Expected force %v, got %v", want, rb.Force)
	}

	rb.ClearForce()
	if rb.Force != (mgl64.Vec3{}) {
		t.Errorf("Expected zero force after clear, got %v", rb.Force)
	}
}

func TestTagAndLabelCapabilities(t *testing.T) {
	tag := &TagComponent{Tag: PickUpTag}
	if !tag.CompareTag("Pick Up") {
		t.Error("Pick Up tag should match")
	}
	if tag.CompareTag("pick up") {
		t.Error("Tag comparison is case sensitive")
	}

	var target TextTarget = &TextLabelComponent{ID: CountLabelID}
	target.SetText("Count: 3")
	if target.(*TextLabelComponent).Text != "Count: 3" {
		t.Error("SetText should update the label")
	}

	var applier ForceApplier = &RigidbodyComponent{Mass: 1}
	applier.AddForce(mgl64.Vec3{0, 0, 1})

	active := &ActiveComponent{Active: true}
	active.SetActive(false)
	if active.Active {
		t.Error("SetActive(false) should deactivate")
	}
}
