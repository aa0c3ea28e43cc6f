package ast

import "testing"

func TestObjectAddChildOverwrites(t *testing.T) {
	obj := NewObjectNode("root")
	obj.AddChild(NewScalarNode("a", int64(1)))
	obj.AddChild(NewScalarNode("b", int64(2)))
	obj.AddChild(NewScalarNode("a", int64(3)))

	if obj.Len() != 2 {
		t.Fatalf("expected 2 children, got %d", obj.Len())
	}

	child, ok := obj.Child("a")
	if !ok {
		t.Fatal("expected child a")
	}
	if child.(*ScalarNode).Value() != int64(3) {
		t.Errorf("expected overwrite to win, got %v", child.(*ScalarNode).Value())
	}

	// Overwriting must not move the key to the back.
	children := obj.Children()
	if children[0].Key() != "a" || children[1].Key() != "b" {
		t.Errorf("expected insertion order a, b; got %s, %s", children[0].Key(), children[1].Key())
	}
}

func TestObjectAddChildAccumulating(t *testing.T) {
	obj := NewObjectNode("province")
	obj.AddChildAccumulating(NewScalarNode("discovered_by", "western"))
	obj.AddChildAccumulating(NewScalarNode("discovered_by", "eastern"))
	obj.AddChildAccumulating(NewScalarNode("discovered_by", "muslim"))

	child, ok := obj.Child("discovered_by")
	if !ok {
		t.Fatal("expected child discovered_by")
	}
	list, ok := child.(*ListNode)
	if !ok {
		t.Fatalf("expected repeated key to collapse into *ListNode, got %T", child)
	}
	if len(list.Items()) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list.Items()))
	}
	if list.Items()[0].(*ScalarNode).Value() != "western" {
		t.Errorf("expected first item western, got %v", list.Items()[0].(*ScalarNode).Value())
	}
}

func TestObjectAddChildAccumulatingSingleStaysScalar(t *testing.T) {
	obj := NewObjectNode("province")
	obj.AddChildAccumulating(NewScalarNode("owner", "FRA"))

	child, _ := obj.Child("owner")
	if _, ok := child.(*ScalarNode); !ok {
		t.Fatalf("a key seen once must stay scalar, got %T", child)
	}
}

func TestDateNodeBehavesAsContainer(t *testing.T) {
	node := NewDateNode("1444.11.11", Date{Year: 1444, Month: 11, Day: 11})
	node.AddChild(NewScalarNode("controller", "ENG"))

	var c Container = node
	child, ok := c.Child("controller")
	if !ok {
		t.Fatal("expected child controller")
	}
	if child.(*ScalarNode).Value() != "ENG" {
		t.Errorf("expected ENG, got %v", child.(*ScalarNode).Value())
	}
	if node.Date() != (Date{Year: 1444, Month: 11, Day: 11}) {
		t.Errorf("unexpected date %v", node.Date())
	}
}

func TestGetChildOnNonContainer(t *testing.T) {
	scalar := NewScalarNode("x", int64(1))
	if _, ok := GetChild(scalar, "y"); ok {
		t.Error("scalar must have no children")
	}
	list := NewListNode("l")
	if HasChild(list, "y") {
		t.Error("list must have no named children")
	}
}

func TestGetChildrenNormalization(t *testing.T) {
	obj := NewObjectNode("root")
	obj.AddChild(NewScalarNode("single", "one"))
	obj.AddChild(NewListNode("many",
		NewScalarNode("", "a"),
		NewScalarNode("", "b"),
	))

	t.Run("absent key yields nil", func(t *testing.T) {
		if got := GetChildren(obj, "missing"); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("single node yields itself", func(t *testing.T) {
		got := GetChildren(obj, "single")
		if len(got) != 1 || got[0].Key() != "single" {
			t.Errorf("expected [single], got %v", got)
		}
	})

	t.Run("list yields its items", func(t *testing.T) {
		got := GetChildren(obj, "many")
		if len(got) != 2 {
			t.Fatalf("expected 2 items, got %d", len(got))
		}
		if got[0].(*ScalarNode).Value() != "a" {
			t.Errorf("expected a, got %v", got[0].(*ScalarNode).Value())
		}
	})
}
