package Stacks

import (
	"errors"
	"testing"
)

func TestArrayStack_All(t *testing.T) {
	S := MakeArrayStack[int](10)
	if !S.Empty() {
		t.Error("new stack not empty")
	}
	for i := 0; i < 10; i++ {
		if err := S.Push(i); err != nil {
			t.Errorf("wrong push %d: %v", i, err)
		}
	}
	var full *StackFullError
	if err := S.Push(10); !errors.As(err, &full) {
		t.Errorf("push beyond capacity gave %v", err)
	} else if full.Cap != 10 {
		t.Errorf("wrong cap in error %d", full.Cap)
	}
	if S.Size() != 10 {
		t.Errorf("stack size is %d, want 10", S.Size())
	}
	if v, err := S.Top(); err != nil || v != 9 {
		t.Errorf("wrong top %d %v", v, err)
	}
	for i := 9; i > -1; i-- {
		if v, err := S.Pop(); err != nil || v != i {
			t.Errorf("wrong pop %d, want %d: %v", v, i, err)
		}
	}
	var empty *StackEmptyError
	if _, err := S.Pop(); !errors.As(err, &empty) {
		t.Errorf("pop on empty gave %v", err)
	}
	if _, err := S.Top(); !errors.As(err, &empty) || empty.Op != "Top" {
		t.Errorf("top on empty gave %v", err)
	}
}

func TestArrayStack_Clear(t *testing.T) {
	S := MakeArrayStack[string](2)
	_ = S.Push("a")
	_ = S.Push("b")
	S.Clear()
	if !S.Empty() || S.Cap() != 2 {
		t.Error("wrong clear")
	}
	if err := S.Push("c"); err != nil {
		t.Error(err)
	}
}

func TestArrayStack_ZeroCap(t *testing.T) {
	S := MakeArrayStack[int](0)
	var full *StackFullError
	if err := S.Push(1); !errors.As(err, &full) {
		t.Errorf("push on zero capacity gave %v", err)
	}
}
