package utils

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestSplitWork(t *testing.T) {
	for _, routines := range []int{1, 4, 0, -1, 64} {
		const workSize = 1000
		var seen [workSize]atomic.Uint32
		var initCalls atomic.Int32

		err := SplitWork(routines, workSize, func(workIndex uint64, routineIndex int) error {
			seen[workIndex].Add(1)
			return nil
		}, func(routines, routineIndex int) error {
			initCalls.Add(1)
			if routineIndex >= routines {
				t.Errorf("routine index %d out of %d", routineIndex, routines)
			}
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}

		for i := range seen {
			if n := seen[i].Load(); n != 1 {
				t.Fatalf("routines %d: index %d done %d times", routines, i, n)
			}
		}
		if initCalls.Load() == 0 {
			t.Errorf("routines %d: init never called", routines)
		}
	}
}

func TestSplitWork_SmallWork(t *testing.T) {
	var initCalls int
	err := SplitWork(16, 3, func(workIndex uint64, routineIndex int) error {
		if routineIndex >= 3 {
			t.Errorf("routine %d started for 3 items", routineIndex)
		}
		return nil
	}, func(routines, routineIndex int) error {
		initCalls++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if initCalls != 3 {
		t.Errorf("expected 3 routines, got %d", initCalls)
	}

	if err = SplitWork(4, 0, func(workIndex uint64, routineIndex int) error {
		t.Error("work on empty range")
		return nil
	}, nil); err != nil {
		t.Fatal(err)
	}
}

func TestSplitWork_Error(t *testing.T) {
	errTest := errors.New("test")

	err := SplitWork(4, 100, func(workIndex uint64, routineIndex int) error {
		if workIndex == 50 {
			return errTest
		}
		return nil
	}, nil)
	if !errors.Is(err, errTest) {
		t.Fatalf("expected %v, got %v", errTest, err)
	}

	err = SplitWork(4, 100, func(workIndex uint64, routineIndex int) error {
		return nil
	}, func(routines, routineIndex int) error {
		return errTest
	})
	if !errors.Is(err, errTest) {
		t.Fatalf("expected init error, got %v", err)
	}
}
