package verushash

import (
	"fmt"

	"git.gammaspectra.live/P2Pool/verushash/types"
	"git.gammaspectra.live/P2Pool/verushash/utils"
	"golang.org/x/sys/cpu"
)

type batchSlot struct {
	state State
	_     cpu.CacheLinePad
}

// SumBatch hashes every message under variant using up to workers goroutines.
// Results are in the same order as messages. workers <= 0 is relative to the number of CPUs, see utils.SplitWork.
func SumBatch(variant Variant, messages [][]byte, workers int) ([]types.Hash, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("%s: %w", variant, ErrInvalidArgument)
	}

	results := make([]types.Hash, len(messages))
	if len(messages) == 0 {
		return results, nil
	}

	var slots []batchSlot

	err := utils.SplitWork(workers, uint64(len(messages)), func(workIndex uint64, routineIndex int) error {
		s := &slots[routineIndex].state
		s.Reset()
		_, _ = s.Write(messages[workIndex])
		digest, err := s.Sum256()
		if err != nil {
			return err
		}
		results[workIndex] = digest
		return nil
	}, func(routines, routineIndex int) error {
		if slots == nil {
			slots = make([]batchSlot, routines)
		}
		return slots[routineIndex].state.init(variant)
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
