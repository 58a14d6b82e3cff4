package domain

import (
	"math"

	"github.com/unft/unftd/pkg/errors"
)

// BridgeStats is the program-wide summary record. Counters only grow;
// overflow is rejected, never wrapped.
type BridgeStats struct {
	TotalMinted    uint64
	TotalTransfers uint64
}

func (s *BridgeStats) IncrementMinted() errors.Error {
	if s.TotalMinted == math.MaxUint64 {
		return errors.ARITHMETIC_OVERFLOW.New("total minted counter overflow")
	}
	s.TotalMinted++
	return nil
}

func (s *BridgeStats) IncrementTransfers() errors.Error {
	if s.TotalTransfers == math.MaxUint64 {
		return errors.ARITHMETIC_OVERFLOW.New("total transfers counter overflow")
	}
	s.TotalTransfers++
	return nil
}
