package ctcbeam

import (
	"github.com/katalvlaran/ctcbeam/alphabet"
	"github.com/katalvlaran/ctcbeam/beam"
	"github.com/katalvlaran/ctcbeam/duplex"
)

// BeamSearch decodes one CTC network output with the single-sequence
// prefix beam search. See beam.Decode for the full contract.
func BeamSearch(network alphabet.Matrix, alpha alphabet.Alphabet, beamSize int, cutThreshold float64) (beam.Result, error) {
	return beam.Decode(network, alpha, beamSize, cutThreshold)
}

// BeamSearchDuplex jointly decodes two CTC network outputs believed to
// encode the same sequence with the dual-sequence prefix beam search. A
// nil envelope falls back to duplex.FullEnvelope. See duplex.Decode for
// the full contract.
func BeamSearchDuplex(net1, net2 alphabet.Matrix, alpha alphabet.Alphabet, envelope duplex.Envelope, beamSize int, cutThreshold float64) (string, error) {
	return duplex.Decode(net1, net2, alpha, envelope, beamSize, cutThreshold)
}
