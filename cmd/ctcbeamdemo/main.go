// Command ctcbeamdemo decodes a pair of synthetic CTC softmax outputs to
// demonstrate the single-sequence and dual-sequence beam search decoders.
package main

import (
	"log"

	"github.com/katalvlaran/ctcbeam/alphabet"
	"github.com/katalvlaran/ctcbeam/beam"
	"github.com/katalvlaran/ctcbeam/duplex"
)

func main() {
	alpha, err := alphabet.New([]string{"-", "A", "C", "G", "T"})
	if err != nil {
		log.Fatalf("building alphabet: %v", err)
	}

	net1, err := alphabet.NewMatrix([][]float64{
		{0.05, 0.8, 0.05, 0.05, 0.05},
		{0.8, 0.05, 0.05, 0.05, 0.05},
		{0.05, 0.05, 0.8, 0.05, 0.05},
		{0.8, 0.05, 0.05, 0.05, 0.05},
		{0.05, 0.05, 0.05, 0.8, 0.05},
	}, alpha)
	if err != nil {
		log.Fatalf("building net1: %v", err)
	}

	const beamSize = 8
	const cutThreshold = 0.0

	result, err := beam.Decode(net1, alpha, beamSize, cutThreshold)
	if err != nil {
		log.Fatalf("single-sequence decode: %v", err)
	}
	log.Printf("single-sequence: labels=%q timesteps=%v", result.Labels, result.Timesteps)

	net2, err := alphabet.NewMatrix([][]float64{
		{0.02, 0.96, 0.02, 0.0, 0.0},
		{0.0, 0.0, 0.96, 0.02, 0.02},
		{0.0, 0.0, 0.02, 0.96, 0.02},
	}, alpha)
	if err != nil {
		log.Fatalf("building net2: %v", err)
	}

	labels, err := duplex.Decode(net1, net2, alpha, nil, beamSize, cutThreshold)
	if err != nil {
		log.Fatalf("dual-sequence decode: %v", err)
	}
	log.Printf("dual-sequence: labels=%q", labels)
}
