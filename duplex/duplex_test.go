package duplex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ctcbeam/alphabet"
	"github.com/katalvlaran/ctcbeam/decodeerr"
	"github.com/katalvlaran/ctcbeam/duplex"
)

func mustAlphabet(t *testing.T, symbols ...string) alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.New(symbols)
	require.NoError(t, err)

	return a
}

func mustMatrix(t *testing.T, a alphabet.Alphabet, rows ...[]float64) alphabet.Matrix {
	t.Helper()
	m, err := alphabet.NewMatrix(rows, a)
	require.NoError(t, err)

	return m
}

func TestFullEnvelopeAgreeingNetworksDecodeJointly(t *testing.T) {
	a := mustAlphabet(t, "-", "A")
	net1 := mustMatrix(t, a, []float64{0.1, 0.9})
	net2 := mustMatrix(t, a, []float64{0.1, 0.9})

	labels, err := duplex.Decode(net1, net2, a, nil, 2, 0)
	require.NoError(t, err)
	require.Equal(t, "A", labels)
}

func TestNarrowEnvelopeRestrictsAlignment(t *testing.T) {
	a := mustAlphabet(t, "-", "A", "C")
	net1 := mustMatrix(t, a,
		[]float64{0.02, 0.96, 0.02},
		[]float64{0.02, 0.02, 0.96},
	)
	net2 := mustMatrix(t, a,
		[]float64{0.02, 0.96, 0.02},
		[]float64{0.02, 0.02, 0.96},
	)
	env := duplex.Envelope{{Lo: 0, Hi: 1}, {Lo: 1, Hi: 2}}

	labels, err := duplex.Decode(net1, net2, a, env, 6, 0.3)
	require.NoError(t, err)
	require.Equal(t, "AC", labels)
}

func TestEnvelopeViolationLoGreaterThanHi(t *testing.T) {
	a := mustAlphabet(t, "-", "A")
	net1 := mustMatrix(t, a, []float64{0.1, 0.9}, []float64{0.1, 0.9})
	net2 := mustMatrix(t, a,
		[]float64{0.1, 0.9}, []float64{0.1, 0.9}, []float64{0.1, 0.9},
		[]float64{0.1, 0.9}, []float64{0.1, 0.9}, []float64{0.1, 0.9},
	)
	env := duplex.Envelope{{Lo: 0, Hi: 5}, {Lo: 5, Hi: 3}}

	_, err := duplex.Decode(net1, net2, a, env, 2, 0)
	require.ErrorIs(t, err, decodeerr.ErrInvalidEnvelope)
}

func TestEnvelopeViolationFirstRowNotZero(t *testing.T) {
	a := mustAlphabet(t, "-", "A")
	net1 := mustMatrix(t, a, []float64{0.1, 0.9})
	net2 := mustMatrix(t, a, []float64{0.1, 0.9}, []float64{0.1, 0.9})
	env := duplex.Envelope{{Lo: 1, Hi: 2}}

	_, err := duplex.Decode(net1, net2, a, env, 2, 0)
	require.ErrorIs(t, err, decodeerr.ErrInvalidEnvelope)
}

func TestEnvelopeViolationLastRowNotFull(t *testing.T) {
	a := mustAlphabet(t, "-", "A")
	net1 := mustMatrix(t, a, []float64{0.1, 0.9})
	net2 := mustMatrix(t, a, []float64{0.1, 0.9}, []float64{0.1, 0.9})
	env := duplex.Envelope{{Lo: 0, Hi: 1}}

	_, err := duplex.Decode(net1, net2, a, env, 2, 0)
	require.ErrorIs(t, err, decodeerr.ErrInvalidEnvelope)
}

func TestEnvelopeWrongRowCount(t *testing.T) {
	a := mustAlphabet(t, "-", "A")
	net1 := mustMatrix(t, a, []float64{0.1, 0.9}, []float64{0.1, 0.9})
	net2 := mustMatrix(t, a, []float64{0.1, 0.9})
	env := duplex.Envelope{{Lo: 0, Hi: 1}}

	_, err := duplex.Decode(net1, net2, a, env, 2, 0)
	require.ErrorIs(t, err, decodeerr.ErrInvalidEnvelope)
}

func TestNaNInput(t *testing.T) {
	a := mustAlphabet(t, "-", "A")
	net1 := mustMatrix(t, a, []float64{math.NaN(), 0.9})
	net2 := mustMatrix(t, a, []float64{0.1, 0.9})

	_, err := duplex.Decode(net1, net2, a, nil, 2, 0)
	require.ErrorIs(t, err, decodeerr.ErrIncomparableValues)
}

func TestValidationBeamSizeTooSmall(t *testing.T) {
	a := mustAlphabet(t, "-", "A")
	net1 := mustMatrix(t, a, []float64{0.1, 0.9})
	net2 := mustMatrix(t, a, []float64{0.1, 0.9})

	_, err := duplex.Decode(net1, net2, a, nil, 0, 0)
	require.ErrorIs(t, err, decodeerr.ErrBeamSizeTooSmall)
}

func TestValidationThresholdOutOfRange(t *testing.T) {
	a := mustAlphabet(t, "-", "A")
	net1 := mustMatrix(t, a, []float64{0.1, 0.9})
	net2 := mustMatrix(t, a, []float64{0.1, 0.9})

	_, err := duplex.Decode(net1, net2, a, nil, 2, 0.5)
	require.ErrorIs(t, err, decodeerr.ErrThresholdOutOfRange)
}

func TestValidationAlphabetMismatch(t *testing.T) {
	a2 := mustAlphabet(t, "-", "A")
	a3 := mustAlphabet(t, "-", "A", "C")
	net1 := mustMatrix(t, a2, []float64{0.1, 0.9})
	net2 := mustMatrix(t, a3, []float64{0.1, 0.8, 0.1})

	_, err := duplex.Decode(net1, net2, a2, nil, 2, 0)
	require.ErrorIs(t, err, decodeerr.ErrAlphabetMismatch)
}

func TestEmptyFirstNetworkReturnsEmptyString(t *testing.T) {
	a := mustAlphabet(t, "-", "A")
	net1 := mustMatrix(t, a)
	net2 := mustMatrix(t, a, []float64{0.1, 0.9})

	labels, err := duplex.Decode(net1, net2, a, nil, 2, 0)
	require.NoError(t, err)
	require.Equal(t, "", labels)
}

func TestDiagonalEnvelopeIsValid(t *testing.T) {
	env := duplex.DiagonalEnvelope(5, 9, 1)
	require.Len(t, env, 5)
	require.NoError(t, env.Validate(5, 9))
	require.Equal(t, 0, env[0].Lo)
	require.Equal(t, 9, env[4].Hi)
}

func TestDiagonalEnvelopeNegativeRadiusClampsToZero(t *testing.T) {
	env := duplex.DiagonalEnvelope(3, 6, -5)
	require.NoError(t, env.Validate(3, 6))
}

func TestFullEnvelopeAllowsEveryRow(t *testing.T) {
	env := duplex.FullEnvelope(3, 7)
	require.Len(t, env, 3)
	for _, b := range env {
		require.Equal(t, 0, b.Lo)
		require.Equal(t, 7, b.Hi)
	}
	require.NoError(t, env.Validate(3, 7))
}
