package evaluator

import (
	"fmt"

	"github.com/tczajka/wazir-drop-sub000/codec"
	"github.com/tczajka/wazir-drop-sub000/features"
	. "github.com/tczajka/wazir-drop-sub000/types"
)

// hiddenLayer is one 8-bit x 8-bit dense layer between crelu'd
// activations: an M x N int8 matrix, an M-length int32 bias, and the
// fixed right-shift mul_add folds in afterwards.
type hiddenLayer struct {
	weights [][]int8
	bias    []int32
	shift   uint
}

// outputLayer is the final dot-product layer that collapses the last
// hidden activation into a single signed 32-bit evaluation.
type outputLayer struct {
	weights []int8
	bias    int32
}

// NNUE is the accumulator-based evaluator of spec.md §4.4: a per-colour
// embedding vector updated incrementally by add16/sub16, clipped-ReLU'd
// and concatenated at evaluation time, then run through zero or more
// 8-bit dense layers ending in a dot product. Grounded on
// original_source/extra/src/nnue.rs's shape (embedding_weights,
// embedding_bias, WPSFeatures) — that file's own Nnue::new and evaluate
// are left as todo!(), and vector.rs's mul_add is a todo!() gated behind
// x86_64 SSE2 intrinsics never portable to this engine, so the embedding
// width, layer stack and fixed-point arithmetic here are built fresh
// against the spec's arithmetic contract in fixedpoint.go rather than
// ported line-by-line.
type NNUE struct {
	feats            features.Features
	embeddingSize    int
	embeddingBias    []int16
	embeddingWeights [][]int16 // [feature][embeddingSize]
	hidden           []hiddenLayer
	output           outputLayer
	scale            float32
}

// NNUEAccumulator is a per-colour embedding vector.
type NNUEAccumulator = []int16

func (n *NNUE) Features() features.Features { return n.feats }

func (n *NNUE) NewAccumulator() NNUEAccumulator {
	acc := make([]int16, n.embeddingSize)
	copy(acc, n.embeddingBias)
	return acc
}

func (n *NNUE) AddFeature(acc *NNUEAccumulator, feature int) {
	add16(*acc, n.embeddingWeights[feature])
}

func (n *NNUE) RemoveFeature(acc *NNUEAccumulator, feature int) {
	sub16(*acc, n.embeddingWeights[feature])
}

func (n *NNUE) Evaluate(accs [2]NNUEAccumulator, toMove Color) Score {
	cur := append(crelu16(accs[toMove]), crelu16(accs[toMove.Opposite()])...)
	for _, layer := range n.hidden {
		cur = crelu32(mulAdd(layer.weights, cur, layer.bias, layer.shift))
	}
	return Eval(dotProduct(n.output.weights, cur, n.output.bias))
}

func (n *NNUE) Scale() float32 { return n.scale }

// wireFormat: the NNUE weight blob this engine reads/writes is a
// sequence of base-128 varints (codec's self-synchronizing encoding,
// spec.md §4.9), laid out as:
//
//	embeddingSize, featureCount,
//	embeddingBias[0..embeddingSize),
//	embeddingWeights[f][0..embeddingSize) for f in 0..featureCount,
//	numHiddenLayers,
//	{ outputSize, shift, weights[outputSize][inputSize], bias[outputSize] }*,
//	output.weights[0..inputSize), output.bias
//
// The original never finished a weight file format for WPSFeatures (its
// Features impl is commented out and Nnue::new is todo!()), so this
// layout is this engine's own, built to exercise codec's base-128
// decoder the way spec.md §4.9 says the core must: "the core depends
// only on the decode half".

// DecodeNNUE decodes an NNUE weight blob produced by EncodeNNUE.
func DecodeNNUE(feats features.Features, blob string, scale float32) (*NNUE, error) {
	d := codec.NewDecoder(blob)
	embeddingSize, err := decodeVarintInt(d)
	if err != nil {
		return nil, fmt.Errorf("evaluator: decoding embedding size: %w", err)
	}
	featureCount, err := decodeVarintInt(d)
	if err != nil {
		return nil, fmt.Errorf("evaluator: decoding feature count: %w", err)
	}
	if featureCount != feats.Count() {
		return nil, fmt.Errorf("evaluator: weight blob has %d features, want %d", featureCount, feats.Count())
	}
	bias, err := decodeInt16Vector(d, embeddingSize)
	if err != nil {
		return nil, fmt.Errorf("evaluator: decoding embedding bias: %w", err)
	}
	weights := make([][]int16, featureCount)
	for f := 0; f < featureCount; f++ {
		weights[f], err = decodeInt16Vector(d, embeddingSize)
		if err != nil {
			return nil, fmt.Errorf("evaluator: decoding embedding weights for feature %d: %w", f, err)
		}
	}
	numHidden, err := decodeVarintInt(d)
	if err != nil {
		return nil, fmt.Errorf("evaluator: decoding hidden layer count: %w", err)
	}
	hidden := make([]hiddenLayer, numHidden)
	inputSize := 2 * embeddingSize
	for l := 0; l < numHidden; l++ {
		outputSize, err := decodeVarintInt(d)
		if err != nil {
			return nil, fmt.Errorf("evaluator: decoding layer %d size: %w", l, err)
		}
		shift, err := decodeVarintInt(d)
		if err != nil {
			return nil, fmt.Errorf("evaluator: decoding layer %d shift: %w", l, err)
		}
		rows := make([][]int8, outputSize)
		for i := 0; i < outputSize; i++ {
			rows[i], err = decodeInt8Vector(d, inputSize)
			if err != nil {
				return nil, fmt.Errorf("evaluator: decoding layer %d row %d: %w", l, i, err)
			}
		}
		layerBias, err := decodeInt32Vector(d, outputSize)
		if err != nil {
			return nil, fmt.Errorf("evaluator: decoding layer %d bias: %w", l, err)
		}
		hidden[l] = hiddenLayer{weights: rows, bias: layerBias, shift: uint(shift)}
		inputSize = outputSize
	}
	outWeights, err := decodeInt8Vector(d, inputSize)
	if err != nil {
		return nil, fmt.Errorf("evaluator: decoding output weights: %w", err)
	}
	outBias, err := decodeVarintInt(d)
	if err != nil {
		return nil, fmt.Errorf("evaluator: decoding output bias: %w", err)
	}
	if err := d.Finish(); err != nil {
		return nil, fmt.Errorf("evaluator: trailing data in weight blob: %w", err)
	}
	return &NNUE{
		feats:            feats,
		embeddingSize:    embeddingSize,
		embeddingBias:    bias,
		embeddingWeights: weights,
		hidden:           hidden,
		output:           outputLayer{weights: outWeights, bias: int32(outBias)},
		scale:            scale,
	}, nil
}

// EncodeNNUE serializes n back into the wire format DecodeNNUE reads,
// for the (out-of-scope) trainer's benefit and for round-trip testing.
func EncodeNNUE(n *NNUE) string {
	e := codec.NewEncoder()
	e.EncodeVarint(int32(n.embeddingSize))
	e.EncodeVarint(int32(len(n.embeddingWeights)))
	encodeInt16Vector(e, n.embeddingBias)
	for _, w := range n.embeddingWeights {
		encodeInt16Vector(e, w)
	}
	e.EncodeVarint(int32(len(n.hidden)))
	for _, layer := range n.hidden {
		e.EncodeVarint(int32(len(layer.weights)))
		e.EncodeVarint(int32(layer.shift))
		for _, row := range layer.weights {
			encodeInt8Vector(e, row)
		}
		encodeInt32Vector(e, layer.bias)
	}
	encodeInt8Vector(e, n.output.weights)
	e.EncodeVarint(n.output.bias)
	return e.Finish()
}

func decodeVarintInt(d *codec.Decoder) (int, error) {
	v, err := d.DecodeVarint()
	return int(v), err
}

func decodeInt16Vector(d *codec.Decoder, n int) ([]int16, error) {
	out := make([]int16, n)
	for i := range out {
		v, err := d.DecodeVarint()
		if err != nil {
			return nil, err
		}
		out[i] = int16(v)
	}
	return out, nil
}

func decodeInt8Vector(d *codec.Decoder, n int) ([]int8, error) {
	out := make([]int8, n)
	for i := range out {
		v, err := d.DecodeVarint()
		if err != nil {
			return nil, err
		}
		out[i] = int8(v)
	}
	return out, nil
}

func decodeInt32Vector(d *codec.Decoder, n int) ([]int32, error) {
	out := make([]int32, n)
	for i := range out {
		v, err := d.DecodeVarint()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func encodeInt16Vector(e *codec.Encoder, v []int16) {
	for _, x := range v {
		e.EncodeVarint(int32(x))
	}
}

func encodeInt8Vector(e *codec.Encoder, v []int8) {
	for _, x := range v {
		e.EncodeVarint(int32(x))
	}
}

func encodeInt32Vector(e *codec.Encoder, v []int32) {
	for _, x := range v {
		e.EncodeVarint(x)
	}
}
