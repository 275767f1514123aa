package tempo

import (
	"fmt"
	"math"
	"strings"
)

const (
	// MaxStage is the largest multiplier a single atempo stage accepts.
	MaxStage = 2.0

	// FilterFlag is the ffmpeg option that carries the chain.
	FilterFlag = "-filter:a"

	filterName = "atempo"
	separator  = ","
	precision  = 64
)

// Plan decomposes 1/amount into stage multipliers. Every stage but the last
// is exactly MaxStage; the last is the remainder and is <= MaxStage.
func Plan(amount float64) ([]float64, error) {
	tempo, err := tempoFor(amount)
	if err != nil {
		return nil, err
	}

	var stages []float64
	for tempo > MaxStage {
		stages = append(stages, MaxStage)
		tempo /= MaxStage
	}
	return append(stages, tempo), nil
}

// Chain renders the plan for amount as a comma-joined atempo filter chain.
func Chain(amount float64) (string, error) {
	stages, err := Plan(amount)
	if err != nil {
		return "", err
	}

	tokens := make([]string, len(stages))
	last := len(stages) - 1
	for i, s := range stages {
		if i < last {
			tokens[i] = filterName + "=2"
			continue
		}
		tokens[i] = fmt.Sprintf("%s=%.*f", filterName, precision, s)
	}
	return strings.Join(tokens, separator), nil
}

// Arguments returns the ffmpeg output options for amount.
func Arguments(amount float64) ([]string, error) {
	chain, err := Chain(amount)
	if err != nil {
		return nil, err
	}
	return []string{FilterFlag, chain}, nil
}

func tempoFor(amount float64) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, fmt.Errorf("%w: speed factor must be a finite positive number, got %v", ErrInvalidArgument, amount)
	}
	tempo := 1 / amount
	if math.IsInf(tempo, 0) {
		return 0, fmt.Errorf("%w: speed factor %v is too small", ErrInvalidArgument, amount)
	}
	return tempo, nil
}
