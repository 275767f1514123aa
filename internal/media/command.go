package media

import (
	"fmt"

	"github.com/nguyentantai21042004/wavshift/internal/tempo"
	"github.com/nguyentantai21042004/wavshift/pkg/executor"
)

// Command is one ffmpeg invocation reading Input and writing Output.
type Command struct {
	Input  string
	Output string
	Args   []string
}

// Argv returns the ffmpeg arguments: -y -i <input> <args...> <output>
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+4)
	argv = append(argv, "-y", "-i", c.Input)
	argv = append(argv, c.Args...)
	return append(argv, c.Output)
}

// Line renders the command as it would be typed, for the given binary.
func (c Command) Line(binary string) string {
	return executor.CommandLine(binary, c.Argv()...)
}

func (c Command) String() string {
	return c.Line("ffmpeg")
}

// ReverseArguments is the fixed descriptor for reversing audio.
func ReverseArguments() []string {
	return []string{"-map", "0", "-c:v", "copy", "-af", "areverse"}
}

// CompressCommand builds the speed-change command for amount.
func CompressCommand(input, output string, amount float64) (Command, error) {
	if err := checkPaths(input, output); err != nil {
		return Command{}, err
	}
	args, err := tempo.Arguments(amount)
	if err != nil {
		return Command{}, err
	}
	return Command{Input: input, Output: output, Args: args}, nil
}

// ReverseCommand builds the reversal command.
func ReverseCommand(input, output string) (Command, error) {
	if err := checkPaths(input, output); err != nil {
		return Command{}, err
	}
	return Command{Input: input, Output: output, Args: ReverseArguments()}, nil
}

func checkPaths(input, output string) error {
	if input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalidArgument)
	}
	if output == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidArgument)
	}
	return nil
}
