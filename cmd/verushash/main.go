package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"git.gammaspectra.live/P2Pool/verushash/types"
	"git.gammaspectra.live/P2Pool/verushash/utils"
	"git.gammaspectra.live/P2Pool/verushash/verushash"
	"github.com/dolthub/swiss"
	fasthex "github.com/tmthrgd/go-hex"
	"golang.org/x/sys/cpu"
)

const logPrefix = "VerusHash"

type result struct {
	Pid      int        `json:"pid"`
	Variant  string     `json:"variant"`
	Name     string     `json:"name"`
	Size     int        `json:"size"`
	Digest   types.Hash `json:"digest"`
	Display  string     `json:"display"`
	Hashes   int        `json:"hashes,omitempty"`
	Workers  int        `json:"workers,omitempty"`
	HashRate float64    `json:"hashrate,omitempty"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		utils.Fatalf("%s", err)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("verushash", flag.ContinueOnError)
	flags.SetOutput(stdout)

	inputText := flags.String("input", string(bytes.Repeat([]byte("Test1234"), 12)), "Text message to hash")
	inputHex := flags.String("hex", "", "Hex encoded message to hash, takes precedence over -input")
	variantName := flags.String("variant", "all", "Variant to run: all, v1, v2, v2b, v2b1 (or hash, hash2, hash2b, hash2b1)")
	workers := flags.Int("workers", 1, "Parallel workers re-hashing the message. 0 or less is relative to the number of CPUs")
	iterations := flags.Int("iterations", 1, "Hashes per variant. All of them must agree")
	jsonOutput := flags.Bool("json", false, "Output one JSON document per line")
	debug := flags.Bool("debug", false, "Log debug information")
	logFile := flags.Bool("logfile", false, "Prefix log lines with the calling file and line")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if *debug {
		utils.GlobalLogLevel |= utils.LogLevelDebug
	}
	utils.LogFile = *logFile

	message := []byte(*inputText)
	if *inputHex != "" {
		var err error
		if message, err = fasthex.DecodeString(*inputHex); err != nil {
			return fmt.Errorf("invalid -hex: %w: %w", err, verushash.ErrInvalidArgument)
		}
	}

	variants := verushash.Variants()
	if *variantName != "all" {
		variant, err := verushash.ParseVariant(*variantName)
		if err != nil {
			return err
		}
		variants = []verushash.Variant{variant}
	}

	if *iterations < 1 {
		return fmt.Errorf("invalid -iterations %d: %w", *iterations, verushash.ErrInvalidArgument)
	}

	if utils.IsLogLevelDebug() {
		utils.Debugf(logPrefix, "GOARCH %s, CPUs %d, AES-NI %t, ARM64 AES %t, hardware rounds %t", runtime.GOARCH, runtime.NumCPU(), cpu.X86.HasAES, cpu.ARM64.HasAES, verushash.HardwareAES())
		utils.Debugf(logPrefix, "message of %d bytes: %s", len(message), types.Bytes(message))
	}

	var encoder *utils.JSONEncoder
	if *jsonOutput {
		encoder = utils.NewJSONEncoder(stdout)
	}

	pid := os.Getpid()

	for _, variant := range variants {
		r, err := hashVariant(variant, message, *iterations, *workers)
		if err != nil {
			return err
		}
		r.Pid = pid

		if encoder != nil {
			if err = encoder.Encode(r); err != nil {
				return err
			}
			continue
		}

		if _, err = fmt.Fprintf(stdout, "%d %-12s Output %s\n", r.Pid, r.Name, r.Display); err != nil {
			return err
		}
		if r.Hashes > 1 {
			utils.Logf(logPrefix, "%s: %d hashes on %d workers, %sH/s", r.Name, r.Hashes, r.Workers, utils.SiUnits(r.HashRate, 2))
		}
	}

	return nil
}

// hashVariant hashes message iterations times, spread over workers, and fails unless every digest matches
func hashVariant(variant verushash.Variant, message []byte, iterations, workers int) (result, error) {
	r := result{
		Variant: variant.String(),
		Name:    variant.DisplayName(),
		Size:    len(message),
	}

	messages := make([][]byte, iterations)
	for i := range messages {
		messages[i] = message
	}

	start := time.Now()
	digests, err := verushash.SumBatch(variant, messages, workers)
	if err != nil {
		return r, err
	}
	elapsed := time.Since(start)

	unique := swiss.NewMap[types.Hash, int](1)
	for i, digest := range digests {
		if _, ok := unique.Get(digest); !ok {
			unique.Put(digest, i)
		}
	}
	if unique.Count() != 1 {
		return r, fmt.Errorf("%s: %d distinct digests for the same message: %w", r.Name, unique.Count(), verushash.ErrInternalInvariant)
	}

	r.Digest = digests[0]
	r.Display = r.Digest.DisplayString()

	if iterations > 1 {
		r.Hashes = iterations
		r.Workers = min(max(workers, 1), iterations)
		if workers <= 0 {
			r.Workers = min(max(runtime.NumCPU()+workers, 1), iterations)
		}
		if seconds := elapsed.Seconds(); seconds > 0 {
			r.HashRate = float64(iterations) / seconds
		}
	}

	utils.Debugf(logPrefix, "%s: %d hashes in %s", r.Name, iterations, elapsed)

	return r, nil
}
