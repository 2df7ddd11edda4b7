package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"git.gammaspectra.live/P2Pool/verushash/utils"
	"git.gammaspectra.live/P2Pool/verushash/verushash"
)

func TestMain(m *testing.M) {
	utils.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

var testInput = bytes.Repeat([]byte("Test1234"), 12)

func TestRun_Default(t *testing.T) {
	var out bytes.Buffer
	if err := run(nil, &out); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(verushash.Variants()) {
		t.Fatalf("expected %d lines, got %q", len(verushash.Variants()), lines)
	}

	pid := fmt.Sprintf("%d ", os.Getpid())
	for i, variant := range verushash.Variants() {
		digest, err := verushash.Sum(variant, testInput)
		if err != nil {
			t.Fatal(err)
		}
		expected := fmt.Sprintf("%s%-12s Output %s", pid, variant.DisplayName(), digest.DisplayString())
		if lines[i] != expected {
			t.Errorf("line %d = %q, want %q", i, lines[i], expected)
		}
	}
}

func TestRun_Workers(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-variant", "hash2b1", "-workers", "4", "-iterations", "32"}, &out); err != nil {
		t.Fatal(err)
	}

	expected := verushash.Hash2b1(testInput).DisplayString()
	if line := strings.TrimSpace(out.String()); !strings.HasSuffix(line, "VerusHash2b1 Output "+expected) {
		t.Fatalf("unexpected output %q", line)
	}
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-json", "-hex", "00ff10", "-iterations", "3"}, &out); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(verushash.Variants()) {
		t.Fatalf("expected %d lines, got %d", len(verushash.Variants()), len(lines))
	}
	for i, variant := range verushash.Variants() {
		var r result
		if err := utils.UnmarshalJSON([]byte(lines[i]), &r); err != nil {
			t.Fatal(err)
		}
		digest, _ := verushash.Sum(variant, []byte{0x00, 0xff, 0x10})
		if r.Digest != digest || r.Display != digest.DisplayString() {
			t.Errorf("%s: got %s", variant, r.Digest)
		}
		if r.Variant != variant.String() || r.Size != 3 || r.Hashes != 3 {
			t.Errorf("%s: unexpected fields %+v", variant, r)
		}
	}
}

func TestRun_InvalidArguments(t *testing.T) {
	for _, args := range [][]string{
		{"-hex", "zz"},
		{"-variant", "v3"},
		{"-iterations", "0"},
	} {
		err := run(args, io.Discard)
		if !errors.Is(err, verushash.ErrInvalidArgument) {
			t.Errorf("%v: expected invalid argument, got %v", args, err)
		}
	}

	if err := run([]string{"-unknown"}, io.Discard); err == nil {
		t.Error("unknown flag accepted")
	}
}

func TestRun_LogFile(t *testing.T) {
	var logs bytes.Buffer
	old := utils.SetLogOutput(&logs)
	oldLevel := utils.GlobalLogLevel
	defer func() {
		utils.SetLogOutput(old)
		utils.LogFile = false
		utils.GlobalLogLevel = oldLevel
	}()

	if err := run([]string{"-logfile", "-debug", "-variant", "v1", "-iterations", "2"}, io.Discard); err != nil {
		t.Fatal(err)
	}
	out := logs.String()
	if !strings.Contains(out, " main.go:") || !strings.Contains(out, "[VerusHash] INFO VerusHash1: 2 hashes") {
		t.Errorf("unexpected log lines %q", out)
	}
	if !strings.Contains(out, "[VerusHash] DEBUG GOARCH") || !strings.Contains(out, "hardware rounds") {
		t.Errorf("debug lines missing: %q", out)
	}
}
