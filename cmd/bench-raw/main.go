// Command bench-raw is the standalone build of the raw environment. It
// pulls in nothing beyond the environment and the fixture parser, so its
// reported costs are not polluted by host-side machinery.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rustopian/eisodos/env/raw"
	"github.com/rustopian/eisodos/fixture"
)

type specList []fixture.AccountSpec

func (s *specList) String() string {
	parts := make([]string, 0, len(*s))
	for _, spec := range *s {
		parts = append(parts, spec.String())
	}
	return strings.Join(parts, " ")
}

func (s *specList) Set(value string) error {
	spec, err := fixture.ParseSpec(value, raw.ProgramKey())
	if err != nil {
		return err
	}
	*s = append(*s, spec)
	return nil
}

func main() {
	var instructionHex string
	specs := specList{}
	flag.StringVar(&instructionHex, "instruction", "", "instruction payload, hex encoded")
	flag.Var(&specs, "account-spec", "account spec role:key:signer:writable:lamports:datalen:owner[:datahex], repeatable")
	flag.Parse()

	instruction, err := hex.DecodeString(instructionHex)
	if err != nil {
		fmt.Printf("error: invalid instruction hex: %v\n", err)
		os.Exit(1)
	}
	cost, err := raw.NewExecutor().Execute(instruction, specs)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("cost: %v\n", cost)
}
