package harness

import (
	"encoding/hex"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rustopian/eisodos/fixture"
)

// CmdExecutor drives a variant build living in its own binary. The
// instruction payload travels as hex and each account as its textual
// spec; the binary reports its cost on stdout as "cost: N".
type CmdExecutor struct {
	Binary string
	Env    string
}

func (c *CmdExecutor) Name() string { return c.Env }

func (c *CmdExecutor) Execute(instruction []byte, specs []fixture.AccountSpec) (uint64, error) {
	args := []string{"--instruction", hex.EncodeToString(instruction)}
	for _, spec := range specs {
		args = append(args, "--account-spec", spec.String())
	}
	cmd := exec.Command(c.Binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("err=%w, out=%v", err, string(output))
	}
	return parseCost(string(output))
}

func parseCost(output string) (uint64, error) {
	for _, line := range strings.Split(output, "\n") {
		if value, ok := strings.CutPrefix(strings.TrimSpace(line), "cost: "); ok {
			return strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		}
	}
	return 0, fmt.Errorf("no cost line in output: %v", output)
}
