package tests

import (
	"bytes"
	"fmt"
	"os/exec"
)

// serverProcess wraps the built server binary for the browser suite,
// capturing its combined output for the teardown log.
type serverProcess struct {
	cmd    *exec.Cmd
	output *bytes.Buffer
}

func startServer(binary string, args ...string) (*serverProcess, error) {
	p := serverProcess{
		cmd:    exec.Command(binary, args...),
		output: &bytes.Buffer{},
	}
	p.cmd.Stdout = p.output
	p.cmd.Stderr = p.output
	if err := p.cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", binary, err)
	}
	return &p, nil
}

// Output returns everything the server wrote so far. Only safe to call
// once the process has been stopped.
func (p *serverProcess) Output() string {
	return p.output.String()
}

func (p *serverProcess) Stop() (int, error) {
	if err := p.cmd.Process.Kill(); err != nil {
		return -1, fmt.Errorf("killing server: %w", err)
	}
	err := p.cmd.Wait()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return p.cmd.ProcessState.ExitCode(), err
}
