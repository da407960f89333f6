package provisioner

import (
	"bytes"
	"context"
	"fmt"
	"github.com/kre8/kre8/pkg/logger"
	"github.com/mattn/go-shellwords"
	"go.uber.org/zap"
	"os/exec"
	"strings"
)

// NewKubectl parses a command line such as "kubectl apply -f -"; the manifest is piped to its stdin.
func NewKubectl(commandLine string) (*Kubectl, error) {
	args, err := shellwords.Parse(commandLine)

	if err != nil {
		return nil, fmt.Errorf("invalid kubectl command line: %w", err)
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("kubectl command line is empty")
	}

	return &Kubectl{
		args: args,
	}, nil
}

func (k *Kubectl) Apply(ctx context.Context, manifest *Manifest) (*Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, k.args[0], k.args[1:]...)
	cmd.Stdin = bytes.NewReader(manifest.YAML)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Log.Debug("applying manifest",
		zap.String("kind", manifest.Kind.String()),
		zap.String("name", manifest.Name),
		zap.Strings("command", k.args),
	)

	err := cmd.Run()

	if err != nil {
		return nil, fmt.Errorf("%s failed: %w: %s", k.args[0], err, strings.TrimSpace(stderr.String()))
	}

	return &Result{
		Kind:      manifest.Kind,
		Name:      manifest.Name,
		Namespace: manifest.Namespace,
		Output:    strings.TrimSpace(stdout.String()),
	}, nil
}

func NewDryRun() *DryRun {
	return &DryRun{}
}

func (d *DryRun) Apply(ctx context.Context, manifest *Manifest) (*Result, error) {
	logger.Log.Info("dry run, manifest not applied",
		zap.String("kind", manifest.Kind.String()),
		zap.String("name", manifest.Name),
		zap.ByteString("manifest", manifest.YAML),
	)

	return &Result{
		Kind:      manifest.Kind,
		Name:      manifest.Name,
		Namespace: manifest.Namespace,
		Output:    string(manifest.YAML),
		DryRun:    true,
	}, nil
}
