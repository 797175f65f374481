package gitsync

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/fuzzkeeper/internal/domain/entities"
)

// DependencyInstaller runs an install command for every manifest found at
// the root of a checkout, e.g. "npm install" when package.json exists.
type DependencyInstaller struct {
	installers map[string]string
}

// NewDependencyInstaller creates an installer from manifest -> command line.
func NewDependencyInstaller(installers map[string]string) *DependencyInstaller {
	copied := make(map[string]string, len(installers))
	for manifest, command := range installers {
		copied[manifest] = command
	}
	return &DependencyInstaller{installers: copied}
}

// Install runs the matching commands in manifest order and returns the
// command lines it ran.
func (it *DependencyInstaller) Install(ctx context.Context, dir string) ([]string, error) {
	manifests := make([]string, 0, len(it.installers))
	for manifest := range it.installers {
		manifests = append(manifests, manifest)
	}
	sort.Strings(manifests)

	var ran []string
	for _, manifest := range manifests {
		if _, err := os.Stat(filepath.Join(dir, manifest)); err != nil {
			continue
		}

		command := it.installers[manifest]
		fields := strings.Fields(command)
		if len(fields) == 0 {
			continue
		}

		logger.Infof("Found %s, running %q in %s", manifest, command, dir)

		//nolint:gosec // installer commands come from the operator's configuration
		cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
		cmd.Dir = dir

		output, err := cmd.CombinedOutput()
		logger.Debugf("%s output:\n%s", command, output)
		if err != nil {
			return ran, fmt.Errorf(
				"%w: %q failed in %s: %w\nOutput:\n%s", entities.ErrSyncFailure, command, dir, err, output,
			)
		}
		ran = append(ran, command)
	}

	return ran, nil
}
