//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"
)

// linuxCommLength is the longest executable name the kernel reports on linux.
const linuxCommLength = 15

// OtherInstances returns the PIDs of other processes running the same
// executable as the current process.
func OtherInstances() ([]int, error) {
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("current executable: %w", err)
	}

	return instancesOf(filepath.Base(self), os.Getpid())
}

func instancesOf(executable string, selfPID int) ([]int, error) {
	processList, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	var pids []int

	for _, process := range processList {
		if process.Pid() == selfPID {
			continue
		}

		if !sameExecutable(process.Executable(), executable) {
			continue
		}

		pids = append(pids, process.Pid())
	}

	return pids, nil
}

// sameExecutable compares names, allowing for the truncated names reported on linux.
func sameExecutable(reported, executable string) bool {
	if strings.EqualFold(reported, executable) {
		return true
	}

	return len(reported) == linuxCommLength && strings.HasPrefix(executable, reported)
}
