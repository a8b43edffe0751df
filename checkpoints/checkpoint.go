package checkpoints

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/reusee/tm/machines"
)

var (
	ErrLocked   = errors.New("checkpoint locked")
	ErrMismatch = errors.New("checkpoint belongs to another program or input")
)

// Checkpoint is a persisted machine configuration
type Checkpoint struct {
	Program string `json:"program"`
	// Fingerprint of the program's rule table and initial configuration
	Fingerprint string            `json:"fingerprint"`
	Steps       int               `json:"steps"`
	Reason      string            `json:"reason,omitempty"`
	Snapshot    machines.Snapshot `json:"snapshot"`
	SavedAt     time.Time         `json:"saved_at"`
}

func Load(path string) (*Checkpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var checkpoint Checkpoint
	if err := json.Unmarshal(data, &checkpoint); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &checkpoint, nil
}

// Save writes atomically, readers never see a partial file
func Save(path string, checkpoint *Checkpoint) error {
	data, err := json.MarshalIndent(checkpoint, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Lock takes the lock file of path and records the current pid in it.
// It fails with ErrLocked when the file exists. A lock left by a crashed process must be removed by hand.
func Lock(path string) (unlock func(), err error) {
	lockFile := path + ".lock"
	f, err := os.OpenFile(lockFile, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if os.IsExist(err) {
			holder := "unknown pid"
			if content, err := os.ReadFile(lockFile); err == nil && len(bytes.TrimSpace(content)) > 0 {
				holder = "pid " + string(bytes.TrimSpace(content))
			}
			return nil, fmt.Errorf("%w: %s held by %s", ErrLocked, lockFile, holder)
		}
		return nil, err
	}
	_, err = f.WriteString(strconv.Itoa(os.Getpid()))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(lockFile)
		return nil, err
	}
	return func() {
		os.Remove(lockFile)
	}, nil
}
