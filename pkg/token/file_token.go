package token

import (
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileToken is a TokenProvider for a bearer token which is backed by a
// file. This will look up the value from the file, watch the file for
// changes, and re-read when required.
//
// This suits deployments where a sidecar or secret manager rotates the
// streaming credential on disk while the connection is long-lived: the
// next request picks up the reissued token without a restart.
type FileToken struct {
	mutex sync.RWMutex
	token string
}

func NewFileToken(filename string) (*FileToken, error) {
	value, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	fileToken := FileToken{
		token: strings.TrimSpace(string(value)),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write {
					value, err := os.ReadFile(filename)
					if err == nil {
						fileToken.mutex.Lock()
						fileToken.token = strings.TrimSpace(string(value))
						fileToken.mutex.Unlock()
					}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	if err := watcher.Add(filename); err != nil {
		return nil, err
	}

	return &fileToken, nil
}

func (t *FileToken) Token() string {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.token
}
