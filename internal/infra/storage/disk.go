package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Disk stores uploaded assets on the local filesystem and serves them under
// PublicBaseURL/uploads/. Same contract as a hosted bucket: bytes plus a
// name in, public URL out.
type Disk struct {
	Dir           string
	PublicBaseURL string
}

func NewDisk(dir, publicBaseURL string) *Disk {
	return &Disk{Dir: dir, PublicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Save writes the content under a generated collision-resistant name and
// returns the public URL.
func (d *Disk) Save(originalName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(originalName)
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	f, err := os.Create(filepath.Join(d.Dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return d.PublicBaseURL + "/uploads/" + name, nil
}
