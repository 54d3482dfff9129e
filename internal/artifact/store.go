package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Kind names one pipeline stage's output file.
type Kind string

const (
	KindRaw         Kind = "raw"
	KindTranscoded  Kind = "transcoded"
	KindSynthesized Kind = "synthesized"
)

// Kinds lists every artifact kind a request can own.
var Kinds = []Kind{KindRaw, KindTranscoded, KindSynthesized}

var kindSuffix = map[Kind]string{
	KindRaw:         ".ogg",
	KindTranscoded:  ".wav",
	KindSynthesized: "_tts.mp3",
}

// Artifact is one transient file owned by one request.
type Artifact struct {
	Path      string
	RequestID string
	Kind      Kind
}

// Entry is one row of a directory snapshot.
type Entry struct {
	Path    string
	ModTime time.Time
}

// Store manages the single shared directory of transient per-request files.
// Filenames are derived from (request id, kind) only, so cleanup and the
// retention sweep operate on the directory listing without any index.
// Request ids must be path-safe; the telegram layer sanitizes them.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create downloads dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Path is pure: it never touches the filesystem. Stages that stream through
// external tools (ffmpeg, TTS download) write to this path directly.
func (s *Store) Path(requestID string, kind Kind) string {
	return filepath.Join(s.dir, requestID+kindSuffix[kind])
}

func (s *Store) Put(requestID string, kind Kind, data []byte) (Artifact, error) {
	path := s.Path(requestID, kind)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return Artifact{}, fmt.Errorf("write %s artifact: %w", kind, err)
	}
	return Artifact{Path: path, RequestID: requestID, Kind: kind}, nil
}

// Delete is idempotent: a missing file is not an error, and any other
// failure is logged but never propagated, so cleanup cannot mask the
// pipeline result it runs after.
func (s *Store) Delete(requestID string, kind Kind) {
	path := s.Path(requestID, kind)
	err := os.Remove(path)
	switch {
	case err == nil:
		log.Printf("[artifacts] deleted %s", path)
	case errors.Is(err, fs.ErrNotExist):
	default:
		log.Printf("[artifacts] delete %s: %v", path, err)
	}
}

// DeleteAll removes every kind the request may have created, whichever exist.
func (s *Store) DeleteAll(requestID string) {
	for _, kind := range Kinds {
		s.Delete(requestID, kind)
	}
}

// ListAll returns a one-shot snapshot of the directory at call time; a fresh
// call re-reads the directory. Subdirectories are skipped.
func (s *Store) ListAll() ([]Entry, error) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read downloads dir: %w", err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		info, err := d.Info()
		if err != nil {
			log.Printf("[artifacts] stat %s: %v", d.Name(), err)
			continue
		}
		entries = append(entries, Entry{
			Path:    filepath.Join(s.dir, d.Name()),
			ModTime: info.ModTime(),
		})
	}
	return entries, nil
}

// Stats reports how many artifacts the directory holds and their total size.
func (s *Store) Stats() (count int, bytes int64) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, 0
	}
	for _, d := range dirents {
		if d.IsDir() {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue
		}
		count++
		bytes += info.Size()
	}
	return count, bytes
}
